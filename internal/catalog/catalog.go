// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog maps each rule identifier to its validator.
package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"rulecheck/internal/help"
	"rulecheck/internal/observability"
	"rulecheck/internal/rule"
	"rulecheck/internal/validators/address"
	"rulecheck/internal/validators/citystatezip"
	"rulecheck/internal/validators/currency"
	"rulecheck/internal/validators/date"
	"rulecheck/internal/validators/email"
	"rulecheck/internal/validators/militarytime"
	"rulecheck/internal/validators/oddion"
	"rulecheck/internal/validators/password"
	"rulecheck/internal/validators/phone"
	"rulecheck/internal/validators/rostername"
	"rulecheck/internal/validators/ssn"
	"rulecheck/internal/validators/weburl"
)

// contextValidator is implemented by validators that may block on
// reference data
type contextValidator interface {
	ValidateContext(ctx context.Context, input string) (bool, error)
}

// Options configures a Catalog
type Options struct {
	// AreaCodes backs the US_PHONE rule. Nil makes every shape-valid phone
	// number fail with areacode.ErrUnavailable.
	AreaCodes phone.CodeSource

	// Gregorian applies the century rule to February 29
	Gregorian bool

	Logger   zerolog.Logger
	Observer *observability.StandardObserver
}

// Catalog holds one validator per rule. It is immutable after New and safe
// for concurrent use.
type Catalog struct {
	validators map[rule.ID]rule.Validator
	logger     zerolog.Logger
	observer   *observability.StandardObserver
}

// New builds the catalog of all twelve rules
func New(opts Options) *Catalog {
	var dateOpts []date.Option
	if opts.Gregorian {
		dateOpts = append(dateOpts, date.WithGregorian())
	}

	return &Catalog{
		validators: map[rule.ID]rule.Validator{
			rule.SSN:          ssn.NewValidator(),
			rule.USPhone:      phone.NewValidator(opts.AreaCodes),
			rule.Email:        email.NewValidator(),
			rule.RosterName:   rostername.NewValidator(),
			rule.Date:         date.NewValidator(dateOpts...),
			rule.HouseAddress: address.NewValidator(),
			rule.CityStateZip: citystatezip.NewValidator(),
			rule.MilitaryTime: militarytime.NewValidator(),
			rule.USCurrency:   currency.NewValidator(),
			rule.URL:          weburl.NewValidator(),
			rule.Password:     password.NewValidator(),
			rule.OddIon:       oddion.NewValidator(),
		},
		logger:   opts.Logger.With().Str("component", "catalog").Logger(),
		observer: opts.Observer,
	}
}

// Rules returns the rule identifiers in option-letter order
func (c *Catalog) Rules() []rule.ID {
	ids := make([]rule.ID, 0, len(rule.All))
	for _, id := range rule.All {
		if _, ok := c.validators[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate reports whether input satisfies the rule id. An unknown id
// returns rule.ErrUnknownRule; a mismatch is false with a nil error.
func (c *Catalog) Validate(id rule.ID, input string) (bool, error) {
	return c.ValidateContext(context.Background(), id, input)
}

// ValidateContext is Validate with a context for rules that load
// reference data
func (c *Catalog) ValidateContext(ctx context.Context, id rule.ID, input string) (bool, error) {
	v, ok := c.validators[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", rule.ErrUnknownRule, string(id))
	}

	finish := c.observer.StartTiming("catalog", "validate", id.String())

	var valid bool
	var err error
	if cv, ok := v.(contextValidator); ok {
		valid, err = cv.ValidateContext(ctx, input)
	} else {
		valid, err = v.Validate(input)
	}

	if err != nil {
		c.logger.Warn().Err(err).Str("rule", id.String()).Msg("rule could not be evaluated")
	}
	finish(err == nil, map[string]interface{}{"valid": valid})

	return valid, err
}

// Evaluate runs one request and returns its result
func (c *Catalog) Evaluate(ctx context.Context, req rule.Request) rule.Result {
	valid, err := c.ValidateContext(ctx, req.Rule, req.Input)
	return rule.NewResult(req.Rule, req.Input, valid, err)
}

// RegisterHelp adds the help content of every rule to h
func (c *Catalog) RegisterHelp(h *help.System) {
	for _, id := range c.Rules() {
		if p, ok := c.validators[id].(help.Provider); ok {
			h.RegisterProvider(p)
		}
	}
}

// Info returns the help content for one rule
func (c *Catalog) Info(id rule.ID) (help.CheckInfo, error) {
	v, ok := c.validators[id]
	if !ok {
		return help.CheckInfo{}, fmt.Errorf("%w: %q", rule.ErrUnknownRule, string(id))
	}
	p, ok := v.(help.Provider)
	if !ok {
		return help.CheckInfo{Name: id.String(), Letter: id.Letter()}, nil
	}
	return p.GetCheckInfo(), nil
}
