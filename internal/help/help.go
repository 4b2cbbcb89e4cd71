// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a rule
type CheckInfo struct {
	Name                string   // Rule identifier (e.g., "SSN")
	Letter              string   // Option letter used by the interactive session
	ShortDescription    string   // Short description for the rules list
	DetailedDescription string   // Detailed description of what the rule accepts
	Pattern             string   // Expression matched against the whole input
	AuxiliaryCheck      string   // Description of the non-pattern check, if any
	Accepts             []string // Sample inputs that pass
	Rejects             []string // Sample inputs that fail
	ConfigurationInfo   string   // Information about how to configure the rule
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	out       io.Writer
	colors    map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		out:       out,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system. Providers are found
// by name or by option letter.
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
	if info.Letter != "" {
		h.providers[strings.ToLower(info.Letter)] = provider
	}
}

// infos returns each registered rule once, in option-letter order
func (h *System) infos() []CheckInfo {
	seen := make(map[string]bool)
	var out []CheckInfo
	for _, p := range h.providers {
		info := p.GetCheckInfo()
		if seen[info.Name] {
			continue
		}
		seen[info.Name] = true
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Letter != out[j].Letter {
			return out[i].Letter < out[j].Letter
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ShowChecksHelp lists every rule with its option letter
func (h *System) ShowChecksHelp() {
	h.colors["title"].Fprintln(h.out, "Available Rules")
	fmt.Fprintln(h.out, "===============")
	fmt.Fprintln(h.out)

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  OPT\tRULE\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ---\t----\t-----------")
	for _, info := range h.infos() {
		fmt.Fprintf(w, "  %s\t", info.Letter)
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "For detailed information about a specific rule, use:")
	h.colors["example"].Fprintln(h.out, "  rulecheck rules <rule>")
}

// ShowCheckHelp displays detailed help for one rule and reports whether it exists
func (h *System) ShowCheckHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		h.colors["negative"].Fprintf(h.out, "Error: Rule '%s' not found.\n", name)
		fmt.Fprintln(h.out, "Use 'rulecheck rules' to see a list of available rules.")
		return false
	}

	info := provider.GetCheckInfo()
	title := fmt.Sprintf("%s (%s)", info.Name, info.Letter)
	h.colors["title"].Fprintln(h.out, title)
	fmt.Fprintln(h.out, strings.Repeat("=", len(title)))
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, info.DetailedDescription)
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "PATTERN (whole input):")
	fmt.Fprint(h.out, "  ")
	h.colors["item"].Fprintln(h.out, info.Pattern)
	fmt.Fprintln(h.out)

	if info.AuxiliaryCheck != "" {
		h.colors["header"].Fprintln(h.out, "AUXILIARY CHECK:")
		fmt.Fprintf(h.out, "  %s\n\n", info.AuxiliaryCheck)
	}

	h.showSamples("ACCEPTS:", info.Accepts, "positive")
	h.showSamples("REJECTS:", info.Rejects, "negative")

	if info.ConfigurationInfo != "" {
		h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
		fmt.Fprintln(h.out, info.ConfigurationInfo)
		fmt.Fprintln(h.out)
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Fprintln(h.out, "EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Fprint(h.out, "  ")
			h.colors["example"].Fprintln(h.out, example)
		}
	}

	return true
}

func (h *System) showSamples(header string, samples []string, colorName string) {
	if len(samples) == 0 {
		return
	}
	h.colors["header"].Fprintln(h.out, header)
	for _, s := range samples {
		fmt.Fprint(h.out, "  - ")
		h.colors[colorName].Fprintf(h.out, "%q\n", s)
	}
	fmt.Fprintln(h.out)
}
