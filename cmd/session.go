// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rulecheck/internal/core"
	"rulecheck/internal/rule"
)

const quitOption = "Q"

// session reads an option line and a text line per round until Q or EOF.
// Each round's result is printed as soon as it is evaluated.
type session struct {
	in          io.Reader
	out         io.Writer
	evaluator   core.Evaluator
	interactive bool
	showInput   bool
	noColor     bool
}

// Run drives the loop and returns how many inputs were evaluated
func (s *session) Run(ctx context.Context) (int, error) {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if s.interactive {
		s.printMenu()
	}

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		s.prompt("Please select an option: ")
		if !scanner.Scan() {
			return count, scanner.Err()
		}
		option := strings.TrimSpace(scanner.Text())
		if option == "" {
			continue
		}
		if option == quitOption {
			s.prompt("Exiting\n")
			return count, nil
		}

		s.prompt("Enter text to test: ")
		if !scanner.Scan() {
			return count, scanner.Err()
		}
		text := strings.TrimSuffix(scanner.Text(), "\r")

		res := s.evaluate(ctx, option, text)
		s.printResult(res)
		res.Clear()
		count++
	}
}

func (s *session) evaluate(ctx context.Context, option, text string) rule.Result {
	id, err := rule.Parse(option)
	if err != nil {
		return rule.NewResult(rule.ID(option), text, false, err)
	}
	return s.evaluator.Evaluate(ctx, rule.Request{Rule: id, Input: text})
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, "Rules:")
	for _, id := range rule.All {
		fmt.Fprintf(s.out, "  %s. %s\n", id.Letter(), id)
	}
	fmt.Fprintf(s.out, "  %s. Quit\n\n", quitOption)
}

// prompt writes text only when a person is at the keyboard
func (s *session) prompt(text string) {
	if s.interactive {
		fmt.Fprint(s.out, text)
	}
}

func (s *session) printResult(res rule.Result) {
	name := string(res.Rule)
	if letter := res.Rule.Letter(); letter != "" {
		name = letter + " " + name
	}
	if s.showInput {
		name = fmt.Sprintf("%s %q", name, res.Input.String())
	}

	status := res.Status()
	if !s.noColor {
		switch status {
		case "valid":
			status = color.GreenString(status)
		case "invalid":
			status = color.RedString(status)
		default:
			status = color.YellowString(status)
		}
	}

	if res.Err != nil {
		fmt.Fprintf(s.out, "%s: %s: %v\n", name, status, res.Err)
		return
	}
	fmt.Fprintf(s.out, "%s: %s\n", name, status)
}
