package ui

import (
	"fmt"
	"io"
	"strings"

	"hellodock/internal/domain"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// ConsoleReporter prints one status line per check as the run progresses
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// CheckStarted prints the "Testing ..." line
func (r *ConsoleReporter) CheckStarted(name, title string) {
	cyan.Fprintf(r.out, "🔍 Testing %s...\n", strings.ToLower(title))
}

// CheckFinished prints the details and the outcome line
func (r *ConsoleReporter) CheckFinished(result domain.CheckResult) {
	for _, d := range result.Details {
		printDetail(r.out, d)
	}
	printOutcome(r.out, result)
}

func printDetail(out io.Writer, d domain.Detail) {
	switch d.Status {
	case domain.StatusPassed:
		green.Fprintf(out, "   ✅ %s\n", d.Text)
	case domain.StatusFailed:
		red.Fprintf(out, "   ❌ %s\n", d.Text)
	case domain.StatusSkipped:
		yellow.Fprintf(out, "   ⚠️  %s\n", d.Text)
	default:
		fmt.Fprintf(out, "   %s\n", d.Text)
	}
}

// OutcomeLine renders the final status line of a check without color.
func OutcomeLine(result domain.CheckResult) string {
	switch result.Status {
	case domain.StatusPassed:
		return fmt.Sprintf("✅ %s test passed", result.Title)
	case domain.StatusSkipped:
		reason := result.Message
		if reason == "" {
			reason = "no reason given"
		}
		return fmt.Sprintf("⚠️  %s test skipped (%s)", result.Title, reason)
	default:
		if result.Message == "" {
			return fmt.Sprintf("❌ %s test failed", result.Title)
		}
		return fmt.Sprintf("❌ %s test failed: %s", result.Title, result.Message)
	}
}

func printOutcome(out io.Writer, result domain.CheckResult) {
	line := OutcomeLine(result)
	switch result.Status {
	case domain.StatusPassed:
		green.Fprintln(out, line)
	case domain.StatusSkipped:
		yellow.Fprintln(out, line)
	default:
		red.Fprintln(out, line)
	}
}
