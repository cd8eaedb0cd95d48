package ui

import (
	"fmt"
	"io"

	"hellodock/internal/checks"
	"hellodock/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays run summaries
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintResults prints the aggregate of a finished run
func (f *Formatter) PrintResults(results []domain.CheckResult) {
	passed, failed, skipped := domain.Summarize(results)

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "📊 Test Results:")
	fmt.Fprintf(f.out, "   Passed: %d/%d\n", passed+skipped, len(results))
	if skipped > 0 {
		yellow.Fprintf(f.out, "   Skipped: %d (counted as passed)\n", skipped)
	}

	fmt.Fprintln(f.out)
	if failed == 0 {
		green.Fprintln(f.out, "🎉 All tests passed!")
	} else {
		red.Fprintln(f.out, "❌ Some tests failed!")
	}
}

// PrintCheckList prints the checks a run would execute, in order
func (f *Formatter) PrintCheckList(list []checks.Check) {
	cyan.Fprintf(f.out, "%d check(s):\n", len(list))
	for i, c := range list {
		fmt.Fprintf(f.out, "  %d. ", i+1)
		yellow.Fprintf(f.out, "%-12s", c.Name())
		fmt.Fprintf(f.out, " %s\n", c.Title())
	}
}

// PrintMetaStats displays the statistics and results of a stored run
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) {
	meta := output.Meta

	// Print header
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                   Smoke Check Statistics                      ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	separator := "├─────────────────────────────────┼─────────────────────────────┤"
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row(white, "Total Checks", fmt.Sprint(meta.TotalChecks))
	fmt.Fprintln(f.out, separator)
	f.row(green, "Passed Checks", fmt.Sprint(meta.PassedChecks))
	fmt.Fprintln(f.out, separator)
	f.row(yellow, "Skipped Checks", fmt.Sprint(meta.SkippedChecks))
	fmt.Fprintln(f.out, separator)
	f.row(red, "Failed Checks", fmt.Sprint(meta.FailedChecks))
	fmt.Fprintln(f.out, separator)
	f.row(white, "Environment", meta.Environment)
	fmt.Fprintln(f.out, separator)
	f.row(white, "Port", meta.Port)
	fmt.Fprintln(f.out, separator)
	f.row(white, "Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Fprintln(f.out, separator)
	f.row(white, "Timestamp", meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	for _, r := range output.Results {
		printOutcome(f.out, r)
		if !r.OK() && r.Reproduce != "" {
			fmt.Fprintf(f.out, "   reproduce: %s\n", r.Reproduce)
		}
	}

	// Print summary line
	fmt.Fprintln(f.out)
	if meta.OK() {
		green.Fprintln(f.out, "✓ All checks passed!")
	} else {
		red.Fprintf(f.out, "✗ %d check(s) failed\n", meta.FailedChecks)
	}
}

func (f *Formatter) row(c *color.Color, label, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}
