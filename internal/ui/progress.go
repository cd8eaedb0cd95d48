package ui

import (
	"fmt"
	"io"

	"hellodock/internal/domain"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders a check run as a single progress bar
type ProgressBar struct {
	bar            *progressbar.ProgressBar
	out            io.Writer
	passed, failed int
}

// NewProgressBar creates a new progress bar for count checks
func NewProgressBar(out io.Writer, count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe("", 0, 0)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, out: out}
}

func describe(current string, passed, failed int) string {
	label := "Running checks"
	if current != "" {
		label = "Checking " + current
	}
	return color.CyanString(label+": ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// CheckStarted updates the description with the running check
func (p *ProgressBar) CheckStarted(name, title string) {
	p.bar.Describe(describe(name, p.passed, p.failed))
}

// CheckFinished advances the bar
func (p *ProgressBar) CheckFinished(result domain.CheckResult) {
	if result.OK() {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(describe("", p.passed, p.failed))
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
