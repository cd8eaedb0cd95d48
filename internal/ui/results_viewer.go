package ui

import (
	"fmt"
	"strings"

	"hellodock/internal/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ResultsViewer displays a stored check run in an interactive TUI
type ResultsViewer struct{}

// NewResultsViewer creates a new ResultsViewer
func NewResultsViewer() *ResultsViewer {
	return &ResultsViewer{}
}

// View opens the TUI: checks on the left, details of the selected check on the right.
func (rv *ResultsViewer) View(output *domain.RunOutput) error {
	if len(output.Results) == 0 {
		fmt.Println("No check results stored")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, r := range output.Results {
		list.AddItem(listItemText(i, r), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	meta := output.Meta
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Smoke checks (%d passed, %d skipped, %d failed) at %s | ↑↓ navigate, → details, ← back, q/Ctrl+C exit ",
			meta.PassedChecks, meta.SkippedChecks, meta.FailedChecks, meta.Timestamp))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Results) {
			detailsView.SetText(formatResultDetails(output.Results[index])).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(index int, r domain.CheckResult) string {
	title := r.Title
	if title == "" {
		title = r.Name
	}
	switch r.Status {
	case domain.StatusPassed:
		return fmt.Sprintf("[green]✓[white] %d. %s", index+1, title)
	case domain.StatusSkipped:
		return fmt.Sprintf("[yellow]![white] %d. %s", index+1, title)
	default:
		return fmt.Sprintf("[red]✗[white] %d. %s", index+1, title)
	}
}

// formatResultDetails formats a check result using tview color tags
func formatResultDetails(r domain.CheckResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[cyan]Check:[white] %s (%s)\n", tview.Escape(r.Title), r.Name)
	fmt.Fprintf(&b, "[cyan]Status:[white] %s\n", r.Status)
	fmt.Fprintf(&b, "[cyan]Duration:[white] %s\n", r.Duration)
	if code, ok := r.StatusCode.Get(); ok {
		fmt.Fprintf(&b, "[cyan]HTTP status:[white] %d\n", code)
	}
	b.WriteString("\n")

	if r.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(r.Message))
	}

	if len(r.Details) > 0 {
		b.WriteString("[yellow]Details:[white]\n")
		for _, d := range r.Details {
			marker := " "
			switch d.Status {
			case domain.StatusPassed:
				marker = "[green]✓[white]"
			case domain.StatusFailed:
				marker = "[red]✗[white]"
			case domain.StatusSkipped:
				marker = "[yellow]![white]"
			}
			fmt.Fprintf(&b, "  %s %s\n", marker, tview.Escape(d.Text))
		}
		b.WriteString("\n")
	}

	if r.Reproduce != "" {
		fmt.Fprintf(&b, "[yellow]Reproduce:[white]\n  %s\n", tview.Escape(r.Reproduce))
	}
	return b.String()
}
