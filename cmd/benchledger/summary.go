package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func printSummary(w io.Writer, res runResult) {
	s := res.Summary
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d records from %d files in %s", s.Records, s.Files, s.Duration.Round(time.Millisecond))))
	if s.Skipped > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d malformed files or entries skipped", s.Skipped)))
	}

	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}
	row("ledger", fmt.Sprintf("%s (%d lines)", res.LedgerPath, res.LedgerLines))
	row("report", res.ReportPath)
	if res.RunID != "" {
		row("archive", res.RunID)
	}
}
