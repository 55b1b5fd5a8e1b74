package cmd

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"encscan/internal/config"
	"encscan/internal/detect"
	"encscan/internal/logger"
	"encscan/internal/processor"
	"encscan/internal/tui"
)

const targetFile = "features.html"

// newDetector is swapped in tests to pin the detected label.
var newDetector = func() detect.Detector {
	return detect.NewStatistical()
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report lines of " + targetFile + " with non-ASCII characters",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := processor.Options{
		Detector: newDetector(),
		Logger:   logger.New(cmd.ErrOrStderr(), settings.Verbose),
	}

	var report processor.Report
	if settings.Progress {
		report, err = scanWithProgress(cmd.Context(), cmd.ErrOrStderr(), opts)
	} else {
		report, err = processor.Run(cmd.Context(), targetFile, opts, nil)
	}
	if err != nil {
		return err
	}

	r := newRenderer(out, settings.Color)
	printReport(out, r, report)

	if settings.Summary {
		fmt.Fprintln(out, tui.RenderSummary(r, summaryRows(report)))
	}
	return nil
}

func scanWithProgress(ctx context.Context, w io.Writer, opts processor.Options) (processor.Report, error) {
	updates := make(chan processor.ProgressUpdate, 64)
	program := tea.NewProgram(tui.NewModel(targetFile, updates), tea.WithOutput(w), tea.WithInput(nil))

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		// Keep the scanner unblocked if the view exits early.
		for range updates {
		}
		close(uiDone)
	}()

	report, err := processor.Run(ctx, targetFile, opts, updates)
	close(updates)
	<-uiDone
	return report, err
}

func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

func printReport(w io.Writer, r *lipgloss.Renderer, report processor.Report) {
	// Line content is printed verbatim, tabs included.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	headStyle := base.Bold(true).Foreground(tui.ColorAccent)
	encodingStyle := base.Foreground(tui.ColorInk)
	issueStyle := base.Foreground(tui.ColorIssue)
	lineStyle := base.Foreground(tui.ColorDim)
	textStyle := base.Foreground(tui.ColorInk)
	cleanStyle := base.Foreground(tui.ColorClean)

	fmt.Fprintf(w, "%s %s\n", headStyle.Render("Detected encoding:"), encodingStyle.Render(report.Encoding))

	if len(report.Issues) == 0 {
		fmt.Fprintln(w, cleanStyle.Render("No lines with non-ASCII / MacRoman characters found."))
		return
	}

	fmt.Fprintln(w, issueStyle.Render("Lines containing non-ASCII / MacRoman characters:"))
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "%s %s\n", lineStyle.Render(fmt.Sprintf("Line %d:", issue.Line)), textStyle.Render(issue.Text))
	}
}

func summaryRows(report processor.Report) []tui.SummaryRow {
	encoding := report.Encoding
	if report.Fallback {
		encoding += " (fallback)"
	}
	return []tui.SummaryRow{
		{Label: "File", Value: report.Path},
		{Label: "Encoding", Value: encoding},
		{Label: "Confidence", Value: fmt.Sprintf("%d%%", report.Confidence)},
		{Label: "Lines scanned", Value: fmt.Sprintf("%d", report.Lines)},
		{Label: "Non-ASCII lines", Value: fmt.Sprintf("%d", len(report.Issues))},
	}
}
