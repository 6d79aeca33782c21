package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cookie-importer/core/reconcile"
	"cookie-importer/feature/firefox"
	"cookie-importer/feature/importer"

	"github.com/charmbracelet/lipgloss"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var (
	colorOK     = lipgloss.Color("10") // bright green
	colorWarn   = lipgloss.Color("11") // bright yellow
	colorErr    = lipgloss.Color("9")  // bright red
	colorDim    = lipgloss.Color("240")
	colorBorder = lipgloss.Color("238")

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(12)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleOK   = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn = lipgloss.NewStyle().Foreground(colorWarn)
	styleErr  = lipgloss.NewStyle().Foreground(colorErr)
)

// progress shows a running record counter while the engine works.
type progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgress(w io.Writer, name string) *progress {
	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(32))
	bar := p.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Any(func(s decor.Statistics) string {
				return fmt.Sprintf("%d records", s.Current)
			}),
		),
	)
	return &progress{p: p, bar: bar}
}

// Observe advances the counter. It is a reconcile.Observer.
func (pr *progress) Observe(e reconcile.Event) {
	switch e.Type {
	case reconcile.EventParsed:
		pr.bar.Increment()
	case reconcile.EventSummary:
		pr.bar.SetTotal(-1, true)
	}
}

// Wait stops the counter. A run that failed before its summary aborts the bar.
func (pr *progress) Wait() {
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}

func row(label, value string) string {
	return styleLabel.Render(label) + value
}

// renderReport formats an import report as a bordered summary.
func renderReport(r *importer.Report) string {
	if r == nil {
		return ""
	}

	title := "Import summary"
	if r.DryRun {
		title = "Dry run"
	}

	lines := []string{styleTitle.Render(title), ""}
	if r.Profile != "" {
		lines = append(lines, row("Profile", r.Profile))
	}
	if r.Source != "" {
		lines = append(lines, row("Source", r.Source))
	}
	if r.Format != "" {
		lines = append(lines, row("Format", string(r.Format)))
	}
	if r.Backup != "" {
		lines = append(lines, row("Backup", r.Backup))
	}
	if r.BackupObject != "" {
		lines = append(lines, row("Uploaded", r.BackupObject))
	}
	lines = append(lines, "")

	if r.Plan != nil {
		lines = append(lines,
			row("To insert", styleOK.Render(fmt.Sprint(r.Plan.ToInsert))),
			row("To update", styleOK.Render(fmt.Sprint(r.Plan.ToUpdate))),
			row("Failed", countStyle(r.Plan.Failed).Render(fmt.Sprint(r.Plan.Failed))),
		)
	} else {
		lines = append(lines,
			row("Inserted", styleOK.Render(fmt.Sprint(r.Summary.Inserted))),
			row("Updated", styleOK.Render(fmt.Sprint(r.Summary.Updated))),
			row("Skipped", countStyle(r.Summary.Skipped).Render(fmt.Sprint(r.Summary.Skipped))),
		)
		if r.Maintained {
			lines = append(lines, row("Maintenance", "vacuum + reindex"))
		}
	}

	for _, w := range r.Warnings {
		lines = append(lines, styleWarn.Render("! "+w))
	}
	if !r.FinishedAt.IsZero() {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorDim).Render(
			"took "+r.FinishedAt.Sub(r.StartedAt).Round(1e6).String()))
	}

	return styleBox.Render(strings.Join(lines, "\n"))
}

func countStyle(n int) lipgloss.Style {
	if n > 0 {
		return styleErr
	}
	return styleOK
}

// renderProfiles lists profiles one per line, marking defaults and profiles without a store.
func renderProfiles(profiles []firefox.Profile) string {
	if len(profiles) == 0 {
		return styleWarn.Render("No profiles found")
	}

	lines := []string{styleTitle.Render("Profiles"), ""}
	for _, p := range profiles {
		marker := "  "
		if p.Default {
			marker = styleOK.Render("* ")
		}
		store := styleOK.Render("cookies.sqlite")
		if !p.HasCookies {
			store = styleErr.Render("no store")
		}
		lines = append(lines, marker+styleLabel.Width(20).Render(p.Name)+p.Path+"  "+store)
	}
	return styleBox.Render(strings.Join(lines, "\n"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
