package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(v string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// NewMarkdownFormatter creates a formatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Render Summary"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Backend"), s.Run.Backend)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Format"), s.Run.Format)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Workers"), s.Run.Workers)
	if s.Run.Scale > 0 && s.Run.Scale != 1 {
		fmt.Fprintf(&sb, "| %s | %.2fx |\n", t("Scale"), s.Run.Scale)
	}
	if s.Run.OutputDir != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Output Directory"), s.Run.OutputDir)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Scenes"))
	if len(s.Scenes) == 0 {
		fmt.Fprintf(&sb, "%s\n\n", t("No scenes were rendered."))
	} else {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
			t("Scene"), t("Canvas"), t("Output"), t("Draw Calls"), t("Render Time"), t("File Size"))
		sb.WriteString("|---|---|---|---|---|---|\n")
		for _, sc := range s.Scenes {
			fmt.Fprintf(&sb, "| %s | %dx%d | %dx%d | %d | %d ms | %s |\n",
				sc.Name,
				sc.CanvasWidth, sc.CanvasHeight,
				sc.OutputWidth, sc.OutputHeight,
				sc.Calls,
				sc.RenderMs,
				formatBytes(sc.FileSize))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## %s\n\n", t("Totals"))
	fmt.Fprintf(&sb, "- %s: %d\n", t("Draw Calls"), s.TotalCalls())
	fmt.Fprintf(&sb, "- %s: %s\n", t("Total Size"), formatBytes(s.TotalBytes()))
	fmt.Fprintf(&sb, "- %s: %d ms\n\n", t("Duration"), s.Run.DurationMs)

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "%s %s", t("Generated at"), s.GeneratedAt.Format(time.RFC3339))
	if f.version != "" {
		fmt.Fprintf(&sb, " (rasterplot %s)", f.version)
	}
	sb.WriteString("\n")

	return sb.String()
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
