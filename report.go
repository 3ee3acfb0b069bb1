package quizsolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// ReportOptions controls WriteReport.
type ReportOptions struct {
	Format string
	Color  bool
}

// WriteReport renders report to w.
func WriteReport(w io.Writer, report *SweepReport, opts ReportOptions) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, report, opts.Color)
	case FormatJSON:
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// writeText prints each variant as its question names followed by one
// "-" line per solution.
func writeText(w io.Writer, report *SweepReport, useColor bool) error {
	yes := color.New(color.FgGreen)
	no := color.New(color.FgRed)
	names := color.New(color.Bold)
	for _, c := range []*color.Color{yes, no, names} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, quiz := range report.Quizzes {
		if _, err := fmt.Fprintf(w, "%s:\n", names.Sprint(strings.Join(quiz.Questions, ", "))); err != nil {
			return err
		}
		if len(quiz.Solutions) == 0 {
			if _, err := fmt.Fprintln(w, "-"); err != nil {
				return err
			}
			continue
		}
		for _, solution := range quiz.Solutions {
			parts := make([]string, len(solution))
			for i, v := range solution {
				if v {
					parts[i] = yes.Sprint("true")
				} else {
					parts[i] = no.Sprint("false")
				}
			}
			if _, err := fmt.Fprintf(w, "-%s\n", strings.Join(parts, ",")); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n%d/%d variants solved (%s)\n", report.Solved, report.Variants, report.Sweep)
	return err
}
