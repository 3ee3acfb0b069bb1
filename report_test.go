package quizsolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleReport() *SweepReport {
	return &SweepReport{
		Sweep:    "sample",
		Variants: 2,
		Solved:   1,
		Quizzes: []QuizReport{
			{
				Questions:         []string{"responseIsTrue", "alwaysConsistent"},
				Candidates:        4,
				LocallyConsistent: 2,
				Solutions:         [][]bool{{T, T}, {T, F}},
			},
			{
				Questions:         []string{"responseIsFalse", "negateResponse"},
				Candidates:        4,
				LocallyConsistent: 0,
				Solutions:         [][]bool{},
			},
		},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), ReportOptions{Format: FormatText}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	want := strings.Join([]string{
		"responseIsTrue, alwaysConsistent:",
		"-true,true",
		"-true,false",
		"responseIsFalse, negateResponse:",
		"-",
		"",
		"1/2 variants solved (sample)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReportTextColor(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), ReportOptions{Format: FormatText, Color: true}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("colored report has no escape codes:\n%q", buf.String())
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), ReportOptions{Format: FormatJSON}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not JSON: %v", err)
	}
	if decoded["sweep"] != "sample" {
		t.Errorf("sweep = %v", decoded["sweep"])
	}
	if !strings.Contains(buf.String(), `"locally_consistent": 2`) {
		t.Errorf("missing locally_consistent field:\n%s", buf.String())
	}
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), ReportOptions{Format: FormatYAML}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sweep: sample\n", "variants: 2\n", "locally_consistent: 2\n", "- responseIsTrue\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	err := WriteReport(&bytes.Buffer{}, sampleReport(), ReportOptions{Format: "xml"})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteReport() error = %v, want ErrUnknownFormat", err)
	}
}
