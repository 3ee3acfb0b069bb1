package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizsolver"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config{Format: "text", NoColor: "1"}, []string{"-sweep", "demo"}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "numQuestionsIs5, alwaysConsistent, othersAreSame, evenNumberAreTrue, solutionSetIsUnique:\n" +
		"-true,true,false,false,true\n" +
		"-true,false,false,true,false\n" +
		"-true,false,false,false,false\n"
	if !strings.HasPrefix(out.String(), want) {
		t.Errorf("run() output:\n%s\nwant prefix:\n%s", out.String(), want)
	}
}

func TestRunClosesTraceOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, config{Format: "text"}, []string{"-sweep", "demo", "-trace", path}, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run() error = %v, want context.Canceled", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "=== Trace Complete ===") {
		t.Errorf("trace was not closed:\n%s", data)
	}
}

func TestRunUnknownSweep(t *testing.T) {
	err := run(context.Background(), config{Format: "text"}, []string{"-sweep", "nope"}, &bytes.Buffer{})
	if !errors.Is(err, quizsolver.ErrUnknownPreset) {
		t.Errorf("run() error = %v, want ErrUnknownPreset", err)
	}
}

func TestRunListSorted(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), config{}, []string{"-list"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var names []string
	for _, line := range strings.Split(out.String(), "\n")[1:] {
		if !strings.HasPrefix(line, "  ") {
			break
		}
		names = append(names, strings.TrimSpace(line))
	}
	names = names[:len(names)-1] // numQuestionsIs<n>

	want := quizsolver.NewQuestionPool().SortedNames()
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("listed names = %v, want %v", names, want)
	}
	if names[0] != "adjacentAreFalse" {
		t.Errorf("first listed name = %q, want adjacentAreFalse", names[0])
	}
}
