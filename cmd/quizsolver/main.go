package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"quizsolver"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run parses args over the env defaults in cfg, runs the selected sweep and
// writes the report. Everything it opens is closed before it returns.
func run(ctx context.Context, cfg config, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("quizsolver", flag.ContinueOnError)
	var (
		sweep      = flags.String("sweep", cfg.Sweep, "Preset sweep to run ("+strings.Join(quizsolver.PresetNames(), ", ")+")")
		format     = flags.String("format", cfg.Format, "Report format ("+strings.Join(quizsolver.Formats(), ", ")+")")
		outputFile = flags.String("output", cfg.Output, "Output file for the report (default: stdout)")
		traceFile  = flags.String("trace", cfg.Trace, "Write a per-candidate evaluation trace to this file")
		onlySolved = flags.Bool("only-solved", cfg.OnlySolved, "Omit variants with no solutions")
		list       = flags.Bool("list", false, "List the question library and presets, then exit")
		verbose    = flags.Bool("verbose", cfg.Verbose, "Enable verbose debugging output")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	quizsolver.SetVerbose(*verbose)

	pool := quizsolver.NewQuestionPool()

	if *list {
		listLibrary(stdout, pool)
		return nil
	}

	slots, err := quizsolver.Preset(*sweep)
	if err != nil {
		return fmt.Errorf("failed to select sweep: %w", err)
	}

	sweeper := quizsolver.NewQuizSweeper(pool)

	if *traceFile != "" {
		tracer, err := quizsolver.NewFileTracer(*traceFile)
		if err != nil {
			return fmt.Errorf("failed to open trace: %w", err)
		}
		defer tracer.Close()
		sweeper.SetTracer(tracer)
		quizsolver.VerboseLog("Tracing evaluations to %s", *traceFile)
	}

	report, err := sweeper.Sweep(ctx, quizsolver.SweepRequest{
		Name:       *sweep,
		Slots:      slots,
		OnlySolved: *onlySolved,
	})
	if err != nil {
		return fmt.Errorf("failed to run sweep: %w", err)
	}

	var output bytes.Buffer
	err = quizsolver.WriteReport(&output, report, quizsolver.ReportOptions{
		Format: *format,
		Color:  useColor(cfg, *outputFile != ""),
	})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, output.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Printf("Report saved to: %s", *outputFile)
		return nil
	}

	_, err = stdout.Write(output.Bytes())
	return err
}

func listLibrary(w io.Writer, pool *quizsolver.QuestionPool) {
	fmt.Fprintf(w, "Questions (%d):\n", pool.Size())
	for _, name := range pool.SortedNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "  %s<n>\n", "numQuestionsIs")

	fmt.Fprintln(w, "\nPresets:")
	for _, name := range quizsolver.PresetNames() {
		slots, _ := quizsolver.Preset(name)
		fmt.Fprintf(w, "  %s:\n", name)
		for i, slot := range slots {
			fmt.Fprintf(w, "    %d: %s\n", i, strings.Join(slot, " | "))
		}
	}
}
