package quizsolver

import (
	"context"
	"fmt"
	"log"
	"time"
)

// SweepRequest describes a batch of quiz variants to solve
type SweepRequest struct {
	Name       string     `json:"name" yaml:"name"`
	Slots      [][]string `json:"slots" yaml:"slots"`
	OnlySolved bool       `json:"only_solved,omitempty" yaml:"only_solved,omitempty"`
}

// QuizReport is the outcome for one quiz variant
type QuizReport struct {
	Questions         []string `json:"questions" yaml:"questions"`
	Candidates        int      `json:"candidates" yaml:"candidates"`
	LocallyConsistent int      `json:"locally_consistent" yaml:"locally_consistent"`
	Solutions         [][]bool `json:"solutions" yaml:"solutions"`
}

// SweepReport collects the outcome of every variant in a sweep
type SweepReport struct {
	Sweep     string       `json:"sweep" yaml:"sweep"`
	Variants  int          `json:"variants" yaml:"variants"`
	Solved    int          `json:"solved" yaml:"solved"`
	Quizzes   []QuizReport `json:"quizzes" yaml:"quizzes"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
}

// QuizSweeper builds quiz variants from slot pools and solves each one
type QuizSweeper struct {
	pool   *QuestionPool
	tracer *Tracer
}

// NewQuizSweeper creates a sweeper that resolves names against pool
func NewQuizSweeper(pool *QuestionPool) *QuizSweeper {
	return &QuizSweeper{pool: pool}
}

// SetTracer attaches a tracer that receives every evaluation
func (qs *QuizSweeper) SetTracer(tracer *Tracer) {
	qs.tracer = tracer
}

// Variants resolves the slot pools and returns every quiz they produce, in
// Product order
func (qs *QuizSweeper) Variants(slots [][]string) ([]Quiz, error) {
	pools := make([][]*Question, len(slots))
	for i, names := range slots {
		quiz, err := qs.pool.Resolve(names)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		pools[i] = quiz
	}

	combos := Product(pools)
	variants := make([]Quiz, len(combos))
	for i, combo := range combos {
		variants[i] = Quiz(combo)
	}
	return variants, nil
}

// Sweep solves every variant of req in order. The context is checked
// between variants; a single solve always runs to completion.
func (qs *QuizSweeper) Sweep(ctx context.Context, req SweepRequest) (*SweepReport, error) {
	variants, err := qs.Variants(req.Slots)
	if err != nil {
		return nil, fmt.Errorf("failed to build variants for %q: %w", req.Name, err)
	}

	log.Printf("Starting sweep %q: %d slots, %d variants", req.Name, len(req.Slots), len(variants))

	report := &SweepReport{
		Sweep:     req.Name,
		Variants:  len(variants),
		Quizzes:   make([]QuizReport, 0, len(variants)),
		CreatedAt: time.Now(),
	}

	for i, quiz := range variants {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sweep %q stopped after %d of %d variants: %w", req.Name, i, len(variants), err)
		}

		eval := Evaluate(quiz)
		if qs.tracer != nil {
			qs.tracer.LogEvaluation(eval)
		}

		if len(eval.Solutions) > 0 {
			report.Solved++
		} else if req.OnlySolved {
			continue
		}

		report.Quizzes = append(report.Quizzes, newQuizReport(eval))
	}

	log.Printf("Sweep %q complete: %d of %d variants have solutions", req.Name, report.Solved, report.Variants)
	return report, nil
}

func newQuizReport(eval *Evaluation) QuizReport {
	solutions := make([][]bool, len(eval.Solutions))
	for i, s := range eval.Solutions {
		solutions[i] = []bool(s)
	}
	return QuizReport{
		Questions:         eval.Quiz.Names(),
		Candidates:        eval.Candidates(),
		LocallyConsistent: eval.LocallyConsistent(),
		Solutions:         solutions,
	}
}
