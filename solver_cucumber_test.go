//go:build cucumber

package quizsolver

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestSolverFeatures runs the solver scenarios via godog.
func TestSolverFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "solver",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("features", "solver.feature")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeScenario wires step definitions for the solver feature.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &solverState{pool: NewQuestionPool()}

	ctx.Step(`^a quiz of "([^"]*)"$`, state.givenQuiz)
	ctx.Step(`^the quiz is solved$`, state.solve)
	ctx.Step(`^there are (\d+) candidates$`, state.candidatesAre)
	ctx.Step(`^there are (\d+) locally consistent candidates$`, state.locallyConsistentAre)
	ctx.Step(`^the solutions are "([^"]*)"$`, state.solutionsAre)
}

// solverState holds scenario state for the feature tests.
type solverState struct {
	pool *QuestionPool
	quiz Quiz
	eval *Evaluation
}

func (s *solverState) givenQuiz(names string) error {
	parts := strings.Split(names, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	quiz, err := s.pool.Resolve(parts)
	if err != nil {
		return err
	}
	s.quiz = quiz
	return nil
}

func (s *solverState) solve() error {
	s.eval = Evaluate(s.quiz)
	return nil
}

func (s *solverState) candidatesAre(n int) error {
	if got := s.eval.Candidates(); got != n {
		return fmt.Errorf("expected %d candidates, got %d", n, got)
	}
	return nil
}

func (s *solverState) locallyConsistentAre(n int) error {
	if got := s.eval.LocallyConsistent(); got != n {
		return fmt.Errorf("expected %d locally consistent candidates, got %d", n, got)
	}
	return nil
}

func (s *solverState) solutionsAre(want string) error {
	got := make([]string, len(s.eval.Solutions))
	for i, solution := range s.eval.Solutions {
		got[i] = formatVector(solution)
	}
	gotText := strings.Join(got, " ")
	if len(got) == 0 {
		gotText = "none"
	}
	if gotText != want {
		return fmt.Errorf("expected solutions %q, got %q", want, gotText)
	}
	return nil
}
