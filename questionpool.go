package quizsolver

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrUnknownQuestion is returned when a name does not resolve to a question.
var ErrUnknownQuestion = errors.New("unknown question")

// QuestionPool is a catalog of named questions that quiz slots are drawn from
type QuestionPool struct {
	mu        sync.RWMutex
	questions map[string]*Question
	order     []string // registration order
}

// NewQuestionPool creates a pool preloaded with the stock library
func NewQuestionPool() *QuestionPool {
	qp := &QuestionPool{
		questions: make(map[string]*Question),
		order:     make([]string, 0),
	}
	for _, q := range Library() {
		qp.Add(q)
	}
	return qp
}

// Add registers a question, replacing any question with the same name
func (qp *QuestionPool) Add(question *Question) {
	qp.mu.Lock()
	defer qp.mu.Unlock()

	name := question.Name()
	if _, ok := qp.questions[name]; !ok {
		qp.order = append(qp.order, name)
	}
	qp.questions[name] = question
}

// Get looks a question up by name. Names of the form numQuestionsIs<n>
// are built on demand.
func (qp *QuestionPool) Get(name string) (*Question, error) {
	qp.mu.RLock()
	question, ok := qp.questions[name]
	qp.mu.RUnlock()
	if ok {
		return question, nil
	}

	if digits, found := strings.CutPrefix(name, numQuestionsPrefix); found {
		n, err := strconv.Atoi(digits)
		if err == nil && n >= 0 {
			return NumQuestionsIs(n), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, name)
}

// Resolve looks up every name and returns them as a quiz, in order
func (qp *QuestionPool) Resolve(names []string) (Quiz, error) {
	quiz := make(Quiz, 0, len(names))
	for _, name := range names {
		question, err := qp.Get(name)
		if err != nil {
			return nil, err
		}
		quiz = append(quiz, question)
	}
	return quiz, nil
}

// Size returns the number of registered questions
func (qp *QuestionPool) Size() int {
	qp.mu.RLock()
	defer qp.mu.RUnlock()
	return len(qp.order)
}

// Names returns registered names in registration order
func (qp *QuestionPool) Names() []string {
	qp.mu.RLock()
	defer qp.mu.RUnlock()

	names := make([]string, len(qp.order))
	copy(names, qp.order)
	return names
}

// SortedNames returns registered names alphabetically
func (qp *QuestionPool) SortedNames() []string {
	names := qp.Names()
	sort.Strings(names)
	return names
}
