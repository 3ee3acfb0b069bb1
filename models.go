package quizsolver

import "strings"

// Tri is an answer read from a response vector. Reads outside the vector
// yield Undefined, which is neither true nor false:
//
//   - Undefined equals only Undefined
//   - Not treats Undefined as "not true", so Undefined.Not() is Yes
//   - And returns its left side unless that is Yes, so an Undefined left
//     side stays Undefined and No.And(Undefined) is No
//
// An Undefined expectation never matches a response (see Matches).
type Tri int8

const (
	Undefined Tri = iota
	Yes
	No
)

// TriOf lifts a plain boolean.
func TriOf(b bool) Tri {
	if b {
		return Yes
	}
	return No
}

// Defined reports whether t is Yes or No.
func (t Tri) Defined() bool {
	return t != Undefined
}

// Not is Yes for anything that is not Yes.
func (t Tri) Not() Tri {
	if t == Yes {
		return No
	}
	return Yes
}

// And is t when t is not Yes, otherwise o.
func (t Tri) And(o Tri) Tri {
	if t != Yes {
		return t
	}
	return o
}

// Eq is strict equality; Undefined equals only Undefined.
func (t Tri) Eq(o Tri) Tri {
	return TriOf(t == o)
}

func (t Tri) String() string {
	switch t {
	case Yes:
		return "true"
	case No:
		return "false"
	}
	return "undefined"
}

// Responses is one hypothesized answer per question, in quiz order.
type Responses []bool

// At returns the answer at i, or Undefined when i is out of range.
func (r Responses) At(i int) Tri {
	if i < 0 || i >= len(r) {
		return Undefined
	}
	return TriOf(r[i])
}

// Count returns how many answers equal v.
func (r Responses) Count(v bool) int {
	n := 0
	for _, each := range r {
		if each == v {
			n++
		}
	}
	return n
}

// CountExcept is Count ignoring the answer at idx.
func (r Responses) CountExcept(idx int, v bool) int {
	n := 0
	for i, each := range r {
		if i != idx && each == v {
			n++
		}
	}
	return n
}

// Consistent is the verdict that a response agrees with what its question
// asserts. Build one with Consistency or Matches.
type Consistent struct {
	ok bool
}

// Consistency brands a boolean as a verdict.
func Consistency(ok bool) Consistent {
	return Consistent{ok: ok}
}

// Matches is consistent iff expected is defined and equals response.
func Matches(response bool, expected Tri) Consistent {
	return Consistent{ok: expected.Defined() && expected == TriOf(response)}
}

// OK unwraps the verdict.
func (c Consistent) OK() bool {
	return c.ok
}

// LocalContext is what a local predicate sees for one candidate vector.
// All fields are read-only.
type LocalContext struct {
	Index     int
	Responses Responses
	Response  bool
	Quiz      Quiz
}

// GlobalContext adds the full candidate pool to the local view.
// ResultSets is the unfiltered pool, locally consistent or not, and
// ResultSet points into it. Both are shared by every global predicate of
// an evaluation and must not be modified.
type GlobalContext struct {
	Index      int
	Quiz       Quiz
	Response   bool
	ResultSet  *ResultSet
	ResultSets []ResultSet
}

// LocalChecker judges one answer vector in isolation.
type LocalChecker interface {
	LocallyConsistent(ctx LocalContext) Consistent
}

// GlobalChecker judges one answer vector against the whole candidate pool.
type GlobalChecker interface {
	GloballyConsistent(ctx GlobalContext) Consistent
}

// LocalFunc adapts a function to LocalChecker.
type LocalFunc func(ctx LocalContext) Consistent

func (f LocalFunc) LocallyConsistent(ctx LocalContext) Consistent {
	return f(ctx)
}

// GlobalFunc adapts a function to GlobalChecker.
type GlobalFunc func(ctx GlobalContext) Consistent

func (f GlobalFunc) GloballyConsistent(ctx GlobalContext) Consistent {
	return f(ctx)
}

type alwaysConsistent struct{}

func (alwaysConsistent) LocallyConsistent(LocalContext) Consistent {
	return Consistency(true)
}

func (alwaysConsistent) GloballyConsistent(GlobalContext) Consistent {
	return Consistency(true)
}

// AlwaysConsistent is the default strategy for a missing capability.
var AlwaysConsistent = alwaysConsistent{}

// Question is one self-referential yes/no question. It is immutable once
// built and may be shared between any number of quizzes.
type Question struct {
	name   string
	local  LocalChecker
	global GlobalChecker

	hasLocal  bool
	hasGlobal bool
}

// QuestionOption configures NewQuestion.
type QuestionOption func(*Question)

// WithLocal sets the local predicate.
func WithLocal(c LocalChecker) QuestionOption {
	return func(q *Question) {
		if c != nil {
			q.local = c
			q.hasLocal = true
		}
	}
}

// WithGlobal sets the global predicate.
func WithGlobal(c GlobalChecker) QuestionOption {
	return func(q *Question) {
		if c != nil {
			q.global = c
			q.hasGlobal = true
		}
	}
}

// NewQuestion builds a question. Capabilities not supplied default to
// AlwaysConsistent.
func NewQuestion(name string, opts ...QuestionOption) *Question {
	q := &Question{
		name:   name,
		local:  AlwaysConsistent,
		global: AlwaysConsistent,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Name is for display only.
func (q *Question) Name() string { return q.name }

// HasLocal reports whether a local predicate was supplied.
func (q *Question) HasLocal() bool { return q.hasLocal }

// HasGlobal reports whether a global predicate was supplied.
func (q *Question) HasGlobal() bool { return q.hasGlobal }

// LocallyConsistent runs the local strategy.
func (q *Question) LocallyConsistent(ctx LocalContext) Consistent {
	return q.local.LocallyConsistent(ctx)
}

// GloballyConsistent runs the global strategy.
func (q *Question) GloballyConsistent(ctx GlobalContext) Consistent {
	return q.global.GloballyConsistent(ctx)
}

func (q *Question) String() string {
	return q.name
}

// Quiz is an ordered list of questions. Position is meaningful: it is the
// index every predicate and every Result is keyed by.
type Quiz []*Question

// Names returns the question names in order.
func (qz Quiz) Names() []string {
	names := make([]string, len(qz))
	for i, q := range qz {
		names[i] = q.Name()
	}
	return names
}

func (qz Quiz) String() string {
	return strings.Join(qz.Names(), ", ")
}

// Result is the local verdict for one question paired with its response.
type Result struct {
	Consistent Consistent
	Response   bool
}

// ResultSet holds the per-question results for one answer vector.
// Results[i] always belongs to Quiz[i].
type ResultSet struct {
	Results              []Result
	AllLocallyConsistent bool
}

// Response returns the hypothesized answer at idx.
func (rs *ResultSet) Response(idx int) bool {
	return rs.Results[idx].Response
}

// Responses returns the plain answer vector, dropping the verdicts.
func (rs *ResultSet) Responses() Responses {
	out := make(Responses, len(rs.Results))
	for i, r := range rs.Results {
		out[i] = r.Response
	}
	return out
}
