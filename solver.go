package quizsolver

// Evaluation is the full outcome of solving one quiz: the frozen candidate
// pool and the surviving answer vectors.
type Evaluation struct {
	Quiz      Quiz
	Pool      []ResultSet
	Solutions []Responses

	survived []bool // parallel to Pool
}

// Candidates is the number of answer vectors examined, always 2^len(Quiz).
func (e *Evaluation) Candidates() int {
	return len(e.Pool)
}

// LocallyConsistent counts pool entries whose every local verdict holds.
func (e *Evaluation) LocallyConsistent() int {
	n := 0
	for i := range e.Pool {
		if e.Pool[i].AllLocallyConsistent {
			n++
		}
	}
	return n
}

// Survived reports whether Pool[i] made it into Solutions.
func (e *Evaluation) Survived(i int) bool {
	return i >= 0 && i < len(e.survived) && e.survived[i]
}

// Solve returns every answer vector that is consistent with the quiz, in
// enumeration order.
func Solve(quiz Quiz) []Responses {
	return Evaluate(quiz).Solutions
}

// Evaluate runs both phases over the whole boolean hypercube for quiz.
func Evaluate(quiz Quiz) *Evaluation {
	pool := evaluateLocal(quiz)

	eval := &Evaluation{
		Quiz:      quiz,
		Pool:      pool,
		Solutions: make([]Responses, 0),
		survived:  make([]bool, len(pool)),
	}

	for i := range pool {
		rs := &pool[i]
		if !rs.AllLocallyConsistent {
			continue
		}
		if !globallyConsistent(quiz, rs, pool) {
			continue
		}
		eval.survived[i] = true
		eval.Solutions = append(eval.Solutions, rs.Responses())
	}

	VerboseLog("Solved [%s]: %d candidates, %d locally consistent, %d solutions",
		quiz, eval.Candidates(), eval.LocallyConsistent(), len(eval.Solutions))

	return eval
}

// evaluateLocal materializes the pool of result sets, one per answer vector.
func evaluateLocal(quiz Quiz) []ResultSet {
	slots := make([][]bool, len(quiz))
	for i := range slots {
		slots[i] = []bool{true, false}
	}
	vectors := Product(slots)

	pool := make([]ResultSet, len(vectors))
	for v, raw := range vectors {
		responses := Responses(raw)
		results := make([]Result, len(quiz))
		all := true
		for idx, q := range quiz {
			verdict := q.LocallyConsistent(LocalContext{
				Index:     idx,
				Responses: responses,
				Response:  responses[idx],
				Quiz:      quiz,
			})
			results[idx] = Result{Consistent: verdict, Response: responses[idx]}
			all = all && verdict.OK()
		}
		pool[v] = ResultSet{Results: results, AllLocallyConsistent: all}
	}
	return pool
}

// globallyConsistent evaluates every global predicate for rs against the
// unfiltered pool. All questions are evaluated. The pool is shared, not
// copied; predicates only read it.
func globallyConsistent(quiz Quiz, rs *ResultSet, pool []ResultSet) bool {
	all := true
	for idx, q := range quiz {
		verdict := q.GloballyConsistent(GlobalContext{
			Index:      idx,
			Quiz:       quiz,
			Response:   rs.Response(idx),
			ResultSet:  rs,
			ResultSets: pool,
		})
		all = all && verdict.OK()
	}
	return all
}
