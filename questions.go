package quizsolver

import "fmt"

// The questions below are the stock library used by the presets and the
// CLI. Each local predicate compares the response against what the
// question asserts about the answer vector.

var AlwaysConsistentQuestion = NewQuestion("alwaysConsistent",
	WithLocal(LocalFunc(func(LocalContext) Consistent {
		return Consistency(true)
	})),
)

var ResponseIsTrue = NewQuestion("responseIsTrue",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		return Consistency(ctx.Response)
	})),
)

var ResponseIsFalse = NewQuestion("responseIsFalse",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		return Consistency(!ctx.Response)
	})),
)

// EchoResponse asserts its own answer, so either answer holds.
var EchoResponse = NewQuestion("echoResponse",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		return Matches(ctx.Response, TriOf(ctx.Response))
	})),
)

// NegateResponse asserts the opposite of its own answer; it never holds.
var NegateResponse = NewQuestion("negateResponse",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		return Matches(ctx.Response, TriOf(!ctx.Response))
	})),
)

var AdjacentAreSame = NewQuestion("adjacentAreSame",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		prev, next := neighbours(ctx)
		return Matches(ctx.Response, prev.Eq(next))
	})),
)

var AdjacentAreTrue = NewQuestion("adjacentAreTrue",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		prev, next := neighbours(ctx)
		return Matches(ctx.Response, prev.And(next))
	})),
)

var AdjacentAreFalse = NewQuestion("adjacentAreFalse",
	WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		prev, next := neighbours(ctx)
		return Matches(ctx.Response, prev.Not().And(next.Not()))
	})),
)

func neighbours(ctx LocalContext) (Tri, Tri) {
	return ctx.Responses.At(ctx.Index - 1), ctx.Responses.At(ctx.Index + 1)
}

var OddNumberAreTrue = countQuestion("oddNumberAreTrue", func(r Responses) bool {
	return r.Count(true)%2 == 1
})

var EvenNumberAreTrue = countQuestion("evenNumberAreTrue", func(r Responses) bool {
	return r.Count(true)%2 == 0
})

var OddNumberAreFalse = countQuestion("oddNumberAreFalse", func(r Responses) bool {
	return r.Count(false)%2 == 1
})

var EvenNumberAreFalse = countQuestion("evenNumberAreFalse", func(r Responses) bool {
	return r.Count(false)%2 == 0
})

var AllAreSame = countQuestion("allAreSame", func(r Responses) bool {
	return r.Count(true) == len(r) || r.Count(false) == len(r)
})

var AllAreTrue = countQuestion("allAreTrue", func(r Responses) bool {
	return r.Count(true) == len(r)
})

var AllAreFalse = countQuestion("allAreFalse", func(r Responses) bool {
	return r.Count(false) == len(r)
})

// countQuestion builds a question whose assertion depends only on the
// answer vector as a whole.
func countQuestion(name string, expected func(Responses) bool) *Question {
	return NewQuestion(name, WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		return Matches(ctx.Response, TriOf(expected(ctx.Responses)))
	})))
}

var OthersAreSame = othersQuestion("othersAreSame", func(trues, falses int) bool {
	return trues == 0 || falses == 0
})

var OthersAreTrue = othersQuestion("othersAreTrue", func(_, falses int) bool {
	return falses == 0
})

var OthersAreFalse = othersQuestion("othersAreFalse", func(trues, _ int) bool {
	return trues == 0
})

// othersQuestion is like countQuestion but leaves the asking question out.
func othersQuestion(name string, expected func(trues, falses int) bool) *Question {
	return NewQuestion(name, WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
		trues := ctx.Responses.CountExcept(ctx.Index, true)
		falses := ctx.Responses.CountExcept(ctx.Index, false)
		return Matches(ctx.Response, TriOf(expected(trues, falses)))
	})))
}

// NumQuestionsIs asserts the quiz has exactly n questions.
func NumQuestionsIs(n int) *Question {
	return NewQuestion(fmt.Sprintf("%s%d", numQuestionsPrefix, n),
		WithLocal(LocalFunc(func(ctx LocalContext) Consistent {
			return Matches(ctx.Response, TriOf(len(ctx.Responses) == n))
		})),
	)
}

const numQuestionsPrefix = "numQuestionsIs"

// SolutionSetIsUnique asserts that exactly one consistent candidate answers
// it true. Answered false, it asserts that more than one answers it false.
var SolutionSetIsUnique = NewQuestion("solutionSetIsUnique",
	WithGlobal(GlobalFunc(func(ctx GlobalContext) Consistent {
		trues, falses := consistentAnswers(ctx)
		if ctx.Response {
			return Consistency(trues == 1)
		}
		return Consistency(falses > 1)
	})),
)

// SolutionSetIsNotUnique mirrors SolutionSetIsUnique.
var SolutionSetIsNotUnique = NewQuestion("solutionSetIsNotUnique",
	WithGlobal(GlobalFunc(func(ctx GlobalContext) Consistent {
		trues, falses := consistentAnswers(ctx)
		if ctx.Response {
			return Consistency(trues > 1)
		}
		return Consistency(falses == 1)
	})),
)

// consistentAnswers counts the locally consistent pool entries answering
// the current question true and false.
func consistentAnswers(ctx GlobalContext) (trues, falses int) {
	for i := range ctx.ResultSets {
		rs := &ctx.ResultSets[i]
		if !rs.AllLocallyConsistent {
			continue
		}
		if rs.Response(ctx.Index) {
			trues++
		} else {
			falses++
		}
	}
	return trues, falses
}

// Library lists every fixed question, in the order the CLI prints them.
func Library() []*Question {
	return []*Question{
		AlwaysConsistentQuestion,
		ResponseIsTrue,
		ResponseIsFalse,
		EchoResponse,
		NegateResponse,
		AdjacentAreSame,
		AdjacentAreTrue,
		AdjacentAreFalse,
		OddNumberAreTrue,
		EvenNumberAreTrue,
		OddNumberAreFalse,
		EvenNumberAreFalse,
		AllAreSame,
		AllAreTrue,
		AllAreFalse,
		OthersAreSame,
		OthersAreTrue,
		OthersAreFalse,
		SolutionSetIsUnique,
		SolutionSetIsNotUnique,
	}
}
