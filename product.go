package quizsolver

// Product returns the Cartesian product of choices. The first slot varies
// slowest and the last fastest. No choices yields a single empty tuple; an
// empty choice set anywhere yields no tuples at all.
func Product[T any](choices [][]T) [][]T {
	if len(choices) == 0 {
		return [][]T{{}}
	}

	first, rest := choices[0], choices[1:]
	tails := Product(rest)

	out := make([][]T, 0, len(first)*len(tails))
	for _, v := range first {
		for _, tail := range tails {
			tuple := make([]T, 0, len(tail)+1)
			tuple = append(tuple, v)
			tuple = append(tuple, tail...)
			out = append(out, tuple)
		}
	}
	return out
}
