package quizsolver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned for a sweep name with no preset.
var ErrUnknownPreset = errors.New("unknown preset")

// Presets maps a sweep name to its per-slot pools of question names.
// Every combination of one name per slot is a quiz variant.
var Presets = map[string][][]string{
	"classic": {
		{"alwaysConsistent"},
		{"adjacentAreSame", "adjacentAreTrue", "adjacentAreFalse"},
		{"evenNumberAreFalse", "oddNumberAreFalse", "oddNumberAreTrue", "evenNumberAreTrue"},
		{"allAreSame", "allAreTrue", "allAreFalse", "othersAreSame", "othersAreTrue", "othersAreFalse"},
		{"numQuestionsIs5", "numQuestionsIs6"},
		{"solutionSetIsUnique"},
	},
	"demo": {
		{"numQuestionsIs5"},
		{"alwaysConsistent"},
		{"othersAreSame"},
		{"evenNumberAreTrue"},
		{"solutionSetIsUnique"},
	},
}

// DefaultPreset is the sweep the CLI runs when none is named.
const DefaultPreset = "classic"

// Preset returns a copy of the named slot pools.
func Preset(name string) ([][]string, error) {
	slots, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	out := make([][]string, len(slots))
	for i, slot := range slots {
		out[i] = append([]string(nil), slot...)
	}
	return out, nil
}

// PresetNames lists the presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
