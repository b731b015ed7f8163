package automaton

import (
	"errors"
	"strconv"
	"strings"
)

// RuleSet is an outer-totalistic survival/birth rule. Each set is stored
// as a bitmask over neighbor counts, so the zero value never births or
// keeps anything alive.
type RuleSet struct {
	survival uint32
	birth    uint32
	max      int
}

// maxRuleNeighbors bounds maxNeighbors so every count fits the uint32 masks.
const maxRuleNeighbors = 31

// NewRuleSet validates both count sets against [0, maxNeighbors].
// Empty sets are allowed. Duplicates are ignored. maxNeighbors itself
// must lie in [0, 31].
func NewRuleSet(survival, birth []int, maxNeighbors int) (RuleSet, error) {
	if maxNeighbors < 0 || maxNeighbors > maxRuleNeighbors {
		return RuleSet{}, &RuleError{Set: "neighborhood", Value: maxNeighbors, Max: maxRuleNeighbors}
	}
	s, err := countMask("survival", survival, maxNeighbors)
	if err != nil {
		return RuleSet{}, err
	}
	b, err := countMask("birth", birth, maxNeighbors)
	if err != nil {
		return RuleSet{}, err
	}
	return RuleSet{survival: s, birth: b, max: maxNeighbors}, nil
}

// MustRuleSet is NewRuleSet for static rule tables. Panics on error.
func MustRuleSet(survival, birth []int, maxNeighbors int) RuleSet {
	r, err := NewRuleSet(survival, birth, maxNeighbors)
	if err != nil {
		panic(err)
	}
	return r
}

// Conway returns B3/S23 for an 8-neighbor topology.
func Conway() RuleSet {
	return MustRuleSet([]int{2, 3}, []int{3}, 8)
}

func countMask(set string, counts []int, maxNeighbors int) (uint32, error) {
	var mask uint32
	for _, n := range counts {
		if n < 0 || n > maxNeighbors {
			return 0, &RuleError{Set: set, Value: n, Max: maxNeighbors}
		}
		mask |= 1 << uint(n)
	}
	return mask, nil
}

// Next returns the state of a cell in the following generation.
func (r RuleSet) Next(alive bool, liveNeighbors int) bool {
	if liveNeighbors < 0 || liveNeighbors > r.max {
		return false
	}
	if alive {
		return r.survival&(1<<uint(liveNeighbors)) != 0
	}
	return r.birth&(1<<uint(liveNeighbors)) != 0
}

// MaxNeighbors returns the neighborhood size the rule was validated for.
func (r RuleSet) MaxNeighbors() int {
	return r.max
}

// Survival returns the sorted survival counts.
func (r RuleSet) Survival() []int {
	return maskCounts(r.survival, r.max)
}

// Birth returns the sorted birth counts.
func (r RuleSet) Birth() []int {
	return maskCounts(r.birth, r.max)
}

func maskCounts(mask uint32, maxNeighbors int) []int {
	var out []int
	for n := 0; n <= maxNeighbors; n++ {
		if mask&(1<<uint(n)) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// String renders the rule in B/S notation, e.g. "B3/S23" or "B5/S4,5,6"
// when any count has more than one digit.
func (r RuleSet) String() string {
	return "B" + formatCounts(r.Birth(), r.max) + "/S" + formatCounts(r.Survival(), r.max)
}

func formatCounts(counts []int, maxNeighbors int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	if maxNeighbors < 10 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, ",")
}

// ParseCounts parses a count list such as "2,3", "4-6" or "[]".
// An empty string or "[]" yields the empty set. A range may not end past
// the largest neighborhood (26); other range checks are left to NewRuleSet.
func ParseCounts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		lo, hi, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &RuleError{Token: tok}
			}
			out = append(out, n)
			continue
		}
		a, errA := strconv.Atoi(strings.TrimSpace(lo))
		b, errB := strconv.Atoi(strings.TrimSpace(hi))
		if errA != nil || errB != nil || a > b || b > largestNeighborhood {
			return nil, &RuleError{Token: tok}
		}
		for n := a; n <= b; n++ {
			out = append(out, n)
		}
	}
	return out, nil
}

var largestNeighborhood = MaxNeighbors(Flat3D)

// ParseRuleSet parses survival and birth count lists and validates them.
func ParseRuleSet(survival, birth string, maxNeighbors int) (RuleSet, error) {
	s, err := ParseCounts(survival)
	if err != nil {
		return RuleSet{}, withSet(err, "survival")
	}
	b, err := ParseCounts(birth)
	if err != nil {
		return RuleSet{}, withSet(err, "birth")
	}
	return NewRuleSet(s, b, maxNeighbors)
}

// ParseRule parses B/S notation in either order: "B3/S23", "S23/B3",
// "B5/S4,5,6" or "B4/S4-5". Without separators every digit is one count.
func ParseRule(s string, maxNeighbors int) (RuleSet, error) {
	var survival, birth string
	var haveS, haveB bool
	for _, part := range strings.Split(strings.TrimSpace(s), "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			return RuleSet{}, &RuleError{Token: s}
		}
		switch part[0] {
		case 'B', 'b':
			birth, haveB = expandDigits(part[1:]), true
		case 'S', 's':
			survival, haveS = expandDigits(part[1:]), true
		default:
			return RuleSet{}, &RuleError{Token: part}
		}
	}
	if !haveS || !haveB {
		return RuleSet{}, &RuleError{Token: s}
	}
	return ParseRuleSet(survival, birth, maxNeighbors)
}

// expandDigits turns "23" into "2,3" unless the list already uses separators.
func expandDigits(s string) string {
	if strings.ContainsAny(s, ",-[]") {
		return s
	}
	return strings.Join(strings.Split(s, ""), ",")
}

func withSet(err error, set string) error {
	var re *RuleError
	if errors.As(err, &re) {
		re.Set = set
	}
	return err
}
