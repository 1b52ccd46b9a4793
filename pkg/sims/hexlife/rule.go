package hexlife

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxNeighbors is the largest possible live-neighbor count on a hex grid.
const MaxNeighbors = 6

// ErrInvalidRule is returned for rules that cannot drive a world.
var ErrInvalidRule = errors.New("hexlife: invalid rule")

// Rule is a Generations-style rule: neighbor counts under which a live cell
// survives, counts under which a dormant cell is born, and the total number
// of states including Off.
type Rule struct {
	Survival []int `yaml:"survival"`
	Birth    []int `yaml:"birth"`
	States   int   `yaml:"states"`
}

// Validate checks the state count and that every neighbor count is in
// [0, MaxNeighbors].
func (r Rule) Validate() error {
	if r.States < 2 || r.States > 256 {
		return fmt.Errorf("%w: states must be in [2, 256], got %d", ErrInvalidRule, r.States)
	}
	for _, n := range r.Survival {
		if n < 0 || n > MaxNeighbors {
			return fmt.Errorf("%w: survival count %d outside [0, %d]", ErrInvalidRule, n, MaxNeighbors)
		}
	}
	for _, n := range r.Birth {
		if n < 0 || n > MaxNeighbors {
			return fmt.Errorf("%w: birth count %d outside [0, %d]", ErrInvalidRule, n, MaxNeighbors)
		}
	}
	return nil
}

// MaxAge is the highest vitality a live cell can reach.
func (r Rule) MaxAge() State { return State(r.States - 1) }

// String renders the rule in survival/birth/states notation, e.g. "12/2/3".
func (r Rule) String() string {
	return digits(r.Survival) + "/" + digits(r.Birth) + "/" + strconv.Itoa(r.States)
}

func (r Rule) clone() Rule {
	return Rule{
		Survival: slices.Clone(r.Survival),
		Birth:    slices.Clone(r.Birth),
		States:   r.States,
	}
}

// ParseRule reads survival/birth/states notation. Each field may carry an
// S, B or C prefix, in which case fields are matched by letter instead of
// position ("B2/S12/C3" and "12/2/3" are the same rule).
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Rule{}, fmt.Errorf("%w: %q: want survival/birth/states", ErrInvalidRule, s)
	}
	var fields [3]string
	var seen [3]bool
	for i, p := range parts {
		slot := i
		if p != "" {
			switch p[0] {
			case 'S', 's':
				slot, p = 0, p[1:]
			case 'B', 'b':
				slot, p = 1, p[1:]
			case 'C', 'c', 'G', 'g':
				slot, p = 2, p[1:]
			}
		}
		if seen[slot] {
			return Rule{}, fmt.Errorf("%w: %q: duplicate field", ErrInvalidRule, s)
		}
		seen[slot] = true
		fields[slot] = p
	}

	survival, err := parseCounts(fields[0])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: survival: %v", ErrInvalidRule, s, err)
	}
	birth, err := parseCounts(fields[1])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: birth: %v", ErrInvalidRule, s, err)
	}
	states, err := strconv.Atoi(fields[2])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: states: %v", ErrInvalidRule, s, err)
	}
	r := Rule{Survival: survival, Birth: birth, States: states}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level literals.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("unexpected %q", ch)
		}
		n := int(ch - '0')
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out, nil
}

func digits(counts []int) string {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	var b strings.Builder
	for _, n := range sorted {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// countMask is a bitset over neighbor counts 0..MaxNeighbors.
type countMask uint8

func maskOf(counts []int) countMask {
	var m countMask
	for _, n := range counts {
		m |= 1 << uint(n)
	}
	return m
}

func (m countMask) has(n int) bool { return m&(1<<uint(n)) != 0 }
