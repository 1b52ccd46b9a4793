package hexlife

import "strconv"

// State is the value of a single cell. Zero is Off; any other value n is
// On(n), where n is the cell's vitality.
type State uint8

// Off is the dormant state. It contributes nothing to neighbor counts.
const Off State = 0

// On returns the live state with the given vitality. It panics when age is
// outside [1, 255].
func On(age int) State {
	if age < 1 || age > 255 {
		panic("hexlife: vitality out of range: " + strconv.Itoa(age))
	}
	return State(age)
}

// IsOn reports whether the cell is alive at any vitality.
func (s State) IsOn() bool { return s != Off }

// Age returns the vitality of a live cell, or zero for Off.
func (s State) Age() int { return int(s) }

func (s State) String() string {
	if s == Off {
		return "Off"
	}
	return "On(" + strconv.Itoa(int(s)) + ")"
}
