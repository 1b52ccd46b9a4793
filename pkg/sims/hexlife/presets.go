package hexlife

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPreset is returned by Preset for unregistered names.
var ErrUnknownPreset = errors.New("hexlife: unknown preset")

var presets = map[string]Rule{}

// RegisterPreset adds a named rule. Invalid rules and empty names are ignored.
func RegisterPreset(name string, r Rule) {
	if name == "" || r.Validate() != nil {
		return
	}
	presets[name] = r.clone()
}

// Preset looks up a named rule.
func Preset(name string) (Rule, error) {
	r, ok := presets[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return r.clone(), nil
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultPreset names the rule used when nothing else is configured.
const DefaultPreset = "bestagons"

func init() {
	RegisterPreset(DefaultPreset, MustParseRule("12/2/3"))
	RegisterPreset("hexbrain", MustParseRule("/2/3"))
	RegisterPreset("hexlife", MustParseRule("34/2/2"))
	RegisterPreset("embers", MustParseRule("345/2/5"))
}
