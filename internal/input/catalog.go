package input

import "sort"

// Type identifies a controller layout in the catalog.
type Type string

// Supported controller types.
const (
	OneButton   Type = "OneButton"
	TwoButtons  Type = "TwoButtons"
	FourButtons Type = "FourButtons"
	FiveButtons Type = "FiveButtons"
	SixButtons  Type = "SixButtons"
	Touch       Type = "Touch"
)

// Key codes used by the fixed layouts.
const (
	CodeCtrl  = 17
	CodeSpace = 32
	CodeLeft  = 37
	CodeUp    = 38
	CodeRight = 39
	CodeDown  = 40
)

type layoutButton struct {
	key  string
	code int
}

// catalog maps each controller type to its fixed button layout. Touch has no
// buttons; it relays touch-phase events instead.
var catalog = map[Type][]layoutButton{
	OneButton: {
		{key: "button", code: CodeSpace},
	},
	TwoButtons: {
		{key: "left", code: CodeLeft},
		{key: "right", code: CodeRight},
	},
	FourButtons: {
		{key: "up", code: CodeUp},
		{key: "left", code: CodeLeft},
		{key: "right", code: CodeRight},
		{key: "A", code: CodeSpace},
	},
	FiveButtons: {
		{key: "up", code: CodeUp},
		{key: "left", code: CodeLeft},
		{key: "right", code: CodeRight},
		{key: "down", code: CodeDown},
		{key: "A", code: CodeSpace},
	},
	SixButtons: {
		{key: "up", code: CodeUp},
		{key: "left", code: CodeLeft},
		{key: "right", code: CodeRight},
		{key: "down", code: CodeDown},
		{key: "A", code: CodeSpace},
		{key: "B", code: CodeCtrl},
	},
	Touch: nil,
}

// Supported reports whether the controller type is in the catalog
func Supported(t Type) bool {
	_, ok := catalog[t]
	return ok
}

// Types returns the supported controller types in sorted order
func Types() []Type {
	types := make([]Type, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}
