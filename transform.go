package passkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transform is a single word case transform.
type Transform uint8

// Case transforms selectable in a policy. The first four apply to one word
// independently; the two Altercase transforms are group modes that assign
// alternating cases across the whole word sequence and exclude every other
// transform.
const (
	Lowercase Transform = 1 << iota
	Titlecase
	Uppercase
	InversedTitlecase
	AltercaseLowerFirst
	AltercaseUpperFirst
)

// singleWordTransforms enumerates the transforms applicable to one word, in
// a stable order used when picking one at random.
var singleWordTransforms = [4]Transform{Lowercase, Titlecase, Uppercase, InversedTitlecase}

var transformNames = map[Transform]string{
	Lowercase:           "lowercase",
	Titlecase:           "titlecase",
	Uppercase:           "uppercase",
	InversedTitlecase:   "inversed_titlecase",
	AltercaseLowerFirst: "altercase_lower_first",
	AltercaseUpperFirst: "altercase_upper_first",
}

// String returns the canonical snake_case name of the transform.
func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTransform resolves a canonical transform name back to its Transform.
func ParseTransform(name string) (Transform, bool) {
	for t, n := range transformNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// TransformSet is a set of Transform values.
type TransformSet uint8

// Transforms builds a TransformSet from its members.
func Transforms(ts ...Transform) TransformSet {
	var set TransformSet
	for _, t := range ts {
		set |= TransformSet(t)
	}
	return set
}

// Has reports whether t is a member of the set.
func (s TransformSet) Has(t Transform) bool {
	return s&TransformSet(t) != 0
}

// Members returns the transforms enabled in the set, in declaration order.
func (s TransformSet) Members() []Transform {
	var members []Transform
	for _, t := range []Transform{
		Lowercase, Titlecase, Uppercase, InversedTitlecase,
		AltercaseLowerFirst, AltercaseUpperFirst,
	} {
		if s.Has(t) {
			members = append(members, t)
		}
	}
	return members
}

// enabledSingles returns the single-word transforms present in the set.
func (s TransformSet) enabledSingles() []Transform {
	singles := make([]Transform, 0, len(singleWordTransforms))
	for _, t := range singleWordTransforms {
		if s.Has(t) {
			singles = append(singles, t)
		}
	}
	return singles
}

// applyTransform renders a word under a case transform. Title-casing
// operates on the first rune so multi-byte words stay intact. Unrecognized
// transform values fall back to lowercase.
func applyTransform(word string, t Transform) string {
	switch t {
	case Uppercase:
		return strings.ToUpper(word)
	case Titlecase:
		first, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			return word
		}
		return string(unicode.ToUpper(first)) + word[size:]
	case InversedTitlecase:
		first, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			return word
		}
		return string(unicode.ToLower(first)) + strings.ToUpper(word[size:])
	default:
		return strings.ToLower(word)
	}
}
