package passkit

import "strings"

// Preset identifies a named, pre-validated policy bundled for a common use
// case.
type Preset int

// Built-in presets. PresetDefault is the baseline policy returned by
// DefaultPolicy; the rest mirror well-known passphrase shapes.
const (
	PresetDefault Preset = iota
	PresetAppleID
	PresetWindowsNTLMv1
	PresetSecurityQuestions
	PresetWeb16
	PresetWeb32
	PresetWiFi
	PresetXKCD
)

var presetNames = [...]string{
	PresetDefault:           "default",
	PresetAppleID:           "apple-id",
	PresetWindowsNTLMv1:     "windows-ntlm-v1",
	PresetSecurityQuestions: "security-questions",
	PresetWeb16:             "web16",
	PresetWeb32:             "web32",
	PresetWiFi:              "wifi",
	PresetXKCD:              "xkcd",
}

// String returns the canonical preset name.
func (p Preset) String() string {
	if p >= 0 && int(p) < len(presetNames) {
		return presetNames[p]
	}
	return presetNames[PresetDefault]
}

// ParsePreset resolves a preset by name, case-insensitively. Unrecognized
// names resolve to PresetDefault rather than an error: a preset lookup is a
// convenience and the baseline policy is always a safe answer.
func ParsePreset(name string) Preset {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range presetNames {
		if n == name {
			return Preset(p)
		}
	}
	return PresetDefault
}

// Presets returns all built-in presets in declaration order.
func Presets() []Preset {
	all := make([]Preset, len(presetNames))
	for i := range presetNames {
		all[i] = Preset(i)
	}
	return all
}

// FromPreset returns the literal policy registered under the preset. The
// table values are known-valid, so no builder validation runs here.
func FromPreset(preset Preset) Policy {
	switch preset {
	case PresetAppleID:
		return Policy{
			wordsCount:           3,
			wordLengths:          [2]int{5, 7},
			wordTransforms:       Transforms(Lowercase, Uppercase),
			separators:           "-:.,",
			paddingDigits:        [2]int{2, 2},
			paddingSymbols:       "!?@&",
			paddingSymbolLengths: [2]int{1, 1},
			paddingStrategy:      FixedPadding(),
		}
	case PresetWindowsNTLMv1:
		return Policy{
			wordsCount:           2,
			wordLengths:          [2]int{5, 5},
			wordTransforms:       Transforms(InversedTitlecase),
			separators:           "-+=.*_|~,",
			paddingDigits:        [2]int{1, 0},
			paddingSymbols:       "!@$%^&*+=:|~?",
			paddingSymbolLengths: [2]int{0, 1},
			paddingStrategy:      FixedPadding(),
		}
	case PresetSecurityQuestions:
		return Policy{
			wordsCount:           6,
			wordLengths:          [2]int{4, 8},
			wordTransforms:       Transforms(Lowercase),
			separators:           " ",
			paddingDigits:        [2]int{0, 0},
			paddingSymbols:       ".!?",
			paddingSymbolLengths: [2]int{0, 1},
			paddingStrategy:      FixedPadding(),
		}
	case PresetWeb16:
		return Policy{
			wordsCount:           3,
			wordLengths:          [2]int{4, 4},
			wordTransforms:       Transforms(Lowercase, Uppercase),
			separators:           "-+=.*_|~,",
			paddingDigits:        [2]int{0, 0},
			paddingSymbols:       "!@$%^&*+=:|~?",
			paddingSymbolLengths: [2]int{1, 1},
			paddingStrategy:      FixedPadding(),
		}
	case PresetWeb32:
		return Policy{
			wordsCount:           4,
			wordLengths:          [2]int{4, 5},
			wordTransforms:       Transforms(AltercaseUpperFirst),
			separators:           "-+=.*_|~,",
			paddingDigits:        [2]int{2, 2},
			paddingSymbols:       "!@$%^&*+=:|~?",
			paddingSymbolLengths: [2]int{1, 1},
			paddingStrategy:      FixedPadding(),
		}
	case PresetWiFi:
		return Policy{
			wordsCount:           6,
			wordLengths:          [2]int{4, 8},
			wordTransforms:       Transforms(Lowercase, Uppercase),
			separators:           "-+=.*_|~,",
			paddingDigits:        [2]int{4, 4},
			paddingSymbols:       "!@$%^&*+=:|~?",
			paddingSymbolLengths: [2]int{0, 0},
			paddingStrategy:      AdaptivePadding(63),
		}
	case PresetXKCD:
		return Policy{
			wordsCount:           4,
			wordLengths:          [2]int{4, 8},
			wordTransforms:       Transforms(Lowercase, Uppercase),
			separators:           "-",
			paddingDigits:        [2]int{0, 0},
			paddingSymbols:       "",
			paddingSymbolLengths: [2]int{0, 0},
			paddingStrategy:      FixedPadding(),
		}
	default:
		return DefaultPolicy()
	}
}
