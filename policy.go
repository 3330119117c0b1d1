package passkit

// Word length bounds accepted by a Policy. The built-in dictionary carries
// words between these lengths, and shorter or longer words make poor
// passphrase material either way.
const (
	MinWordLength = 4
	MaxWordLength = 10
)

// Unchanged, passed as an optional builder argument, keeps the current value
// of the corresponding field. Any negative value behaves the same way.
const Unchanged = -1

// Policy is an immutable description of how a passphrase is generated: how
// many words, from which length range, how each word is cased, which
// separator and padding characters surround them, and whether the assembled
// passphrase is adjusted to a target length.
//
// A Policy is a plain value. Builder methods (WithWordsCount and friends)
// never modify the receiver; each returns a fresh, validated copy. The zero
// value is not usable; start from DefaultPolicy or FromPreset.
type Policy struct {
	wordsCount           int
	wordLengths          [2]int
	wordTransforms       TransformSet
	separators           string
	paddingDigits        [2]int
	paddingSymbols       string
	paddingSymbolLengths [2]int
	paddingStrategy      PaddingStrategy
}

const (
	defaultWordsCount     = 3
	defaultPaddingLength  = 2
	defaultSeparators     = ".-_~"
	defaultPaddingSymbols = "~@$%^&*-_+=:|~?/.;"
)

// DefaultPolicy returns the baseline policy: three words of any supported
// length, randomly lower- or uppercased, joined by one of ".-_~", followed by
// two digits and two padding symbols.
func DefaultPolicy() Policy {
	return Policy{
		wordsCount:           defaultWordsCount,
		wordLengths:          [2]int{MinWordLength, MaxWordLength},
		wordTransforms:       Transforms(Lowercase, Uppercase),
		separators:           defaultSeparators,
		paddingDigits:        [2]int{0, defaultPaddingLength},
		paddingSymbols:       defaultPaddingSymbols,
		paddingSymbolLengths: [2]int{0, defaultPaddingLength},
		paddingStrategy:      FixedPadding(),
	}
}

// WordsCount reports how many words the policy selects.
func (p Policy) WordsCount() int { return p.wordsCount }

// WordLengths reports the inclusive word length range.
func (p Policy) WordLengths() (minLen, maxLen int) {
	return p.wordLengths[0], p.wordLengths[1]
}

// WordTransforms reports the enabled case transforms.
func (p Policy) WordTransforms() TransformSet { return p.wordTransforms }

// Separators reports the separator character pool.
func (p Policy) Separators() string { return p.separators }

// PaddingDigits reports the number of digits generated before and after the
// word block.
func (p Policy) PaddingDigits() (prefix, suffix int) {
	return p.paddingDigits[0], p.paddingDigits[1]
}

// PaddingSymbols reports the padding symbol pool.
func (p Policy) PaddingSymbols() string { return p.paddingSymbols }

// PaddingSymbolLengths reports the number of symbol characters generated
// before and after the word block.
func (p Policy) PaddingSymbolLengths() (prefix, suffix int) {
	return p.paddingSymbolLengths[0], p.paddingSymbolLengths[1]
}

// Strategy reports the length-adjustment strategy.
func (p Policy) Strategy() PaddingStrategy { return p.paddingStrategy }

// PaddingStrategy selects between fixed-size padding blocks and adaptive
// adjustment of the whole passphrase to an exact target length. The zero
// value is the fixed strategy.
type PaddingStrategy struct {
	adaptive bool
	target   int
}

// FixedPadding returns the strategy that leaves the assembled passphrase
// untouched: padding consists solely of the configured digit and symbol
// blocks.
func FixedPadding() PaddingStrategy { return PaddingStrategy{} }

// AdaptivePadding returns the strategy that pads or trims the assembled
// passphrase to exactly target characters. A target of zero is rejected by
// WithPaddingStrategy.
func AdaptivePadding(target int) PaddingStrategy {
	return PaddingStrategy{adaptive: true, target: target}
}

// Adaptive reports the target length and whether the strategy is adaptive.
func (s PaddingStrategy) Adaptive() (target int, ok bool) {
	return s.target, s.adaptive
}
