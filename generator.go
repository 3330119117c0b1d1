package passkit

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxDigitWidth caps requested digit blocks so the sampling range fits in a
// 64-bit integer.
const maxDigitWidth = 20

// Generator produces passphrases governed by a single Policy. It holds no
// mutable state besides its randomness source; generators with independent
// sources are safe to use from independent goroutines.
type Generator struct {
	policy Policy
	rand   Source
}

// GeneratorOption configures a Generator at construction time.
type GeneratorOption func(*Generator)

// WithRandSource substitutes the randomness source. Nil sources are ignored
// and the default crypto/rand-backed source stays in place.
func WithRandSource(src Source) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.rand = src
		}
	}
}

// NewGenerator returns a generator for the given policy. By default it draws
// randomness from crypto/rand.
func NewGenerator(policy Policy, opts ...GeneratorOption) *Generator {
	g := &Generator{
		policy: policy,
		rand:   newCryptoSource(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Policy returns the policy governing this generator.
func (g *Generator) Policy() Policy { return g.policy }

// Generate assembles one passphrase from the pool: sampled words are cased,
// joined by a random separator, bracketed by the prefix and suffix blocks,
// and finally adjusted per the padding strategy against the assembled
// length.
func (g *Generator) Generate(pool []string) string {
	words := g.Words(pool)
	separator := g.Separator()
	prefixSymbols, prefixDigits := g.Prefix()
	suffixDigits, suffixSymbols := g.Suffix()

	var b strings.Builder
	b.WriteString(prefixSymbols)
	b.WriteString(prefixDigits)
	b.WriteString(strings.Join(words, separator))
	b.WriteString(suffixDigits)
	b.WriteString(suffixSymbols)

	pass := b.String()
	return g.AdjustPadding(utf8.RuneCountInString(pass)).Apply(pass)
}

// Words samples the policy's word count from the pool and renders each word
// under its assigned case transform. An empty pool yields an empty slice.
func (g *Generator) Words(pool []string) []string {
	words := g.sampleWords(pool)
	transforms := g.assignTransforms(len(words))

	rendered := make([]string, len(words))
	for i, word := range words {
		rendered[i] = applyTransform(word, transforms[i])
	}
	return rendered
}

// Separator draws one separator character from the pool, or returns the
// empty string when the pool is empty.
func (g *Generator) Separator() string {
	return g.randChars(g.policy.separators, 1)
}

// Prefix returns the symbol block and digit block preceding the word block,
// in that order.
func (g *Generator) Prefix() (symbols, digits string) {
	return g.randChars(g.policy.paddingSymbols, g.policy.paddingSymbolLengths[0]),
		g.randDigits(g.policy.paddingDigits[0])
}

// Suffix returns the digit block and symbol block following the word block,
// in that order. The ordering is the mirror of Prefix so the two blocks
// bracket the words symmetrically.
func (g *Generator) Suffix() (digits, symbols string) {
	return g.randDigits(g.policy.paddingDigits[1]),
		g.randChars(g.policy.paddingSymbols, g.policy.paddingSymbolLengths[1])
}

// AdjustPadding decides how an assembled passphrase of the given rune length
// is brought to its final shape. The fixed strategy never changes anything;
// the adaptive strategy pads with repeated random symbols up to the target
// or trims down to it.
func (g *Generator) AdjustPadding(passLength int) PaddingResult {
	target, ok := g.policy.paddingStrategy.Adaptive()
	if !ok {
		return PaddingResult{}
	}

	if target > passLength {
		return PaddingResult{Pad: g.randChars(g.policy.paddingSymbols, target-passLength)}
	}
	return PaddingResult{Trim: true, TrimTo: target}
}

// sampleWords picks the policy's word count from the pool. When the pool
// holds at least that many entries the picked indices are distinct; the
// rejection loop below terminates with probability one since the worst case
// (pool size equal to the requested count) still leaves every remaining
// index reachable on each draw. Smaller pools are sampled with replacement,
// since uniqueness is neither achievable nor meaningful there.
func (g *Generator) sampleWords(pool []string) []string {
	if len(pool) == 0 {
		return nil
	}

	count := g.policy.wordsCount
	words := make([]string, 0, count)

	if len(pool) < count {
		for range count {
			words = append(words, pool[g.rand.IntN(len(pool))])
		}
		return words
	}

	picked := make(map[int]struct{}, count)
	for len(words) < count {
		idx := g.rand.IntN(len(pool))
		if _, dup := picked[idx]; dup {
			continue
		}
		picked[idx] = struct{}{}
		words = append(words, pool[idx])
	}
	return words
}

// assignTransforms produces one case transform per word. Altercase policies
// alternate deterministically by word position; otherwise each word draws
// independently from the enabled single-word transforms.
func (g *Generator) assignTransforms(count int) []Transform {
	transforms := make([]Transform, count)

	if g.policy.wordTransforms.Has(AltercaseLowerFirst) {
		for i := range transforms {
			if i%2 == 0 {
				transforms[i] = Lowercase
			} else {
				transforms[i] = Uppercase
			}
		}
		return transforms
	}

	if g.policy.wordTransforms.Has(AltercaseUpperFirst) {
		for i := range transforms {
			if i%2 == 0 {
				transforms[i] = Uppercase
			} else {
				transforms[i] = Lowercase
			}
		}
		return transforms
	}

	enabled := g.policy.wordTransforms.enabledSingles()
	if len(enabled) == 0 {
		// Unreachable through the builder; keep rendering total anyway.
		enabled = []Transform{Lowercase}
	}
	for i := range transforms {
		transforms[i] = enabled[g.rand.IntN(len(enabled))]
	}
	return transforms
}

// randChars returns one randomly chosen character from the pool repeated
// count times. The same character fills the whole block.
func (g *Generator) randChars(pool string, count int) string {
	if pool == "" || count <= 0 {
		return ""
	}

	runes := []rune(pool)
	return strings.Repeat(string(runes[g.rand.IntN(len(runes))]), count)
}

// randDigits returns a decimal numeral with exactly count digits, drawn
// uniformly from [10^(count-1), 10^count). The leading digit is always
// non-zero by construction. Widths above maxDigitWidth are capped so the
// range stays within 64 bits; at the cap the upper bound is the largest
// 64-bit value.
func (g *Generator) randDigits(count int) string {
	if count <= 0 {
		return ""
	}
	if count > maxDigitWidth {
		count = maxDigitWidth
	}

	lower := pow10(count - 1)
	var span uint64
	if count == maxDigitWidth {
		span = ^uint64(0) - lower
	} else {
		span = pow10(count) - lower
	}

	return strconv.FormatUint(lower+uint64(g.rand.IntN(int(span))), 10)
}

func pow10(exp int) uint64 {
	result := uint64(1)
	for range exp {
		result *= 10
	}
	return result
}

// PaddingResult is the length-adjustment decision produced by AdjustPadding.
// The zero value leaves the passphrase unchanged.
type PaddingResult struct {
	// Pad holds symbol characters to append when the passphrase falls short
	// of an adaptive target.
	Pad string
	// Trim, when set, truncates the passphrase to TrimTo runes.
	Trim   bool
	TrimTo int
}

// Unchanged reports whether the decision leaves the passphrase as is.
func (r PaddingResult) Unchanged() bool {
	return !r.Trim && r.Pad == ""
}

// Apply executes the decision against an assembled passphrase.
func (r PaddingResult) Apply(pass string) string {
	if r.Trim {
		runes := []rune(pass)
		if len(runes) > r.TrimTo {
			return string(runes[:r.TrimTo])
		}
		return pass
	}
	return pass + r.Pad
}
