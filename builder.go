package passkit

// Builder methods. Each call validates its input against the current policy
// and returns a new Policy; the receiver is never modified, so a failed call
// leaves the caller holding the last valid policy.

// WithWordsCount returns a copy of the policy requesting n words. It fails
// with ErrWordsCount when n is not positive.
func (p Policy) WithWordsCount(n int) (Policy, error) {
	if n < 1 {
		return Policy{}, ErrWordsCount
	}

	p.wordsCount = n
	return p, nil
}

// WithWordLengths returns a copy of the policy with the given inclusive word
// length range. Pass Unchanged (or any negative value) to keep the current
// bound. Reversed bounds are swapped before validation. The lower bound is
// checked first: a range that violates both bounds reports
// ErrWordLengthTooShort.
func (p Policy) WithWordLengths(minLen, maxLen int) (Policy, error) {
	if minLen < 0 {
		minLen = p.wordLengths[0]
	}
	if maxLen < 0 {
		maxLen = p.wordLengths[1]
	}

	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}

	if minLen < MinWordLength {
		return Policy{}, ErrWordLengthTooShort
	}
	if maxLen > MaxWordLength {
		return Policy{}, ErrWordLengthTooLong
	}

	p.wordLengths = [2]int{minLen, maxLen}
	return p, nil
}

// WithSeparators returns a copy of the policy with the given separator pool.
// An empty pool is valid and joins words with no visible separator.
func (p Policy) WithSeparators(separators string) Policy {
	p.separators = separators
	return p
}

// WithPaddingDigits returns a copy of the policy with the given digit counts
// before and after the word block. Pass Unchanged (or any negative value) to
// keep the current count on that side.
func (p Policy) WithPaddingDigits(prefix, suffix int) Policy {
	if prefix >= 0 {
		p.paddingDigits[0] = prefix
	}
	if suffix >= 0 {
		p.paddingDigits[1] = suffix
	}
	return p
}

// WithPaddingSymbols returns a copy of the policy with the given padding
// symbol pool.
func (p Policy) WithPaddingSymbols(symbols string) Policy {
	p.paddingSymbols = symbols
	return p
}

// WithPaddingSymbolLengths returns a copy of the policy with the given
// symbol counts before and after the word block. Pass Unchanged (or any
// negative value) to keep the current count on that side. Explicit symbol
// blocks and adaptive length adjustment are mutually exclusive, so any call
// that sets a count also forces the fixed padding strategy.
func (p Policy) WithPaddingSymbolLengths(prefix, suffix int) Policy {
	if prefix < 0 && suffix < 0 {
		return p
	}

	if prefix >= 0 {
		p.paddingSymbolLengths[0] = prefix
	}
	if suffix >= 0 {
		p.paddingSymbolLengths[1] = suffix
	}
	p.paddingStrategy = FixedPadding()
	return p
}

// WithPaddingStrategy returns a copy of the policy using the given
// length-adjustment strategy. It fails with ErrAdaptiveTarget when the
// strategy is adaptive with a zero target. Selecting any strategy here
// discards explicit symbol block lengths, mirroring the exclusivity enforced
// by WithPaddingSymbolLengths.
func (p Policy) WithPaddingStrategy(strategy PaddingStrategy) (Policy, error) {
	if target, ok := strategy.Adaptive(); ok && target < 1 {
		return Policy{}, ErrAdaptiveTarget
	}

	p.paddingStrategy = strategy
	p.paddingSymbolLengths = [2]int{0, 0}
	return p, nil
}

// WithWordTransforms returns a copy of the policy with the given transform
// set. An Altercase group transform, when present, wins over any single-word
// transforms supplied alongside it and becomes the whole effective set.
// Without a group transform at least one single-word transform must be
// enabled, otherwise the call fails with ErrTransform.
func (p Policy) WithWordTransforms(transforms TransformSet) (Policy, error) {
	if transforms.Has(AltercaseLowerFirst) {
		p.wordTransforms = Transforms(AltercaseLowerFirst)
		return p, nil
	}
	if transforms.Has(AltercaseUpperFirst) {
		p.wordTransforms = Transforms(AltercaseUpperFirst)
		return p, nil
	}

	if len(transforms.enabledSingles()) == 0 {
		return Policy{}, ErrTransform
	}

	p.wordTransforms = transforms
	return p, nil
}
