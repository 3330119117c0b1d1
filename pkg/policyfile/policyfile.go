package policyfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/passkit"
)

var (
	// ErrDecode is returned when the document is not valid YAML.
	ErrDecode = errors.New("failed to decode policy document")

	// ErrUnknownTransform is returned when a document names a transform the
	// core does not know.
	ErrUnknownTransform = errors.New("unknown word transform")
)

// Document is the YAML shape of a policy. Optional scalar fields are
// pointers so an absent field keeps the baseline value while an explicit
// zero (or empty string) is applied as given.
type Document struct {
	Words struct {
		Count      int      `yaml:"count,omitempty"`
		MinLength  int      `yaml:"min_length,omitempty"`
		MaxLength  int      `yaml:"max_length,omitempty"`
		Transforms []string `yaml:"transforms,omitempty"`
	} `yaml:"words"`
	Separators *string `yaml:"separators,omitempty"`
	Padding    struct {
		Digits struct {
			Prefix *int `yaml:"prefix,omitempty"`
			Suffix *int `yaml:"suffix,omitempty"`
		} `yaml:"digits"`
		Symbols       *string `yaml:"symbols,omitempty"`
		SymbolLengths struct {
			Prefix *int `yaml:"prefix,omitempty"`
			Suffix *int `yaml:"suffix,omitempty"`
		} `yaml:"symbol_lengths"`
		AdaptiveLength int `yaml:"adaptive_length,omitempty"`
	} `yaml:"padding"`
}

// Load decodes a YAML policy document and funnels every field through the
// core builder, so file input gets the same validation as programmatic
// input. Fields absent from the document keep their baseline values.
//
// A positive padding.adaptive_length selects the adaptive strategy; since it
// is applied last it wins over any symbol lengths the document also carries,
// matching the core's exclusivity rule.
func Load(r io.Reader) (passkit.Policy, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return passkit.Policy{}, errors.Join(ErrDecode, err)
	}

	return doc.Policy()
}

// LoadFile reads and decodes a YAML policy document from disk.
func LoadFile(path string) (passkit.Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return passkit.Policy{}, err
	}
	defer f.Close()

	return Load(f)
}

// Policy builds a validated core policy from the document.
func (doc Document) Policy() (passkit.Policy, error) {
	policy := passkit.DefaultPolicy()
	var err error

	if doc.Words.Count != 0 {
		if policy, err = policy.WithWordsCount(doc.Words.Count); err != nil {
			return passkit.Policy{}, err
		}
	}

	if doc.Words.MinLength != 0 || doc.Words.MaxLength != 0 {
		policy, err = policy.WithWordLengths(orUnchanged(doc.Words.MinLength), orUnchanged(doc.Words.MaxLength))
		if err != nil {
			return passkit.Policy{}, err
		}
	}

	if len(doc.Words.Transforms) > 0 {
		transforms, err := parseTransforms(doc.Words.Transforms)
		if err != nil {
			return passkit.Policy{}, err
		}
		if policy, err = policy.WithWordTransforms(transforms); err != nil {
			return passkit.Policy{}, err
		}
	}

	if doc.Separators != nil {
		policy = policy.WithSeparators(*doc.Separators)
	}
	if doc.Padding.Symbols != nil {
		policy = policy.WithPaddingSymbols(*doc.Padding.Symbols)
	}

	policy = policy.WithPaddingDigits(
		orKeep(doc.Padding.Digits.Prefix),
		orKeep(doc.Padding.Digits.Suffix),
	)
	policy = policy.WithPaddingSymbolLengths(
		orKeep(doc.Padding.SymbolLengths.Prefix),
		orKeep(doc.Padding.SymbolLengths.Suffix),
	)

	if doc.Padding.AdaptiveLength != 0 {
		policy, err = policy.WithPaddingStrategy(passkit.AdaptivePadding(doc.Padding.AdaptiveLength))
		if err != nil {
			return passkit.Policy{}, err
		}
	}

	return policy, nil
}

// Save encodes the policy as a YAML document.
func Save(w io.Writer, policy passkit.Policy) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(FromPolicy(policy))
}

// FromPolicy captures a policy into its document form. The resulting
// document round-trips through Load back to an equal policy.
func FromPolicy(policy passkit.Policy) Document {
	var doc Document

	doc.Words.Count = policy.WordsCount()
	doc.Words.MinLength, doc.Words.MaxLength = policy.WordLengths()
	for _, t := range policy.WordTransforms().Members() {
		doc.Words.Transforms = append(doc.Words.Transforms, t.String())
	}

	separators := policy.Separators()
	doc.Separators = &separators
	symbols := policy.PaddingSymbols()
	doc.Padding.Symbols = &symbols

	digitsPrefix, digitsSuffix := policy.PaddingDigits()
	doc.Padding.Digits.Prefix = &digitsPrefix
	doc.Padding.Digits.Suffix = &digitsSuffix

	symbolsPrefix, symbolsSuffix := policy.PaddingSymbolLengths()
	doc.Padding.SymbolLengths.Prefix = &symbolsPrefix
	doc.Padding.SymbolLengths.Suffix = &symbolsSuffix

	if target, adaptive := policy.Strategy().Adaptive(); adaptive {
		doc.Padding.AdaptiveLength = target
	}

	return doc
}

func parseTransforms(names []string) (passkit.TransformSet, error) {
	var set passkit.TransformSet
	for _, name := range names {
		t, ok := passkit.ParseTransform(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
		}
		set |= passkit.Transforms(t)
	}
	return set, nil
}

func orUnchanged(v int) int {
	if v == 0 {
		return passkit.Unchanged
	}
	return v
}

func orKeep(v *int) int {
	if v == nil {
		return passkit.Unchanged
	}
	return *v
}
