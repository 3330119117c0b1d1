// Package passkit generates human-memorable passphrases from a word
// dictionary, governed by a declarative, validated policy.
//
// A passphrase is built from a handful of real words: sampled from a pool,
// cased per word, joined by a separator character, and bracketed by digit and
// symbol padding blocks. Every knob lives in a Policy value: word count, word
// length range, case transforms, separator and symbol pools, digit and symbol
// block sizes, and an optional adaptive target length. Compared to raw random
// byte strings, the output trades a little entropy density for strings a
// human can actually retype.
//
// # Architecture
//
// The package is split into two value types and one worker:
//
//   - Policy is an immutable configuration value. Builder methods
//     (WithWordsCount, WithWordLengths, …) validate their input and return a
//     new Policy, never touching the receiver. Named presets (FromPreset)
//     provide literal, known-valid policies for common shapes.
//   - Generator binds a Policy to a randomness Source and performs the
//     actual sampling, casing, padding, and assembly. Generation itself
//     never fails: all validation happens at policy construction time, and
//     an empty word pool degrades to an empty word list.
//   - Source abstracts the randomness supply. The default draws from
//     crypto/rand; NewSeededSource yields deterministic sequences for tests
//     and reproducible generation.
//
// Word pools are plain []string slices. Loading and bucketing dictionaries
// is the job of pkg/dict; the core only consumes the flattened pool.
//
// # Usage
//
//	import "github.com/dmitrymomot/passkit"
//
//	policy, err := passkit.DefaultPolicy().WithWordsCount(4)
//	if err != nil {
//		// handle error
//	}
//	policy, err = policy.WithWordLengths(4, 8)
//	if err != nil {
//		// handle error
//	}
//	policy = policy.WithSeparators("-")
//
//	gen := passkit.NewGenerator(policy)
//	fmt.Println(gen.Generate(pool)) // e.g. "brave-TIGER-gentle-OTTER42!!"
//
// Or start from a preset:
//
//	gen := passkit.NewGenerator(passkit.FromPreset(passkit.PresetWiFi))
//
// # Policy rules
//
// The builder enforces a small set of invariants:
//
//   - Word count must be positive (ErrWordsCount).
//   - Word lengths live in [4, 10]; reversed bounds are swapped first, and
//     the lower bound is reported before the upper one
//     (ErrWordLengthTooShort, ErrWordLengthTooLong).
//   - At least one case transform must be enabled (ErrTransform). The
//     Altercase group transforms alternate casing across the word sequence
//     and override any single-word transforms supplied with them.
//   - An adaptive padding target must be positive (ErrAdaptiveTarget).
//     Explicit symbol block lengths and the adaptive strategy are mutually
//     exclusive: setting one resets the other.
//
// # Concurrency
//
// Policies are plain values and safe to share. Generation holds no shared
// mutable state beyond its Source; the default source is stateless between
// calls, so a Generator per goroutine (or one with an appropriately
// synchronized Source) covers concurrent use.
package passkit
