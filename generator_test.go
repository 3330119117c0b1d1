package passkit_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dmitrymomot/passkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool = []string{
	"able", "acorn", "badge", "basket", "cedar", "copper", "dandelion",
	"ember", "falcon", "garden", "harbor", "island", "jasmine", "kettle",
	"lantern", "meadow", "needle", "orchard", "pebble", "quartz",
}

func mustPolicy(t *testing.T) func(passkit.Policy, error) passkit.Policy {
	t.Helper()
	return func(policy passkit.Policy, err error) passkit.Policy {
		require.NoError(t, err)
		return policy
	}
}

func TestWordsSampling(t *testing.T) {
	t.Parallel()

	t.Run("empty pool yields no words", func(t *testing.T) {
		t.Parallel()
		gen := passkit.NewGenerator(passkit.DefaultPolicy())
		assert.Empty(t, gen.Words(nil))
		assert.Empty(t, gen.Words([]string{}))
	})

	t.Run("large enough pool yields distinct words", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(10))

		for seed := uint64(1); seed <= 50; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			words := gen.Words(testPool)
			require.Len(t, words, 10)

			seen := make(map[string]struct{}, len(words))
			for _, w := range words {
				seen[strings.ToLower(w)] = struct{}{}
			}
			assert.Len(t, seen, 10, "seed %d produced duplicates: %v", seed, words)
		}
	})

	t.Run("small pool samples with replacement", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(8))
		policy = mustPolicy(t)(policy.WithWordTransforms(passkit.Transforms(passkit.Lowercase)))

		gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(7)))
		words := gen.Words([]string{"able", "ember"})

		require.Len(t, words, 8)
		for _, w := range words {
			assert.Contains(t, []string{"able", "ember"}, w)
		}
	})

	t.Run("pool size equal to words count drains the pool", func(t *testing.T) {
		t.Parallel()
		pool := []string{"able", "ember", "cedar"}
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(3))
		policy = mustPolicy(t)(policy.WithWordTransforms(passkit.Transforms(passkit.Lowercase)))

		gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(11)))
		words := gen.Words(pool)

		assert.ElementsMatch(t, pool, words)
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy()

		first := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(42))).Words(testPool)
		second := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(42))).Words(testPool)

		assert.Equal(t, first, second)
	})
}

func TestAltercaseAssignment(t *testing.T) {
	t.Parallel()

	pool := []string{"able", "ember", "cedar", "quartz"}

	t.Run("upper first", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(4))
		policy = mustPolicy(t)(policy.WithWordTransforms(passkit.Transforms(passkit.AltercaseUpperFirst)))

		for seed := uint64(1); seed <= 10; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			words := gen.Words(pool)
			require.Len(t, words, 4)
			for i, w := range words {
				if i%2 == 0 {
					assert.Equal(t, strings.ToUpper(w), w, "word %d should be uppercase", i)
				} else {
					assert.Equal(t, strings.ToLower(w), w, "word %d should be lowercase", i)
				}
			}
		}
	})

	t.Run("lower first", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(4))
		policy = mustPolicy(t)(policy.WithWordTransforms(passkit.Transforms(passkit.AltercaseLowerFirst)))

		gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(3)))
		words := gen.Words(pool)
		require.Len(t, words, 4)
		for i, w := range words {
			if i%2 == 0 {
				assert.Equal(t, strings.ToLower(w), w)
			} else {
				assert.Equal(t, strings.ToUpper(w), w)
			}
		}
	})
}

func TestPrefixSuffix(t *testing.T) {
	t.Parallel()

	t.Run("prefix shape", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy().
			WithPaddingSymbols("#").
			WithPaddingSymbolLengths(3, 0).
			WithPaddingDigits(2, 0)

		for seed := uint64(1); seed <= 20; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			symbols, digits := gen.Prefix()

			assert.Equal(t, "###", symbols)
			require.Len(t, digits, 2)
			n, err := strconv.Atoi(digits)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 10)
			assert.LessOrEqual(t, n, 99)
		}
	})

	t.Run("suffix repeats a single symbol", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy().
			WithPaddingSymbols("!@#").
			WithPaddingSymbolLengths(0, 4).
			WithPaddingDigits(0, 0)

		for seed := uint64(1); seed <= 20; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			digits, symbols := gen.Suffix()

			assert.Empty(t, digits)
			require.Len(t, symbols, 4)
			assert.Equal(t, strings.Repeat(symbols[:1], 4), symbols)
			assert.Contains(t, "!@#", symbols[:1])
		}
	})

	t.Run("empty pools yield empty blocks", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy().
			WithPaddingSymbols("").
			WithPaddingSymbolLengths(3, 3).
			WithPaddingDigits(0, 0)

		gen := passkit.NewGenerator(policy)
		symbols, digits := gen.Prefix()
		assert.Empty(t, symbols)
		assert.Empty(t, digits)
	})

	t.Run("digit width is capped at 20", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy().WithPaddingDigits(200, 0)

		gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(5)))
		_, digits := gen.Prefix()
		assert.Len(t, digits, 20)
	})
}

func TestSeparator(t *testing.T) {
	t.Parallel()

	t.Run("draws from the pool", func(t *testing.T) {
		t.Parallel()
		gen := passkit.NewGenerator(passkit.DefaultPolicy().WithSeparators("abc"))
		for range 20 {
			assert.Contains(t, "abc", gen.Separator())
		}
	})

	t.Run("empty pool renders nothing", func(t *testing.T) {
		t.Parallel()
		gen := passkit.NewGenerator(passkit.DefaultPolicy().WithSeparators(""))
		assert.Empty(t, gen.Separator())
	})
}

func TestAdjustPadding(t *testing.T) {
	t.Parallel()

	t.Run("fixed strategy never changes anything", func(t *testing.T) {
		t.Parallel()
		gen := passkit.NewGenerator(passkit.DefaultPolicy())

		for _, length := range []int{0, 1, 10, 1000} {
			decision := gen.AdjustPadding(length)
			assert.True(t, decision.Unchanged())
			assert.Equal(t, "sample", decision.Apply("sample"))
		}
	})

	t.Run("adaptive pads short passphrases", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithPaddingStrategy(passkit.AdaptivePadding(10)))
		policy = policy.WithPaddingSymbols("!")

		gen := passkit.NewGenerator(policy)
		decision := gen.AdjustPadding(6)

		require.False(t, decision.Trim)
		assert.Equal(t, "!!!!", decision.Pad)
		assert.Equal(t, "abcdef!!!!", decision.Apply("abcdef"))
	})

	t.Run("adaptive trims long passphrases", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithPaddingStrategy(passkit.AdaptivePadding(10)))

		gen := passkit.NewGenerator(policy)
		decision := gen.AdjustPadding(12)

		require.True(t, decision.Trim)
		assert.Equal(t, 10, decision.TrimTo)
		assert.Equal(t, "abcdefghij", decision.Apply("abcdefghijkl"))
	})

	t.Run("adaptive leaves exact lengths alone", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithPaddingStrategy(passkit.AdaptivePadding(10)))

		gen := passkit.NewGenerator(policy)
		decision := gen.AdjustPadding(10)

		require.True(t, decision.Trim)
		assert.Equal(t, "abcdefghij", decision.Apply("abcdefghij"))
	})

	t.Run("trim counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		decision := passkit.PaddingResult{Trim: true, TrimTo: 4}
		assert.Equal(t, "äöüß", decision.Apply("äöüßxyz"))
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("matches the configured shape", func(t *testing.T) {
		t.Parallel()
		policy := mustPolicy(t)(passkit.DefaultPolicy().WithWordsCount(3))
		policy = mustPolicy(t)(policy.WithWordLengths(4, 8))
		policy = policy.
			WithSeparators(".").
			WithPaddingDigits(0, 2).
			WithPaddingSymbols("!@#").
			WithPaddingSymbolLengths(0, 2)
		policy, err := policy.WithWordTransforms(passkit.Transforms(passkit.Lowercase, passkit.Uppercase))
		require.NoError(t, err)

		shape := regexp.MustCompile(`^[a-zA-Z]+\.[a-zA-Z]+\.[a-zA-Z]+[0-9]{2}(!!|@@|##)$`)
		for seed := uint64(1); seed <= 30; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			pass := gen.Generate(testPool)
			assert.Regexp(t, shape, pass, "seed %d", seed)
		}
	})

	t.Run("adaptive preset hits its target length", func(t *testing.T) {
		t.Parallel()
		policy := passkit.FromPreset(passkit.PresetWiFi)

		for seed := uint64(1); seed <= 30; seed++ {
			gen := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(seed)))
			pass := gen.Generate(testPool)
			assert.Equal(t, 63, utf8.RuneCountInString(pass), "seed %d: %q", seed, pass)
		}
	})

	t.Run("empty pool still renders padding", func(t *testing.T) {
		t.Parallel()
		policy := passkit.DefaultPolicy().
			WithPaddingDigits(2, 2).
			WithPaddingSymbols("#").
			WithPaddingSymbolLengths(1, 1)

		gen := passkit.NewGenerator(policy)
		pass := gen.Generate(nil)

		assert.Regexp(t, `^#[0-9]{2}[0-9]{2}#$`, pass)
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		t.Parallel()
		policy := passkit.FromPreset(passkit.PresetXKCD)

		first := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(99))).Generate(testPool)
		second := passkit.NewGenerator(policy, passkit.WithRandSource(passkit.NewSeededSource(99))).Generate(testPool)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})
}
