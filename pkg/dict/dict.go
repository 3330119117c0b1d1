package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrMalformedLine is returned when a dictionary line does not follow
	// the "length:word,word,..." format.
	ErrMalformedLine = errors.New("malformed dictionary line")

	// ErrWordLengthMismatch is returned when a word's actual length differs
	// from the length of its bucket.
	ErrWordLengthMismatch = errors.New("word length does not match its bucket")
)

// lower normalizes dictionary entries so case transforms start from a known
// baseline regardless of how the source file cases its words.
var lower = cases.Lower(language.Und)

// Dict maps word length to the words of that length.
type Dict map[int][]string

// Builtin returns the bundled English dictionary. The returned value shares
// no storage with the package-level word lists, so callers may extend it
// freely.
func Builtin() Dict {
	d := make(Dict, len(builtinWords))
	for length, words := range builtinWords {
		d[length] = slices.Clone(words)
	}
	return d
}

// Parse reads a dictionary in the "length:word,word,..." line format. Words
// are trimmed and lowercased; empty entries and blank lines are skipped. A
// line whose words do not match the declared length, or whose length prefix
// is not a number, fails the whole parse.
func Parse(r io.Reader) (Dict, error) {
	d := make(Dict)
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		lengthStr, csv, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: line %d has no length prefix", ErrMalformedLine, lineNo)
		}

		length, err := strconv.Atoi(strings.TrimSpace(lengthStr))
		if err != nil || length < 1 {
			return nil, fmt.Errorf("%w: line %d has invalid length %q", ErrMalformedLine, lineNo, lengthStr)
		}

		for _, raw := range strings.Split(csv, ",") {
			word := lower.String(strings.TrimSpace(raw))
			if word == "" {
				continue
			}
			if len([]rune(word)) != length {
				return nil, fmt.Errorf("%w: line %d word %q in bucket %d", ErrWordLengthMismatch, lineNo, word, length)
			}
			d[length] = append(d[length], word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// ParseFile reads a dictionary file in the Parse line format.
func ParseFile(path string) (Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Between flattens the dictionary into one pool holding every word whose
// length falls inside the inclusive range. Buckets are visited in ascending
// length order so the pool layout is stable for a given dictionary.
func (d Dict) Between(minLen, maxLen int) []string {
	var pool []string
	for length := minLen; length <= maxLen; length++ {
		pool = append(pool, d[length]...)
	}
	return pool
}

// Lengths returns the bucket lengths present in the dictionary, ascending.
func (d Dict) Lengths() []int {
	lengths := make([]int, 0, len(d))
	for length := range d {
		lengths = append(lengths, length)
	}
	slices.Sort(lengths)
	return lengths
}

// Size reports the total number of words across all buckets.
func (d Dict) Size() int {
	total := 0
	for _, words := range d {
		total += len(words)
	}
	return total
}
