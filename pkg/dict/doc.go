// Package dict loads and organizes the word pools consumed by passkit
// generators.
//
// A dictionary is a simple mapping from word length to the words of that
// length. The package ships a bundled English dictionary (Builtin) and can
// parse external dictionaries in a compact line format where each line holds
// one length bucket:
//
//	4:bear,calm,wolf
//	5:amber,tiger
//
// Words are normalized to lowercase on parse using golang.org/x/text casing,
// so the core's case transforms always start from a known baseline. The
// typical flow flattens a length range into a flat pool and hands it to a
// generator:
//
//	d := dict.Builtin()
//	pool := d.Between(policy.WordLengths())
//	pass := passkit.NewGenerator(policy).Generate(pool)
//
// The package performs no word curation beyond length bucketing; the quality
// of an external word list is the caller's concern.
package dict
