// Package policyfile reads and writes passkit policies as YAML documents.
//
// The core keeps policies as validated in-memory values; this package is the
// serialization collaborator around it. Loading never bypasses validation:
// every field of a document is funneled through the core builder, so a file
// can only ever produce a policy the builder would have accepted.
//
// A full document looks like this:
//
//	words:
//	  count: 4
//	  min_length: 4
//	  max_length: 8
//	  transforms: [lowercase, uppercase]
//	separators: "-"
//	padding:
//	  digits:
//	    prefix: 0
//	    suffix: 2
//	  symbols: "!@#"
//	  symbol_lengths:
//	    prefix: 0
//	    suffix: 2
//
// Every field is optional; absent fields keep the baseline policy's values.
// Setting padding.adaptive_length to a positive number selects the adaptive
// length strategy, which (as in the core) excludes explicit symbol block
// lengths.
//
//	policy, err := policyfile.LoadFile("policy.yaml")
//	if err != nil {
//		// handle error
//	}
//	pass := passkit.NewGenerator(policy).Generate(pool)
package policyfile
