// Package options provides a hierarchical, type-segregated store for
// runtime-tunable settings, such as engine parameters supplied on the
// command line or as structured configuration text.
//
// Features:
//   - Per-type key/value stores (bool, int, float64, string) with usage tracking
//   - Parent delegation: nested scopes override or inherit settings
//   - Identity-compared option IDs for compile-time-checked option tables
//   - A small textual grammar for building a scope tree from a single string
//   - pflag-backed registry mapping command-line flags onto a scope
//   - Struct decoding of a scope subtree via mapstructure
//   - Unused-option detection to catch typos in user-supplied configuration
//
// Quick Start:
//
//	root := options.NewScope()
//	options.Set(root, "threads", 4)
//	if err := root.AddFromString(`search(cpuct=3.1, "name"="test run")`); err != nil {
//		log.Fatal(err)
//	}
//
//	search, err := root.Subscope("search")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cpuct := options.GetOrDefault(search, "cpuct", 2.4)
//	threads, err := options.Get[int](search, "threads") // inherited from root
//
// After all expected reads have happened, CheckAllReadRecursive reports the
// first setting that was never read, with its full dotted path:
//
//	if err := root.CheckAllReadRecursive(""); err != nil {
//		log.Fatal(err) // e.g. unknown float option "search.cpuct" on a typo
//	}
//
// Scopes are not safe for concurrent use. Build the tree during startup,
// then treat it as read-mostly; callers must serialize any later mutation.
package options
