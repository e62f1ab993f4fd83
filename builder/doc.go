// Package builder generates deterministic connection lists for tests,
// benchmarks and the `hamroute generate` command.
//
// Constructors return []route.Connection in a stable order:
//
//   - Complete(n) — every unordered pair {i,j}, i<j, once (K_n).
//   - Path(n)     — only consecutive pairs (i-1,i); an incomplete graph
//     for n ≥ 3, useful for exercising missing-edge handling.
//
// Labels come from an IDFn (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
// AlphanumericIDFn) and costs from a WeightFn drawn from an optional,
// explicitly seeded *rand.Rand. Without WithSeed/WithRand every cost is
// DefaultEdgeWeight.
//
// Option constructors panic on meaningless values (nil functions, zero
// weights); constructors themselves only return sentinel errors.
package builder
