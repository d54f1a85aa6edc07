// Package combin provides lazy, restartable generators for the three
// combinatorial sequences the subgraph search engine enumerates:
//
//   - PermutationGenerator(n): all n! orderings of {0..n-1}, lexicographic,
//     via the standard next-permutation transform.
//   - CombinationGenerator(n, k): all C(n,k) strictly increasing k-subsets
//     of {0..n-1}, lexicographic.
//   - SequenceGenerator(base, length): all base^length fixed-length
//     sequences over {0..base-1} with repetition, in mixed-radix counter
//     order.
//
// Why generators
//
// The search space sizes (k!, C(n,k), base^length) grow combinatorially, so
// no container holding all values may ever exist at once. Each generator is
// a forward-only cursor: Next advances, Current exposes a view of the
// cursor's value, Reset restarts from the beginning. The view returned by
// Current is valid only until the next call to Next or Reset; callers that
// retain a value must copy it.
//
// Degenerate inputs
//
//   - PermutationGenerator(0) yields exactly one empty permutation.
//   - CombinationGenerator with k <= 0 or k > n yields no values.
//   - SequenceGenerator with length == 0 yields exactly one empty sequence;
//     base == 0 with length > 0 yields no values.
//
// Counting
//
// Factorial and Binomial return the exact sequence cardinalities as uint64.
// They grow combinatorially: Factorial is exact for n <= 20, which is far
// beyond the practical reach of any caller of these generators.
//
// Complexity: each Next is O(n) worst case (amortized O(1) for sequences);
// memory is O(n) per generator.
package combin
