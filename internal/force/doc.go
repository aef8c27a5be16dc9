// Package force implements the Coulomb force model over the active particle
// set.
//
//   - [Coulomb]: serial pairwise summation with symmetric accumulation
//   - [Parallel]: the same summation partitioned across worker goroutines
//
// Both complete the full force sum before returning; partial forces are
// never observable. Inactive particles contribute nothing and cost nothing.
package force
