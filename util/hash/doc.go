// Hash based data structures.
//
// [Set] is a HashSet data structure backed by a map. It backs the slice set-algebra helpers
// in slutil and the parse-format registry in caltime.
package hash
