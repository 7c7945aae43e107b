// Package match provides name normalization and Levenshtein distance
// calculation, used to suggest close matches for misspelled type names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
