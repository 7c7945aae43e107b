// Package diagnostic collects structured errors and warnings found while
// loading type descriptors and generator configuration.
//
// Diagnostics carry a stable code, the type and member they concern, and
// optional "did you mean" suggestions.
package diagnostic
