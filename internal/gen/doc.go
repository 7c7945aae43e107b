// Package gen renders Java "unchecker" classes.
//
// For every SAM type the generated class holds three artifacts:
//   - a checked variant of the interface whose method throws the checked
//     exception category
//   - an adapter turning a checked-variant instance into the original type,
//     wrapping the checked exception in the unchecked category
//   - a direct-invoke function calling a checked-variant instance at once
//     with the same wrapping
//
// Generation is split into Plan, which validates the configuration and
// resolves every type, and Render, which executes text/template over the
// plan. Both are pure; identical inputs give byte-identical output.
package gen
