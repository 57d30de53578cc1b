// Package tkkunify defines the public types and interfaces for the TKK
// group ID unification tool.
//
// A critical edition stores its text-critical commentary in a
// textcritics JSON document and renders the annotated groups in SVG
// sheets. Both sides carry group identifiers, and manual editing makes
// them drift apart. tkkunify matches each metadata record to the SVG
// sheets that render the same group, rewrites the id attribute on the
// matching class="tkk" elements to the canonical value, and audits
// whatever could not be reconciled.
//
// The concrete implementations live under internal/:
//   - tokens: numeric token extraction from labels and filenames
//   - match: candidate selection (standard vs. Reihentabelle policy)
//   - svgedit: format-preserving id rewriting inside SVG markup
//   - unify: the per-record orchestration loop
//   - audit: the post-run reconciliation report
package tkkunify
