// Package pipeline orchestrates file discovery, per-file plugin dispatch,
// and batch summary reporting.
//
// Run is the batch entry point: discover → for each file: find a plugin →
// process (stamp tags, relocate) → update stats. Analyze is the read-only
// counterpart: it reports parse and validation status per file without
// touching anything.
package pipeline
