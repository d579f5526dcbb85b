// Package naming parses the structured photo filename grammar into a typed
// record.
//
// Grammar (dot-separated, anchored at both ends):
//
//	YEAR.MONTH.DAY.HOUR.MINUTE.SECOND.MODIFIER.GROUP.SUBGROUP.SEQUENCE(.SUFFIX)*.EXTENSION
//
// The first ten fields are positional and mandatory: six digit runs of any
// width, a single-letter modifier, two free-form tokens, and a digit-run
// sequence number. Any number of additional suffix tokens (processing
// history markers such as "RAW" or "WEB") may follow; they are accepted and
// ignored. The final token is the extension, letters only.
//
// Parsing is purely structural. Legality of the encoded date and time is the
// validate package's concern; the parser only captures shapes.
package naming
