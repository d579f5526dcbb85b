// Package metadata derives the embeddable date strings and the file
// identifier from a validated filename record.
//
// Three consumers with different precision tolerance are served by three
// separate derivations rather than one best-effort formatter: a date-only
// descriptive field that degrades gracefully ([PartialDate]), and two full
// timestamp fields that exist only for exact-dated records ([FullDateTime],
// [NumericDateTime]). A precision-insensitive consumer never receives a
// fabricated time, and a precision-sensitive one never receives a partial
// date.
package metadata

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/backmassage/humpyard/internal/naming"
)

// ModifierExact marks a record whose encoded date is exact to the second.
// The full-precision derivations are gated on it.
const ModifierExact = "E"

// Tag names understood by the exiftool collaborator.
const (
	TagIdentifier       = "XMP:Identifier"
	TagDateTimeOriginal = "EXIF:DateTimeOriginal"
	TagPhotoshopDate    = "XMP:photoshop:DateCreated"
	TagIPTCDate         = "XMP:Iptc4xmpCore:DateCreated"
)

// PartialDate returns the date-only string at the precision the record
// actually carries: "YYYY-MM-DD", "YYYY-MM", or "YYYY". It never includes a
// time component. The second return is false only when the year is unknown.
func PartialDate(rec naming.Record) (string, bool) {
	switch {
	case rec.Year == 0:
		return "", false
	case rec.Month == 0:
		return fmt.Sprintf("%04d", rec.Year), true
	case rec.Day == 0:
		return fmt.Sprintf("%04d-%02d", rec.Year, rec.Month), true
	default:
		return fmt.Sprintf("%04d-%02d-%02d", rec.Year, rec.Month, rec.Day), true
	}
}

// FullDateTime returns the ISO-like "YYYY-MM-DDThh:mm:ss" string. It is
// defined only for exact-dated records (modifier "E"); for any other
// modifier it is absent regardless of how complete the numeric fields are.
// When defined it always carries the literal time, even T00:00:00.
func FullDateTime(rec naming.Record) (string, bool) {
	if rec.Modifier != ModifierExact {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		rec.Year, rec.Month, rec.Day, rec.Hour, rec.Minute, rec.Second), true
}

// NumericDateTime returns the colon-delimited "YYYY:MM:DD hh:mm:ss" form
// used by the legacy timestamp field. Same gate as [FullDateTime].
func NumericDateTime(rec naming.Record) (string, bool) {
	if rec.Modifier != ModifierExact {
		return "", false
	}
	return fmt.Sprintf("%04d:%02d:%02d %02d:%02d:%02d",
		rec.Year, rec.Month, rec.Day, rec.Hour, rec.Minute, rec.Second), true
}

// NewIdentifier returns a fresh random identifier. The generator is
// process-wide and safe for concurrent use; identifiers carry no ordering.
func NewIdentifier() string {
	return uuid.New().String()
}

// Tags builds the tag map to hand to the metadata writer. One identifier is
// generated per call and used for every identifier-bearing slot; the date
// tags appear only when their derivation is defined for rec.
func Tags(rec naming.Record) map[string]string {
	tags := map[string]string{
		TagIdentifier: NewIdentifier(),
	}
	if v, ok := NumericDateTime(rec); ok {
		tags[TagDateTimeOriginal] = v
	}
	if v, ok := PartialDate(rec); ok {
		tags[TagIPTCDate] = v
	}
	if v, ok := FullDateTime(rec); ok {
		tags[TagPhotoshopDate] = v
	}
	return tags
}
