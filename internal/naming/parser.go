package naming

import (
	"strconv"
	"strings"
)

// Record holds the structured result of filename parsing. It is a plain
// value type: built once by [Parse], read by the validator and formatter,
// never mutated.
type Record struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Modifier  string // Single letter, normalized to uppercase.
	Group     string // Free-form category token, case preserved.
	Subgroup  string // Free-form category token, case preserved.
	Sequence  string // Digit string, leading zeros preserved.
	Extension string // Letters only, normalized to lowercase.
}

// minFields is the ten mandatory fields plus the trailing extension.
const minFields = 11

// Parse splits filename against the naming grammar. It returns the parsed
// record and true on success, or a zero record and false when the name does
// not match. A failed parse never yields a partially filled record.
func Parse(filename string) (Record, bool) {
	parts := strings.Split(filename, ".")
	if len(parts) < minFields {
		return Record{}, false
	}

	// Empty tokens (consecutive dots, leading/trailing dot) fail the whole
	// parse, including in the ignored suffix run.
	for _, p := range parts {
		if p == "" {
			return Record{}, false
		}
	}

	var nums [6]int
	for i := 0; i < 6; i++ {
		n, ok := parseDigits(parts[i])
		if !ok {
			return Record{}, false
		}
		nums[i] = n
	}

	modifier := parts[6]
	if len(modifier) != 1 || !isLetters(modifier) {
		return Record{}, false
	}

	sequence := parts[9]
	if !isDigits(sequence) {
		return Record{}, false
	}

	extension := parts[len(parts)-1]
	if !isLetters(extension) {
		return Record{}, false
	}

	// parts[10 : len-1] are suffix tokens: present, non-empty, ignored.

	return Record{
		Year:      nums[0],
		Month:     nums[1],
		Day:       nums[2],
		Hour:      nums[3],
		Minute:    nums[4],
		Second:    nums[5],
		Modifier:  strings.ToUpper(modifier),
		Group:     parts[7],
		Subgroup:  parts[8],
		Sequence:  sequence,
		Extension: strings.ToLower(extension),
	}, true
}

// parseDigits converts a digit run to an int. Overflow during conversion is
// a parse failure, not a distinct error.
func parseDigits(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
