// Package validate checks a parsed filename record for legal calendar and
// time values and for the precision cascade: once a date or time field is
// marked unknown (zero), every finer-grained field must be zero too.
//
// Every rule is evaluated independently and all violations are collected in
// a fixed order (modifier, date, time, cascade), so a caller can present the
// complete diagnostic for a bad filename in one pass.
package validate

import (
	"fmt"
	"strings"

	"github.com/backmassage/humpyard/internal/naming"
)

// validModifiers is the accepted set of date-confidence tags.
var validModifiers = map[string]bool{
	"A": true,
	"B": true,
	"C": true,
	"E": true,
	"F": true,
}

// daysInMonth is the fixed per-month day bound. February is capped at 29
// unconditionally: leap years are never computed, so Feb 29 is accepted for
// every year and Feb 30 is always rejected.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Validate runs all semantic checks against rec and returns the violation
// messages in a stable order. An empty slice means the record is valid.
// Checks never short-circuit: an out-of-range month does not suppress day,
// time, or cascade findings.
func Validate(rec naming.Record) []string {
	var violations []string
	violations = append(violations, checkModifier(rec)...)
	violations = append(violations, checkDate(rec)...)
	violations = append(violations, checkTime(rec)...)
	violations = append(violations, checkCascade(rec)...)
	return violations
}

func checkModifier(rec naming.Record) []string {
	if validModifiers[rec.Modifier] {
		return nil
	}
	allowed := []string{"A", "B", "C", "E", "F"}
	return []string{fmt.Sprintf("invalid modifier %q (must be one of: %s)",
		rec.Modifier, strings.Join(allowed, ", "))}
}

func checkDate(rec naming.Record) []string {
	var violations []string

	if rec.Month > 12 {
		violations = append(violations,
			fmt.Sprintf("invalid month value %d (must be 00-12)", rec.Month))
	}

	// The month-specific bound only applies when the month itself is in
	// range; otherwise fall back to the loose 31-day bound.
	if rec.Month >= 1 && rec.Month <= 12 && rec.Day > 0 {
		if maxDay := daysInMonth[rec.Month]; rec.Day > maxDay {
			violations = append(violations,
				fmt.Sprintf("invalid day value %d for month %02d (must be 00-%d)",
					rec.Day, rec.Month, maxDay))
		}
	} else if rec.Day > 31 {
		violations = append(violations,
			fmt.Sprintf("invalid day value %d (must be 00-31)", rec.Day))
	}

	return violations
}

func checkTime(rec naming.Record) []string {
	var violations []string
	if rec.Hour > 23 {
		violations = append(violations,
			fmt.Sprintf("invalid hour value %d (must be 00-23)", rec.Hour))
	}
	if rec.Minute > 59 {
		violations = append(violations,
			fmt.Sprintf("invalid minute value %d (must be 00-59)", rec.Minute))
	}
	if rec.Second > 59 {
		violations = append(violations,
			fmt.Sprintf("invalid second value %d (must be 00-59)", rec.Second))
	}
	return violations
}

// checkCascade enforces zero-propagation: month=00 clears day and time,
// day=00 clears time, hour=00 clears minute and second, minute=00 clears
// second. Each failed implication yields its own message.
func checkCascade(rec naming.Record) []string {
	var violations []string

	if rec.Month == 0 {
		if rec.Day != 0 {
			violations = append(violations,
				fmt.Sprintf("month is 00 but day is %02d (when month=00, day must also be 00)",
					rec.Day))
		}
		if rec.Hour != 0 || rec.Minute != 0 || rec.Second != 0 {
			violations = append(violations,
				fmt.Sprintf("month is 00 but time is %02d:%02d:%02d (when month=00, time must be 00:00:00)",
					rec.Hour, rec.Minute, rec.Second))
		}
	}

	if rec.Day == 0 && (rec.Hour != 0 || rec.Minute != 0 || rec.Second != 0) {
		violations = append(violations,
			fmt.Sprintf("day is 00 but time is %02d:%02d:%02d (when day=00, time must be 00:00:00)",
				rec.Hour, rec.Minute, rec.Second))
	}

	if rec.Hour == 0 && (rec.Minute != 0 || rec.Second != 0) {
		violations = append(violations,
			fmt.Sprintf("hour is 00 but minutes/seconds are %02d:%02d (when hour=00, minutes and seconds must also be 00)",
				rec.Minute, rec.Second))
	}

	if rec.Minute == 0 && rec.Second != 0 {
		violations = append(violations,
			fmt.Sprintf("minute is 00 but second is %02d (when minute=00, second must also be 00)",
				rec.Second))
	}

	return violations
}
