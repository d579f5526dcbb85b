package validate

import (
	"strings"
	"testing"

	"github.com/backmassage/humpyard/internal/naming"
)

// rec builds a fully valid exact-date record that cases mutate.
func rec() naming.Record {
	return naming.Record{
		Year: 1950, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 45,
		Modifier: "E", Group: "FAM", Subgroup: "POR",
		Sequence: "000001", Extension: "jpg",
	}
}

func TestValidate_Valid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*naming.Record)
	}{
		{"full precision", func(r *naming.Record) {}},
		{"modifier A", func(r *naming.Record) { r.Modifier = "A" }},
		{"modifier B", func(r *naming.Record) { r.Modifier = "B" }},
		{"modifier C", func(r *naming.Record) { r.Modifier = "C" }},
		{"modifier F", func(r *naming.Record) { r.Modifier = "F" }},
		{"day precision", func(r *naming.Record) {
			r.Hour, r.Minute, r.Second = 0, 0, 0
		}},
		{"month precision", func(r *naming.Record) {
			r.Day, r.Hour, r.Minute, r.Second = 0, 0, 0, 0
		}},
		{"year precision", func(r *naming.Record) {
			r.Month, r.Day, r.Hour, r.Minute, r.Second = 0, 0, 0, 0, 0
		}},
		{"unknown year", func(r *naming.Record) {
			r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second = 0, 0, 0, 0, 0, 0
		}},
		{"hour precision", func(r *naming.Record) { r.Minute, r.Second = 0, 0 }},
		{"minute precision", func(r *naming.Record) { r.Second = 0 }},
		// Leap day is accepted for every year: the table caps February at
		// 29 and no leap-year arithmetic is performed.
		{"feb 29 non-leap year", func(r *naming.Record) {
			r.Year, r.Month, r.Day = 1950, 2, 29
		}},
		{"feb 29 leap year", func(r *naming.Record) {
			r.Year, r.Month, r.Day = 1952, 2, 29
		}},
		{"december 31", func(r *naming.Record) { r.Month, r.Day = 12, 31 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rec()
			tc.mutate(&r)
			if got := Validate(r); len(got) != 0 {
				t.Errorf("Validate() = %v, want no violations", got)
			}
		})
	}
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*naming.Record)
		want     int      // number of violations
		contains []string // substrings expected across the messages, in order
	}{
		{
			name:     "unknown modifier",
			mutate:   func(r *naming.Record) { r.Modifier = "X" },
			want:     1,
			contains: []string{`invalid modifier "X"`},
		},
		{
			name:     "month out of range",
			mutate:   func(r *naming.Record) { r.Month = 13 },
			want:     1,
			contains: []string{"invalid month value 13"},
		},
		{
			name:     "feb 30 rejected",
			mutate:   func(r *naming.Record) { r.Month, r.Day = 2, 30 },
			want:     1,
			contains: []string{"invalid day value 30 for month 02 (must be 00-29)"},
		},
		{
			name:     "april 31 rejected",
			mutate:   func(r *naming.Record) { r.Month, r.Day = 4, 31 },
			want:     1,
			contains: []string{"invalid day value 31 for month 04 (must be 00-30)"},
		},
		{
			name: "loose day bound when month out of range",
			mutate: func(r *naming.Record) {
				r.Month, r.Day = 13, 32
			},
			want:     2,
			contains: []string{"invalid month value 13", "invalid day value 32 (must be 00-31)"},
		},
		{
			name: "in-range day tolerated when month out of range",
			mutate: func(r *naming.Record) {
				r.Month, r.Day = 13, 15
			},
			want:     1,
			contains: []string{"invalid month value 13"},
		},
		{
			name:     "hour out of range",
			mutate:   func(r *naming.Record) { r.Hour = 24 },
			want:     1,
			contains: []string{"invalid hour value 24"},
		},
		{
			name:     "minute out of range",
			mutate:   func(r *naming.Record) { r.Minute = 60 },
			want:     1,
			contains: []string{"invalid minute value 60"},
		},
		{
			name:     "second out of range",
			mutate:   func(r *naming.Record) { r.Second = 61 },
			want:     1,
			contains: []string{"invalid second value 61"},
		},
		{
			name: "month zero day nonzero",
			mutate: func(r *naming.Record) {
				r.Month = 0
				r.Hour, r.Minute, r.Second = 0, 0, 0
			},
			want:     1,
			contains: []string{"month is 00 but day is 15"},
		},
		{
			name: "month zero with day and time",
			mutate: func(r *naming.Record) {
				r.Month = 0
			},
			want: 2,
			contains: []string{
				"month is 00 but day is 15",
				"month is 00 but time is 12:30:45",
			},
		},
		{
			name: "day zero with time",
			mutate: func(r *naming.Record) {
				r.Day = 0
			},
			want:     1,
			contains: []string{"day is 00 but time is 12:30:45"},
		},
		{
			name: "hour zero with minutes",
			mutate: func(r *naming.Record) {
				r.Hour = 0
			},
			want:     1,
			contains: []string{"hour is 00 but minutes/seconds are 30:45"},
		},
		{
			name: "minute zero with seconds",
			mutate: func(r *naming.Record) {
				r.Minute = 0
			},
			want:     1,
			contains: []string{"minute is 00 but second is 45"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rec()
			tc.mutate(&r)
			got := Validate(r)
			if len(got) != tc.want {
				t.Fatalf("Validate() = %v (%d violations), want %d", got, len(got), tc.want)
			}
			assertContainsInOrder(t, got, tc.contains)
		})
	}
}

// Violations are independent: a bad modifier, a bad month, and cascade
// breaks all surface together, in the fixed modifier → date → time →
// cascade order.
func TestValidate_CollectsAllIndependently(t *testing.T) {
	r := naming.Record{
		Year: 1950, Month: 0, Day: 15, Hour: 25, Minute: 30, Second: 45,
		Modifier: "Q", Group: "FAM", Subgroup: "POR",
		Sequence: "000001", Extension: "jpg",
	}

	got := Validate(r)
	wantOrder := []string{
		`invalid modifier "Q"`,
		"invalid hour value 25",
		"month is 00 but day is 15",
		"month is 00 but time is 25:30:45",
	}
	if len(got) != len(wantOrder) {
		t.Fatalf("Validate() = %v (%d violations), want %d", got, len(got), len(wantOrder))
	}
	assertContainsInOrder(t, got, wantOrder)
}

// Cascade monotonicity: whenever month=0, any nonzero day or time component
// must be reported regardless of other field validity.
func TestValidate_CascadeMonotonicity(t *testing.T) {
	cases := []struct {
		name string
		day  int
		hour int
		min  int
		sec  int
	}{
		{"nonzero day", 15, 0, 0, 0},
		{"nonzero hour", 0, 5, 0, 0},
		{"nonzero minute", 0, 5, 10, 0},
		{"nonzero second", 0, 5, 10, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rec()
			r.Modifier = "Z" // Unrelated violation must not mask cascade findings.
			r.Month = 0
			r.Day, r.Hour, r.Minute, r.Second = tc.day, tc.hour, tc.min, tc.sec

			got := Validate(r)
			if tc.day != 0 && !anyContains(got, "month is 00 but day is") {
				t.Errorf("missing day cascade violation in %v", got)
			}
			if (tc.hour != 0 || tc.min != 0 || tc.sec != 0) &&
				!anyContains(got, "month is 00 but time is") {
				t.Errorf("missing time cascade violation in %v", got)
			}
		})
	}
}

func assertContainsInOrder(t *testing.T, got, want []string) {
	t.Helper()
	i := 0
	for _, substr := range want {
		found := false
		for ; i < len(got); i++ {
			if strings.Contains(got[i], substr) {
				found = true
				i++
				break
			}
		}
		if !found {
			t.Errorf("violation containing %q not found (in order) in %v", substr, got)
			return
		}
	}
}

func anyContains(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
