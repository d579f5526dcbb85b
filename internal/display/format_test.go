package display

import "testing"

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			got := FormatBytes(tc.in)
			if got != tc.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "file"); got != "1 file" {
		t.Errorf("FormatCount(1) = %q", got)
	}
	if got := FormatCount(3, "file"); got != "3 files" {
		t.Errorf("FormatCount(3) = %q", got)
	}
	if got := FormatCount(0, "violation"); got != "0 violations" {
		t.Errorf("FormatCount(0) = %q", got)
	}
}
