package acceptlang

import "testing"

func TestIsValidRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		ok    bool
	}{
		{"*", true},
		{"da", true},
		{"en-GB", true},
		{"zh-Hant-TW", true},
		{"sgn-BE-FR", true},
		{"x", true},
		{"abcdefgh", true},
		{"en-u1-US", true},
		{"en-419", true},
		{"", false},
		{"-", false},
		{"en-", false},
		{"-en", false},
		{"en--US", false},
		{"abcdefghi", false},
		{"en-abcdefghi", false},
		{"419", false},
		{"4a", false},
		{"en_US", false},
		{"en US", false},
		{"en.GB", false},
		{"**", false},
		{"en-*", false},
	}
	for _, tc := range cases {
		if got := isValidRange(tc.token); got != tc.ok {
			t.Errorf("isValidRange(%q) = %v, want %v", tc.token, got, tc.ok)
		}
	}
}

func TestParseQualityStrict(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in string
		q  Quality
		ok bool
	}{
		{"1", 1000, true},
		{"1.", 1000, true},
		{"1.0", 1000, true},
		{"1.00", 1000, true},
		{"1.000", 1000, true},
		{"0", 0, true},
		{"0.", 0, true},
		{"0.8", 800, true},
		{"0.85", 850, true},
		{"0.875", 875, true},
		{"0.001", 1, true},
		{"", 0, false},
		{".8", 0, false},
		{"1.1", 0, false},
		{"1.0001", 0, false},
		{"0.8000", 0, false},
		{"2", 0, false},
		{"-1", 0, false},
		{"0.8a", 0, false},
		{"0,8", 0, false},
		{"00.8", 0, false},
	}
	for _, tc := range cases {
		q, ok := parseQuality(tc.in, false)
		if ok != tc.ok || q != tc.q {
			t.Errorf("parseQuality(%q) = (%d, %v), want (%d, %v)", tc.in, q, ok, tc.q, tc.ok)
		}
	}
}

func TestParseQualityLenientAcceptsBareFraction(t *testing.T) {
	t.Parallel()

	q, ok := parseQuality(".8", true)
	if !ok || q != 800 {
		t.Fatalf("parseQuality(\".8\", lenient) = (%d, %v), want (800, true)", q, ok)
	}
	if _, ok := parseQuality(".", true); ok {
		t.Fatal("parseQuality(\".\", lenient): expected invalid")
	}
	if _, ok := parseQuality(".8000", true); ok {
		t.Fatal("parseQuality(\".8000\", lenient): expected invalid")
	}
}
