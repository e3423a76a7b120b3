package team

import "testing"

func TestCleanName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed case with space", in: "AFC Ajax", want: "afcajax"},
		{name: "punctuation stripped", in: "St. Pauli 1910", want: "stpauli1910"},
		{name: "diacritics dropped", in: "Győri ETO", want: "gyrieto"},
		{name: "already clean", in: "afcajax", want: "afcajax"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := CleanName(tc.in)
			if got != tc.want {
				t.Fatalf("CleanName(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := CleanName(got); again != got {
				t.Fatalf("CleanName not idempotent: %q -> %q", got, again)
			}
		})
	}
}
