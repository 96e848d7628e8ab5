package manifest

import "testing"

func TestToValidName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Some CoolTitle Here", "some-cool-title-here"},
		{"my-app", "my-app"},
		{"  My   App  ", "my-app"},
		{"Café Crème", "cafe-creme"},
		{"hello, world!", "hello-world"},
		{"_private.pkg", "private.pkg"},
		{".hidden", "hidden"},
		{"HTTPServer", "http-server"},
		{"a - b", "a-b"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := ToValidName(tc.raw); got != tc.want {
				t.Errorf("ToValidName(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestToValidNameIdempotent(t *testing.T) {
	inputs := []string{
		"Some CoolTitle Here",
		"Café Crème",
		"-.leading-junk",
		"trailing-junk-",
		"already-valid",
	}

	for _, raw := range inputs {
		once := ToValidName(raw)
		twice := ToValidName(once)
		if once != twice {
			t.Errorf("ToValidName not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
