package geocode

import "testing"

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2115 Main St Unit 4", "2115 Main St"},
		{"2115 Main St Suite 200", "2115 Main St"},
		{"2115 Main St #12B", "2115 Main St"},
		{"103 2115 Main St", "2115 Main St"},   // Leading unit prefix
		{"450 9th Avenue", "9 Avenue"},         // Leading unit prefix + ordinal suffix
		{"1 2nd St Apt 3", "2 St"},             // Multiple rules at once
		{"742 Evergreen Terrace", "742 Evergreen Terrace"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeAddress(c.in); got != c.want {
			t.Errorf("NormalizeAddress(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExpandProvince(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ON", "Ontario"},
		{"on", "Ontario"},
		{"BC", "British Columbia"},
		{"NL", "Newfoundland and Labrador"},
		{"CA", "CA"}, // Not a province; passes through (it's California)
		{"", ""},
	}
	for _, c := range cases {
		if got := ExpandProvince(c.in); got != c.want {
			t.Errorf("ExpandProvince(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
