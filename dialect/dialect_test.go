package dialect

import "testing"

func TestC23AllowsEveryGatedFeature(t *testing.T) {
	for feature := range featureVersions {
		if !C23.Allows(feature) {
			t.Fatalf("want C23 to allow %q", feature)
		}
	}
}

func TestC17DisallowsC23OnlyFeatures(t *testing.T) {
	for feature := range featureVersions {
		if C17.Allows(feature) {
			t.Fatalf("want C17 to disallow %q (introduced by C23)", feature)
		}
	}
}

func TestAllowsUnknownFeatureIsAlwaysTrue(t *testing.T) {
	if !C17.Allows("some_future_feature_nobody_registered") {
		t.Fatalf("want an unregistered feature name to be treated as always available")
	}
	if !C23.Allows("some_future_feature_nobody_registered") {
		t.Fatalf("want an unregistered feature name to be treated as always available")
	}
}

func TestAllowsOnNilProfile(t *testing.T) {
	var p *Profile
	if !p.Allows("typeof") {
		t.Fatalf("want a nil Profile to allow everything")
	}
}

func TestProfileString(t *testing.T) {
	if got := C23.String(); got != "c23" {
		t.Fatalf("C23.String() = %q, want c23", got)
	}
	if got := C17.String(); got != "c17" {
		t.Fatalf("C17.String() = %q, want c17", got)
	}
	var nilProfile *Profile
	if got := nilProfile.String(); got != "c23" {
		t.Fatalf("nil Profile.String() = %q, want c23", got)
	}
}

func TestParseKnownNames(t *testing.T) {
	cases := []struct {
		name string
		want *Profile
	}{
		{"", C23},
		{"c23", C23},
		{"gnu23", C23},
		{"iso9899:2024", C23},
		{"c17", C17},
		{"gnu17", C17},
		{"iso9899:2018", C17},
	}
	for _, c := range cases {
		got, err := Parse(c.name)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseUnknownNameFallsBackToC23WithError(t *testing.T) {
	got, err := Parse("c89")
	if err == nil {
		t.Fatalf("want an error for an unknown standard name")
	}
	if got != C23 {
		t.Fatalf("want the fallback profile to be C23, got %v", got)
	}
}
