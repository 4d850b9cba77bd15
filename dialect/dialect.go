// Package dialect gates standard-specific lexical and grammatical features
// by the C standard version a caller targets. It borrows the teacher's
// semver-constraint machinery (there used to resolve package versions) and
// repurposes it to resolve language-feature availability instead: each
// gated feature declares the standard version it requires, and a Profile
// answers whether the active target satisfies that requirement.
package dialect

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// Profile names a target C standard and the features available under it.
type Profile struct {
	Name    string
	version *semver.Version
}

// featureVersions maps a feature name to the standard version that
// introduced it. C standard years are modeled as semver major versions
// (17 -> C17, 23 -> C23) purely so the constraint machinery in
// Masterminds/semver/v3 — built for dotted version numbers — applies
// directly.
var featureVersions = map[string]*semver.Version{
	"typeof":           semver.MustParse("23.0.0"),
	"typeof_unqual":    semver.MustParse("23.0.0"),
	"constexpr":        semver.MustParse("23.0.0"),
	"nullptr":          semver.MustParse("23.0.0"),
	"bool_keyword":     semver.MustParse("23.0.0"), // bool/true/false as keywords, not <stdbool.h> macros
	"bit_int":          semver.MustParse("23.0.0"),
	"digit_separators": semver.MustParse("23.0.0"),
	"unicode_idents":   semver.MustParse("23.0.0"),
	"attributes":       semver.MustParse("23.0.0"),
	"keyword_aliases":  semver.MustParse("23.0.0"),
}

func mustProfile(name, version string) *Profile {
	return &Profile{Name: name, version: semver.MustParse(version)}
}

// C23 is the default profile: the full feature set spec.md describes.
var C23 = mustProfile("c23", "23.0.0")

// C17 disables every feature introduced by C23's grammar, so those
// spellings lex as plain identifiers instead of keywords.
var C17 = mustProfile("c17", "17.0.0")

// Allows reports whether feature is available under p. An unknown feature
// name is treated as always available — Allows only ever restricts named,
// registered features.
func (p *Profile) Allows(feature string) bool {
	if p == nil {
		return true
	}
	required, ok := featureVersions[feature]
	if !ok {
		return true
	}
	return !p.version.LessThan(required)
}

// String implements fmt.Stringer.
func (p *Profile) String() string {
	if p == nil {
		return "c23"
	}
	return p.Name
}

// Parse resolves a caller-supplied standard name ("c23", "c17", "gnu23", ...)
// to a Profile. Unknown names fall back to C23 with an error so a typo'd
// `-std=` flag in a bundled example doesn't silently downgrade the parse.
func Parse(name string) (*Profile, error) {
	switch name {
	case "", "c23", "gnu23", "iso9899:2024":
		return C23, nil
	case "c17", "gnu17", "iso9899:2018":
		return C17, nil
	default:
		return C23, fmt.Errorf("dialect: unknown standard %q", name)
	}
}
