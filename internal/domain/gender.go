package domain

import "strings"

// NormalizeGender maps the historical spellings found in imported data
// (male/m/1/Male, female/f/2/Female, ...) to the canonical constants.
// Unknown or empty input returns "".
func NormalizeGender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "1":
		return GenderMale
	case "female", "f", "2":
		return GenderFemale
	}
	return ""
}

// OppositeGender returns the complementary gender filter value for a viewer,
// or "" when the viewer's gender cannot be resolved (no filter applied).
func OppositeGender(raw string) string {
	switch NormalizeGender(raw) {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	}
	return ""
}
