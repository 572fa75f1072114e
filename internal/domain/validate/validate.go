// Package validate holds the authoritative validation and normalization rules
// for credentials and user-editable profile fields. The functions are pure;
// any client-side duplicate of these rules must defer to this package.
package validate

import (
	"regexp"
	"strings"
	"time"
)

const (
	maxEmailLength    = 254
	minimumAge        = 13
	minPasswordLength = 6
)

var (
	// 3-30 characters, letters, digits and underscore only.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

	// Simplified localpart@domain.tld grammar: no whitespace, exactly one @,
	// at least one dot after it with two or more trailing characters.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// E.164-like: optional leading +, then 7-15 digits.
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// A cleaned phone: optional leading +, one or more digits.
	cleanedPhoneRe = regexp.MustCompile(`^\+?[0-9]+$`)

	phoneFormatting = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// dobLayouts are the accepted date-of-birth input formats.
var dobLayouts = []string{"2006-01-02", time.RFC3339}

// Username reports whether s is an acceptable login name.
func Username(s string) bool {
	return usernameRe.MatchString(s)
}

// Password reports whether s meets the minimum length requirement.
// Length is the only rule; composition is not constrained.
func Password(s string) bool {
	return len(s) >= minPasswordLength
}

// Email reports whether s is an acceptable email address.
func Email(s string) bool {
	return len(s) <= maxEmailLength && emailRe.MatchString(s)
}

// NormalizePhone strips spaces, dashes and parentheses and returns the cleaned
// string. A result that is not an optional + followed by digits is not
// normalizable, signaled by an empty return.
func NormalizePhone(s string) string {
	if s == "" {
		return ""
	}

	cleaned := phoneFormatting.Replace(s)
	if !cleanedPhoneRe.MatchString(cleaned) {
		return ""
	}

	return cleaned
}

// Phone reports whether s is an acceptable phone number. The field is
// optional, so the empty string is valid.
func Phone(s string) bool {
	if s == "" {
		return true
	}

	return phoneRe.MatchString(NormalizePhone(s))
}

// ParseDOB parses a date of birth from its accepted formats.
func ParseDOB(s string) (time.Time, bool) {
	for _, layout := range dobLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}

// DOB reports whether s is an acceptable date of birth: a real calendar date,
// not in the future, implying an age of at least 13 whole years. The field is
// optional, so the empty string is valid.
func DOB(s string) bool {
	if s == "" {
		return true
	}

	d, ok := ParseDOB(s)
	if !ok {
		return false
	}

	now := time.Now()
	if d.After(now) {
		return false
	}

	return ageInYears(d, now) >= minimumAge
}

// ageInYears computes whole calendar years between birth and now: the year
// difference, decremented by one if this year's birthday has not occurred yet.
func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	return years
}
