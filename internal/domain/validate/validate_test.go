package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	valid := []string{"abc", "alice_01", "ABC_def_123", strings.Repeat("a", 30)}
	for _, username := range valid {
		assert.True(t, Username(username), "expected valid username: %s", username)
	}

	invalid := []string{"", "ab", "has space", "bad-dash", "émile", strings.Repeat("a", 31)}
	for _, username := range invalid {
		assert.False(t, Username(username), "expected invalid username: %s", username)
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("123456"))
	assert.True(t, Password("a much longer passphrase"))

	assert.False(t, Password(""))
	assert.False(t, Password("12345"))
}

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.io",
	}
	for _, email := range valid {
		assert.True(t, Email(email), "expected valid email: %s", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"two@@example.com",
		"spaces in@example.com",
		"user@example",
		"user@example.c",
		"a@" + strings.Repeat("b", 250) + ".com", // over 254 chars
	}
	for _, email := range invalid {
		assert.False(t, Email(email), "expected invalid email: %s", email)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5551234567", NormalizePhone("(555) 123-4567"))
	assert.Equal(t, "+15551234567", NormalizePhone("+1 555 123 4567"))
	assert.Equal(t, "1234567", NormalizePhone("1234567"))

	// Not normalizable inputs signal with an empty string.
	assert.Equal(t, "", NormalizePhone(""))
	assert.Equal(t, "", NormalizePhone("abc1234567"))
	assert.Equal(t, "", NormalizePhone("555+1234"))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone(""), "empty phone is valid, the field is optional")
	assert.True(t, Phone("5551234567"))
	assert.True(t, Phone("+15551234567"))
	assert.True(t, Phone("(555) 123-4567"))

	assert.False(t, Phone("123"), "too short")
	assert.False(t, Phone("12345678901234567"), "too long")
	assert.False(t, Phone("not-a-phone"))
}

func TestDOB(t *testing.T) {
	now := time.Now()

	assert.True(t, DOB(""), "empty dob is valid, the field is optional")
	assert.False(t, DOB("not-a-date"))

	// Exactly 13 years ago today: birthday has occurred, age is 13.
	exactly13 := now.AddDate(-13, 0, 0)
	assert.True(t, DOB(exactly13.Format("2006-01-02")))

	// 13 years minus one day: birthday is tomorrow, age is still 12.
	almost13 := now.AddDate(-13, 0, 1)
	assert.False(t, DOB(almost13.Format("2006-01-02")))

	// Future dates are never acceptable.
	future := now.AddDate(1, 0, 0)
	assert.False(t, DOB(future.Format("2006-01-02")))

	// Comfortably old enough.
	adult := now.AddDate(-30, 0, 0)
	assert.True(t, DOB(adult.Format("2006-01-02")))
}

func TestParseDOB(t *testing.T) {
	d, ok := ParseDOB("1990-06-15")
	assert.True(t, ok)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())

	_, ok = ParseDOB("15/06/1990")
	assert.False(t, ok)
}
