package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user.name@example.co.id",
		"user+tag@sub.example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"user",
		"user@",
		"@example.com",
		"user@example",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-14")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 14, date.Day())

	_, ok = IsValidDate("14-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", slice))
	assert.False(t, IsInSlice("cancelled", slice))
	assert.False(t, IsInSlice("", slice))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}
	assert.Contains(t, errs.Error(), "email: email is required")
	assert.Contains(t, errs.Error(), "password: password is required")

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Len(t, m, 2)
}
