package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("operator@fabtrack.io"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.uk"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "16:45", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidClockTime(s), s)
	}

	invalid := []string{"24:00", "12:60", "8:30", "12:5", "1230", "ab:cd", ""}
	for _, s := range invalid {
		assert.False(t, IsValidClockTime(s), s)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-08-15")
	assert.True(t, ok)
	_, ok = IsValidDate("15-08-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidTenantCode(t *testing.T) {
	assert.True(t, IsValidTenantCode("ACME"))
	assert.True(t, IsValidTenantCode("MOLD01"))
	assert.False(t, IsValidTenantCode("ac"))
	assert.False(t, IsValidTenantCode("lowercase"))
	assert.False(t, IsValidTenantCode("TOO-LONG-CODE"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("ACME-0042"))
	assert.True(t, IsValidEmployeeCode("MOLD01-7"))
	assert.False(t, IsValidEmployeeCode("ACME0042"))
	assert.False(t, IsValidEmployeeCode("acme-0042"))
	assert.False(t, IsValidEmployeeCode("-0042"))
}
