package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCarNumberValid(t *testing.T) {
	valid := []string{
		"1234 AB-1",
		"0001 XY-7",
	}
	for _, v := range valid {
		assert.True(t, IsCarNumberValid(v), v)
	}

	invalid := []string{
		"",
		"1234AB-1",     // missing space
		"1234 ab-1",    // lowercase letters
		"123 AB-1",     // three digits
		"1234 AB-12",   // two trailing digits
		"1234 AB1",     // missing dash
		" 1234 AB-1",   // leading space
		"1234 AB-1 ",   // trailing space
		"1234 ABC-1",   // three letters
	}
	for _, v := range invalid {
		assert.False(t, IsCarNumberValid(v), v)
	}
}

func TestIsPhoneNumberValid(t *testing.T) {
	valid := []string{
		"+375 (29) 123-45-67",
		"+375 29 123 45 67",
		"+375291234567",
		"+375(29)1234567",
		"+375 (33) 123 45-67",
	}
	for _, v := range valid {
		assert.True(t, IsPhoneNumberValid(v), v)
	}

	invalid := []string{
		"",
		"375 (29) 123-45-67",  // missing plus
		"+7 (29) 123-45-67",   // wrong country code
		"+375 (291) 123-45-67", // three-digit operator code
		"+375 (29) 123-45-6",  // short subscriber number
		"+375 (29) 123-45-678", // long subscriber number
		"+375 (29) abc-de-fg", // letters
	}
	for _, v := range invalid {
		assert.False(t, IsPhoneNumberValid(v), v)
	}
}
