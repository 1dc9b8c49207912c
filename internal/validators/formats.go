package validators

import "regexp"

// Regional formats: plates like "1234 AB-1", phones like
// "+375 (29) 123-45-67". Checked at the HTTP boundary only; the domain
// core stores whatever it is given.
var (
	carNumberRe   = regexp.MustCompile(`^[0-9]{4}\s[A-Z]{2}-[0-9]$`)
	phoneNumberRe = regexp.MustCompile(`^\+375\s?\(?\d{2}\)?\s?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`)
)

func IsCarNumberValid(carNumber string) bool {
	return carNumberRe.MatchString(carNumber)
}

func IsPhoneNumberValid(phone string) bool {
	return phoneNumberRe.MatchString(phone)
}
