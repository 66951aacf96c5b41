package utils

import (
	"strings"
	"unicode"
)

var trFold = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Slugify lowercases s, folds Turkish letters to ASCII and drops anything
// that is not a letter or digit.
func Slugify(s string) string {
	s = trFold.Replace(s)
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CustomerUsername derives the portal username from the couple's names.
func CustomerUsername(brideName, groomName string) string {
	return Slugify(brideName) + Slugify(groomName)
}

// LoginEmail builds the login address for a portal username.
func LoginEmail(username, domain string) string {
	return strings.ToLower(strings.TrimSpace(username)) + "@" + domain
}

// UsernameFromEmail returns the local part of a login address.
func UsernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
