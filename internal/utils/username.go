package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateUniqueUsername slugs a display name into a username and, if
// taken, appends an incrementing counter until exists reports free.
// The exists callback is expected to check every namespace usernames
// share (hostels and guests).
func GenerateUniqueUsername(name string, exists func(username string) (bool, error)) (string, error) {
	base := slug(name)
	if base == "" {
		base = "user"
	}

	username := base
	for counter := 1; ; counter++ {
		taken, err := exists(username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
