package usecase

import (
	"net/mail"
	"strings"
)

// ValidEmail checks that addr is a plain, routable email address.
func ValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	at := strings.LastIndex(addr, "@")
	return at > 0 && strings.Contains(addr[at+1:], ".")
}
