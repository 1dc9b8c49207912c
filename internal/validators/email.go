package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the email's domain actually resolves
// (MX preferred, bare A/AAAA accepted). It does DNS lookups, so it runs
// only on operator registration, never on a hot path.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small providers receive mail on the apex without MX records.
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
