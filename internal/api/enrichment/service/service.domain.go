package enrichsvc

import (
	"fmt"
	"strings"

	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// ExtractDomain reduces a user-entered URL to a bare domain: scheme and
// leading www. stripped, anything after the first slash dropped, port
// removed.
func ExtractDomain(rawURL string) string {
	domain := strings.ToLower(strings.TrimSpace(rawURL))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.IndexAny(domain, "/?#"); i >= 0 {
		domain = domain[:i]
	}
	if i := strings.IndexByte(domain, ':'); i >= 0 {
		domain = domain[:i]
	}
	return domain
}

// ValidateDomain rejects strings too short or without a dot to be a domain.
func ValidateDomain(domain string) error {
	if len(domain) < 3 || !strings.Contains(domain, ".") {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("%q is not a valid domain", domain), common.StatusBadRequest, nil)
	}
	return nil
}
