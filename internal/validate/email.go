// internal/validate/email.go
package validate

import "regexp"

// The accepted shape is intentionally narrow: a lowercase local part with at
// most one dot or underscore separator, then domain.tld.
var emailRe = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w+$`)

// Email reports whether s is an acceptable email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}
