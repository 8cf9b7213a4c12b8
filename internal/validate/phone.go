// internal/validate/phone.go
package validate

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is assumed for numbers entered without a country code.
const DefaultPhoneRegion = "CA"

// Phone reports whether s parses as a valid number. Unparseable input is
// invalid, not an error.
func Phone(s, region string) bool {
	num, err := phonenumbers.Parse(s, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// FormatPhone canonicalizes s to international format ("+1 604-555-0199").
// Callers validate with Phone first; a parse failure here means they did
// not.
func FormatPhone(s, region string) (string, error) {
	num, err := phonenumbers.Parse(s, region)
	if err != nil {
		return "", fmt.Errorf("parsing phone number: %w", err)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), nil
}
