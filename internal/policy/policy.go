// Package policy screens outbound chat messages for contact-detail leakage.
// The marketplace keeps all negotiation on-platform until an agreement is
// signed, so email addresses, phone numbers and references to external
// messengers are rejected before the message is ever persisted.
package policy

import "regexp"

// Warning is the message shown to the sender when a check fails.
const Warning = "Safety Alert: Contact details detected. Please keep terminal integrity by communicating only via Sell It."

var (
	emailRe   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe   = regexp.MustCompile(`\b(?:\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`)
	keywordRe = regexp.MustCompile(`(?i)\b(whatsapp|telegram|discord|wechat|signal|phone|call me|number|skype|viber|email|contact)\b`)
)

// Result is the outcome of a policy check. Reason is empty when Allowed.
type Result struct {
	Allowed bool
	Reason  string
}

// Check runs the filters in a fixed order: email, then phone, then keyword.
// Only the first matching filter's reason is reported. Empty text passes.
func Check(text string) Result {
	switch {
	case emailRe.MatchString(text):
		return Result{Reason: "email address detected"}
	case phoneRe.MatchString(text):
		return Result{Reason: "phone number detected"}
	case keywordRe.MatchString(text):
		return Result{Reason: "external contact keyword detected"}
	default:
		return Result{Allowed: true}
	}
}
