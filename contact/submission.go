// Package contact validates the landing page contact form and relays it to
// an external form-handling endpoint as URL-encoded form data.
package contact

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// TimestampLayout is the local time format sent with every submission.
const TimestampLayout = "2006-01-02 15:04:05"

// defaultMessage replaces an empty message field.
const defaultMessage = "No message provided"

// Submission is one contact request.
type Submission struct {
	Timestamp string
	Name      string
	Email     string
	Mobile    string
	Service   string
	Message   string
}

// Timestamp formats t as "YYYY-MM-DD HH:MM:SS" in t's location.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Validation messages, in rule order.
const (
	MsgName   = "Please enter your name."
	MsgEmail  = "Please enter a valid email address."
	MsgMobile = "Please enter a valid mobile number."
)

// ValidationError reports the first rule a submission broke. Message is
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "contact: invalid " + e.Field + ": " + e.Message
}

// minMobileDigits is the shortest accepted mobile number after stripping
// separators.
const minMobileDigits = 10

// stripMobileSeparators drops any Unicode space, '-' and '+'. Parentheses are
// kept, so "(123) 456-7890" counts 12 characters.
func stripMobileSeparators(mobile string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\ufeff' || r == '-' || r == '+' {
			return -1
		}
		return r
	}, mobile)
}

// Validate checks name, email and mobile in that order and returns a
// *ValidationError for the first failure, or nil.
func Validate(s Submission) error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Message: MsgName}
	}
	if strings.TrimSpace(s.Email) == "" || !strings.Contains(s.Email, "@") {
		return &ValidationError{Field: "email", Message: MsgEmail}
	}
	if strings.TrimSpace(s.Mobile) == "" || len([]rune(stripMobileSeparators(s.Mobile))) < minMobileDigits {
		return &ValidationError{Field: "mobile", Message: MsgMobile}
	}
	return nil
}

// UserMessage returns the message to show for err when it is a
// *ValidationError.
func UserMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}

// fieldOrder is the order fields are encoded in.
var fieldOrder = []string{"timestamp", "name", "email", "mobile", "service", "message"}

// Encode renders s as an application/x-www-form-urlencoded body with the
// fields in a fixed order.
func Encode(s Submission) string {
	values := map[string]string{
		"timestamp": s.Timestamp,
		"name":      s.Name,
		"email":     s.Email,
		"mobile":    s.Mobile,
		"service":   s.Service,
		"message":   s.Message,
	}
	var b strings.Builder
	for i, k := range fieldOrder {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(values[k]))
	}
	return b.String()
}
