package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// Field length bounds for contact form submissions
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	EmailMaxLength   = 254
	SubjectMinLength = 3
	SubjectMaxLength = 200
	MessageMinLength = 10
	MessageMaxLength = 2000
)

// Validator validates contact form submissions
type Validator struct {
	maxMessageLength int
}

// NewValidator creates a validator with the default message bound
func NewValidator() *Validator {
	return &Validator{maxMessageLength: MessageMaxLength}
}

// NewValidatorWithMessageLimit creates a validator with a relaxed or
// tightened message bound (some deployments allow up to 5000)
func NewValidatorWithMessageLimit(max int) *Validator {
	if max < MessageMinLength {
		max = MessageMaxLength
	}
	return &Validator{maxMessageLength: max}
}

// IsSpam reports whether the submission tripped the honeypot field.
// A non-empty honeypot marks the submission as automated; no further
// validation happens in that case.
func (v *Validator) IsSpam(req *models.ContactRequest) bool {
	return strings.TrimSpace(req.Honeypot) != ""
}

// ValidateContact validates a contact form submission and returns
// field-keyed error messages, empty when the submission is valid.
// Fields are trimmed in place before validation.
func (v *Validator) ValidateContact(req *models.ContactRequest) map[string][]string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	errors := make(map[string][]string)

	// Name. Length bounds count characters, not bytes, so multibyte
	// names measure the same as ASCII ones.
	if req.Name == "" {
		errors["name"] = append(errors["name"], "Name is required.")
	} else if utf8.RuneCountInString(req.Name) < NameMinLength {
		errors["name"] = append(errors["name"], fmt.Sprintf("Name must be at least %d characters.", NameMinLength))
	} else if utf8.RuneCountInString(req.Name) > NameMaxLength {
		errors["name"] = append(errors["name"], fmt.Sprintf("Name is too long (max %d characters).", NameMaxLength))
	}

	// Email: needs an '@' and a '.' somewhere after it. The length cap
	// stays in bytes, matching the RFC 5321 octet limit.
	if req.Email == "" {
		errors["email"] = append(errors["email"], "Email is required.")
	} else if !isPlausibleEmail(req.Email) {
		errors["email"] = append(errors["email"], "Please enter a valid email address.")
	} else if len(req.Email) > EmailMaxLength {
		errors["email"] = append(errors["email"], "Email is too long.")
	}

	// Subject
	if req.Subject == "" {
		errors["subject"] = append(errors["subject"], "Subject is required.")
	} else if utf8.RuneCountInString(req.Subject) < SubjectMinLength {
		errors["subject"] = append(errors["subject"], fmt.Sprintf("Subject must be at least %d characters.", SubjectMinLength))
	} else if utf8.RuneCountInString(req.Subject) > SubjectMaxLength {
		errors["subject"] = append(errors["subject"], fmt.Sprintf("Subject is too long (max %d characters).", SubjectMaxLength))
	}

	// Message
	if req.Message == "" {
		errors["message"] = append(errors["message"], "Message is required.")
	} else if utf8.RuneCountInString(req.Message) < MessageMinLength {
		errors["message"] = append(errors["message"], fmt.Sprintf("Message must be at least %d characters.", MessageMinLength))
	} else if utf8.RuneCountInString(req.Message) > v.maxMessageLength {
		errors["message"] = append(errors["message"], fmt.Sprintf("Message is too long (max %d characters).", v.maxMessageLength))
	}

	return errors
}

func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
