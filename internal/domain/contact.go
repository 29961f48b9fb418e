package domain

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)

// Contact is the name and email of a person. Students hold one by value.
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// NewContact trims and validates a name and email pair.
func NewContact(name, email string) (Contact, error) {
	c := Contact{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Validate checks that both fields are present and the email is well formed.
func (c Contact) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if !ValidEmail(c.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail reports whether email has the shape local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validID rejects empty IDs and IDs that would break a line-oriented record.
func validID(id string, empty error) error {
	if id == "" {
		return empty
	}
	if strings.ContainsAny(id, "\r\n") {
		return ErrInvalidID
	}
	return nil
}
