package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials indicates a failed login. It is raised for an
	// unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when a username or email is already taken.
	ErrUserExists = errors.New("username or email already exists")
)

// NotFoundError reports a missing record. Product mutations by a
// non-owner raise it too, so callers cannot probe for other users'
// records.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", strings.ToLower(e.Kind), e.ID)
}

func NewUserNotFound(id int64) error {
	return &NotFoundError{Kind: "User", ID: id}
}

func NewProductNotFound(id int64) error {
	return &NotFoundError{Kind: "Product", ID: id}
}

// ValidationError carries the complete list of violated input rules, in
// the order the rules are declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
