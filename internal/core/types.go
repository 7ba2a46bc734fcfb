package core

import (
	"errors"
	"fmt"
	"time"
)

const (
	BotName    = "ImeiBot"
	BotVersion = "0.1.0"
)

// Role is the authorization tier of an identity.
//
//	user  - can use the lookup commands
//	admin - can do the same, and can also manage other identities
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status is the activation state of an identity. Only active identities
// pass authorization.
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNoUpdate      = errors.New("no updates specified")
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusDisabled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// User is one identity record. TgID is the Telegram user ID and the
// primary key; it never changes once the record exists.
type User struct {
	TgID       int64
	Name       string
	Role       Role
	Status     Status
	LastUpdate time.Time
}

// UserUpdate carries the optional fields of an update. A nil field is
// left untouched; both nil is a caller error.
type UserUpdate struct {
	Role   *Role
	Status *Status
}
