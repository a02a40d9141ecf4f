package entities

import (
	"fmt"

	"github.com/google/uuid"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

type User struct {
	Base
	username    string
	email       string
	displayName string
	externalID  uuid.UUID
}

var _ Linkable = (*User)(nil)

func NewUser(id int64, username, email string) (*User, error) {
	base, err := newBase("User", id)
	if err != nil {
		return nil, err
	}

	name, err := validateUsername("User", "username", username)
	if err != nil {
		return nil, err
	}

	addr, err := validateEmail("User", "email", email)
	if err != nil {
		return nil, err
	}

	return &User{Base: base, username: name, email: addr}, nil
}

func NewUserFromTransfer(t *transfer.UserTransfer) (*User, error) {
	if t == nil {
		return nil, fmt.Errorf("NewUserFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("User", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	name, err := validateUsername("User", "username", t.Username)
	if err != nil {
		return nil, err
	}

	addr, err := validateEmail("User", "email", t.Email)
	if err != nil {
		return nil, err
	}

	externalID, err := parseOptionalGUID("User", "externalID", t.ExternalID)
	if err != nil {
		return nil, err
	}

	return &User{
		Base:        base,
		username:    name,
		email:       addr,
		displayName: t.DisplayName,
		externalID:  externalID,
	}, nil
}

func (u *User) Username() string      { return u.username }
func (u *User) Email() string         { return u.email }
func (u *User) ExternalID() uuid.UUID { return u.externalID }

func (u *User) SetUsername(username string) error {
	name, err := validateUsername("User", "username", username)
	if err != nil {
		return err
	}
	u.username = name
	u.touch()
	return nil
}

func (u *User) SetEmail(email string) error {
	addr, err := validateEmail("User", "email", email)
	if err != nil {
		return err
	}
	u.email = addr
	u.touch()
	return nil
}

func (u *User) SetDisplayName(displayName string) {
	u.displayName = displayName
	u.touch()
}

func (u *User) SetExternalID(externalID uuid.UUID) {
	u.externalID = externalID
	u.touch()
}

// DisplayName falls back to the username.
func (u *User) DisplayName() string {
	if u.displayName != "" {
		return u.displayName
	}
	return u.username
}

func (u *User) linkable() {}

func (u *User) TypeName() string { return KindUser }

func (u *User) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer, domain.ShapeSummary}
}

func (u *User) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(u, target); err != nil {
		return nil, err
	}

	if target == domain.ShapeSummary {
		return summarize(u), nil
	}
	return u.toTransfer(), nil
}

func (u *User) toTransfer() *transfer.UserTransfer {
	return &transfer.UserTransfer{
		Record:      u.record(),
		Username:    u.username,
		Email:       u.email,
		DisplayName: u.displayName,
		ExternalID:  guidString(u.externalID),
	}
}
