package entities

import (
	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Contact is an address-book entry pointing at a person, organization or user.
type Contact struct {
	Base
	nickname string
	notes    string
	favorite bool
	subject  LinkedEntity
}

func NewContact(id int64, subject LinkedEntity) (*Contact, error) {
	base, err := newBase("Contact", id)
	if err != nil {
		return nil, err
	}
	return &Contact{Base: base, subject: subject}, nil
}

func (c *Contact) Nickname() string      { return c.nickname }
func (c *Contact) Notes() string         { return c.notes }
func (c *Contact) Favorite() bool        { return c.favorite }
func (c *Contact) Subject() LinkedEntity { return c.subject }

func (c *Contact) SetNickname(nickname string) {
	c.nickname = nickname
	c.touch()
}

func (c *Contact) SetNotes(notes string) {
	c.notes = notes
	c.touch()
}

func (c *Contact) SetFavorite(favorite bool) {
	c.favorite = favorite
	c.touch()
}

func (c *Contact) SetSubject(subject LinkedEntity) {
	c.subject = subject
	c.touch()
}

func (c *Contact) TypeName() string { return "Contact" }

func (c *Contact) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (c *Contact) ConvertTo(reg *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(c, target); err != nil {
		return nil, err
	}

	subject, err := linkedToTransfer(reg, c.subject)
	if err != nil {
		return nil, err
	}

	return &transfer.ContactTransfer{
		Record:          c.record(),
		LinkedEntityRef: subject,
		Nickname:        c.nickname,
		Notes:           c.notes,
		Favorite:        c.favorite,
	}, nil
}
