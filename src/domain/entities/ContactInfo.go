package entities

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// ############################################################
// ########################## EMAIL ###########################
// ############################################################

type Email struct {
	Base
	address   string
	label     string
	isPrimary bool
}

func NewEmail(id int64, address string) (*Email, error) {
	base, err := newBase("Email", id)
	if err != nil {
		return nil, err
	}

	addr, err := validateEmail("Email", "address", address)
	if err != nil {
		return nil, err
	}

	return &Email{Base: base, address: addr}, nil
}

func NewEmailFromTransfer(t *transfer.EmailTransfer) (*Email, error) {
	if t == nil {
		return nil, fmt.Errorf("NewEmailFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Email", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	addr, err := validateEmail("Email", "address", t.Address)
	if err != nil {
		return nil, err
	}

	return &Email{Base: base, address: addr, label: t.Label, isPrimary: t.IsPrimary}, nil
}

func (e *Email) Address() string { return e.address }
func (e *Email) Label() string   { return e.label }
func (e *Email) IsPrimary() bool { return e.isPrimary }

func (e *Email) SetAddress(address string) error {
	addr, err := validateEmail("Email", "address", address)
	if err != nil {
		return err
	}
	e.address = addr
	e.touch()
	return nil
}

func (e *Email) SetLabel(label string) {
	e.label = label
	e.touch()
}

func (e *Email) SetPrimary(primary bool) {
	e.isPrimary = primary
	e.touch()
}

func (e *Email) TypeName() string { return "Email" }

func (e *Email) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (e *Email) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(e, target); err != nil {
		return nil, err
	}
	return e.toTransfer(), nil
}

func (e *Email) toTransfer() *transfer.EmailTransfer {
	return &transfer.EmailTransfer{
		Record:    e.record(),
		Address:   e.address,
		Label:     e.label,
		IsPrimary: e.isPrimary,
	}
}

// ############################################################
// ######################### TELEFONE #########################
// ############################################################

type Phone struct {
	Base
	number string
	label  string
}

func NewPhone(id int64, number string) (*Phone, error) {
	base, err := newBase("Phone", id)
	if err != nil {
		return nil, err
	}

	n, err := validatePhone("Phone", "number", number)
	if err != nil {
		return nil, err
	}

	return &Phone{Base: base, number: n}, nil
}

func NewPhoneFromTransfer(t *transfer.PhoneTransfer) (*Phone, error) {
	if t == nil {
		return nil, fmt.Errorf("NewPhoneFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Phone", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	n, err := validatePhone("Phone", "number", t.Number)
	if err != nil {
		return nil, err
	}

	return &Phone{Base: base, number: n, label: t.Label}, nil
}

func (p *Phone) Number() string { return p.number }
func (p *Phone) Label() string  { return p.label }

func (p *Phone) SetNumber(number string) error {
	n, err := validatePhone("Phone", "number", number)
	if err != nil {
		return err
	}
	p.number = n
	p.touch()
	return nil
}

func (p *Phone) SetLabel(label string) {
	p.label = label
	p.touch()
}

func (p *Phone) TypeName() string { return "Phone" }

func (p *Phone) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (p *Phone) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(p, target); err != nil {
		return nil, err
	}
	return p.toTransfer(), nil
}

func (p *Phone) toTransfer() *transfer.PhoneTransfer {
	return &transfer.PhoneTransfer{
		Record: p.record(),
		Number: p.number,
		Label:  p.label,
	}
}

// ############################################################
// ######################### ENDEREÇO #########################
// ############################################################

type Address struct {
	Base
	street      string
	city        string
	stateCode   string
	postalCode  string
	countryCode string
}

// AddressFields agrupa os campos de um endereço para construção.
type AddressFields struct {
	Street      string
	City        string
	StateCode   string
	PostalCode  string
	CountryCode string
}

func NewAddress(id int64, fields AddressFields) (*Address, error) {
	base, err := newBase("Address", id)
	if err != nil {
		return nil, err
	}
	return buildAddress(base, fields)
}

func NewAddressFromTransfer(t *transfer.AddressTransfer) (*Address, error) {
	if t == nil {
		return nil, fmt.Errorf("NewAddressFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Address", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return buildAddress(base, AddressFields{
		Street:      t.Street,
		City:        t.City,
		StateCode:   t.StateCode,
		PostalCode:  t.PostalCode,
		CountryCode: t.CountryCode,
	})
}

func buildAddress(base Base, fields AddressFields) (*Address, error) {
	street, err := requireText("Address", "street", fields.Street)
	if err != nil {
		return nil, err
	}

	city, err := requireText("Address", "city", fields.City)
	if err != nil {
		return nil, err
	}

	country, err := normalizeCountry(fields.CountryCode)
	if err != nil {
		return nil, err
	}

	return &Address{
		Base:        base,
		street:      street,
		city:        city,
		stateCode:   strings.ToUpper(strings.TrimSpace(fields.StateCode)),
		postalCode:  strings.TrimSpace(fields.PostalCode),
		countryCode: country,
	}, nil
}

func normalizeCountry(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !govalidator.IsISO3166Alpha2(c) {
		return "", &domain.FieldError{Entity: "Address", Field: "countryCode", Value: code}
	}
	return c, nil
}

func (a *Address) Street() string      { return a.street }
func (a *Address) City() string        { return a.city }
func (a *Address) StateCode() string   { return a.stateCode }
func (a *Address) PostalCode() string  { return a.postalCode }
func (a *Address) CountryCode() string { return a.countryCode }

func (a *Address) SetStreet(street string) error {
	s, err := requireText("Address", "street", street)
	if err != nil {
		return err
	}
	a.street = s
	a.touch()
	return nil
}

func (a *Address) SetCity(city string) error {
	c, err := requireText("Address", "city", city)
	if err != nil {
		return err
	}
	a.city = c
	a.touch()
	return nil
}

func (a *Address) SetStateCode(stateCode string) {
	a.stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	a.touch()
}

func (a *Address) SetPostalCode(postalCode string) {
	a.postalCode = strings.TrimSpace(postalCode)
	a.touch()
}

func (a *Address) SetCountryCode(countryCode string) error {
	c, err := normalizeCountry(countryCode)
	if err != nil {
		return err
	}
	a.countryCode = c
	a.touch()
	return nil
}

func (a *Address) TypeName() string { return "Address" }

func (a *Address) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (a *Address) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(a, target); err != nil {
		return nil, err
	}
	return a.toTransfer(), nil
}

func (a *Address) toTransfer() *transfer.AddressTransfer {
	return &transfer.AddressTransfer{
		Record:      a.record(),
		Street:      a.street,
		City:        a.city,
		StateCode:   a.stateCode,
		PostalCode:  a.postalCode,
		CountryCode: a.countryCode,
	}
}
