package stubs

import (
	"organizer/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type AddressStub struct {
	id     int64
	fields entities.AddressFields
}

func NewAddressStub() AddressStub {
	return AddressStub{
		id: RandomID(),
		fields: entities.AddressFields{
			Street:      gofakeit.Street(),
			City:        gofakeit.City(),
			StateCode:   gofakeit.StateAbr(),
			PostalCode:  gofakeit.Zip(),
			CountryCode: "US",
		},
	}
}

func (as AddressStub) WithID(id int64) AddressStub {
	as.id = id
	return as
}

func (as AddressStub) WithCity(city string) AddressStub {
	as.fields.City = city
	return as
}

func (as AddressStub) WithCountryCode(code string) AddressStub {
	as.fields.CountryCode = code
	return as
}

func (as AddressStub) Get() *entities.Address {
	a, err := entities.NewAddress(as.id, as.fields)
	if err != nil {
		panic(err)
	}
	return a
}
