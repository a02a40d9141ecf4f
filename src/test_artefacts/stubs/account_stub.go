package stubs

import (
	"organizer/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type AccountStub struct {
	id     int64
	name   string
	owners []entities.LinkedEntity
}

func NewAccountStub() AccountStub {
	return AccountStub{
		id:   RandomID(),
		name: gofakeit.AppName(),
	}
}

func (as AccountStub) WithID(id int64) AccountStub {
	as.id = id
	return as
}

// WithSubAccountsOwnedBy cria uma sub-conta por dono informado.
func (as AccountStub) WithSubAccountsOwnedBy(owners ...entities.LinkedEntity) AccountStub {
	as.owners = owners
	return as
}

func (as AccountStub) Get() *entities.Account {
	a, err := entities.NewAccount(as.id, as.name)
	if err != nil {
		panic(err)
	}

	for _, owner := range as.owners {
		s, err := entities.NewSubAccount(RandomID(), gofakeit.AppName(), owner)
		if err != nil {
			panic(err)
		}
		a.AddSubAccount(s)
	}

	return a
}
