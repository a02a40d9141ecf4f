package stubs

import (
	"fmt"

	"organizer/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type UserStub struct {
	id          int64
	username    string
	email       string
	displayName string
	externalID  uuid.UUID
}

func NewUserStub() UserStub {
	username := fmt.Sprintf("user%d", gofakeit.Number(100, 999999))

	return UserStub{
		id:          RandomID(),
		username:    username,
		email:       username + "@example.com",
		displayName: gofakeit.Name(),
		externalID:  uuid.New(),
	}
}

func (us UserStub) WithID(id int64) UserStub {
	us.id = id
	return us
}

func (us UserStub) WithUsername(username string) UserStub {
	us.username = username
	return us
}

func (us UserStub) Get() *entities.User {
	u, err := entities.NewUser(us.id, us.username, us.email)
	if err != nil {
		panic(err)
	}
	u.SetDisplayName(us.displayName)
	u.SetExternalID(us.externalID)
	return u
}
