package stubs

import (
	"organizer/src/domain/entities"
	"organizer/src/domain/transfer"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-faker/faker/v4"
)

type FeatureStub struct {
	id          int64
	featureName string
	isEnabled   bool
	description string
}

func NewFeatureStub() FeatureStub {
	return FeatureStub{
		id:          RandomID(),
		featureName: gofakeit.BuzzWord(),
		isEnabled:   gofakeit.Bool(),
		description: gofakeit.Sentence(5),
	}
}

func (fs FeatureStub) WithID(id int64) FeatureStub {
	fs.id = id
	return fs
}

func (fs FeatureStub) WithFeatureName(name string) FeatureStub {
	fs.featureName = name
	return fs
}

func (fs FeatureStub) WithEnabled(enabled bool) FeatureStub {
	fs.isEnabled = enabled
	return fs
}

func (fs FeatureStub) Get() *entities.Feature {
	f, err := entities.NewFeature(fs.id, fs.featureName, fs.isEnabled)
	if err != nil {
		panic(err)
	}
	f.SetDescription(fs.description)
	return f
}

// NewFeatureTransfer preenche um FeatureTransfer aleatório que passa na validação do domínio.
func NewFeatureTransfer() *transfer.FeatureTransfer {
	t := &transfer.FeatureTransfer{}
	if err := faker.FakeData(t); err != nil {
		panic(err)
	}

	t.ID = RandomID()
	if t.FeatureName == "" {
		t.FeatureName = gofakeit.BuzzWord()
	}
	if t.UpdatedAt != nil && t.UpdatedAt.Before(t.CreatedAt) {
		u := t.CreatedAt
		t.UpdatedAt = &u
	}

	return t
}
