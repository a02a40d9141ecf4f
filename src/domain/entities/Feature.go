package entities

import (
	"fmt"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Feature é um toggle de funcionalidade de um projeto.
type Feature struct {
	Base
	featureName string
	isEnabled   bool
	description string
}

func NewFeature(id int64, featureName string, isEnabled bool) (*Feature, error) {
	base, err := newBase("Feature", id)
	if err != nil {
		return nil, err
	}

	name, err := requireText("Feature", "featureName", featureName)
	if err != nil {
		return nil, err
	}

	return &Feature{Base: base, featureName: name, isEnabled: isEnabled}, nil
}

// NewFeatureFromTransfer rebuilds a Feature from its wire shape.
func NewFeatureFromTransfer(t *transfer.FeatureTransfer) (*Feature, error) {
	if t == nil {
		return nil, fmt.Errorf("NewFeatureFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Feature", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	name, err := requireText("Feature", "featureName", t.FeatureName)
	if err != nil {
		return nil, err
	}

	return &Feature{
		Base:        base,
		featureName: name,
		isEnabled:   t.IsEnabled,
		description: t.Description,
	}, nil
}

func (f *Feature) FeatureName() string { return f.featureName }
func (f *Feature) IsEnabled() bool     { return f.isEnabled }
func (f *Feature) Description() string { return f.description }

func (f *Feature) SetFeatureName(name string) error {
	n, err := requireText("Feature", "featureName", name)
	if err != nil {
		return err
	}
	f.featureName = n
	f.touch()
	return nil
}

func (f *Feature) SetEnabled(enabled bool) {
	f.isEnabled = enabled
	f.touch()
}

func (f *Feature) SetDescription(description string) {
	f.description = description
	f.touch()
}

func (f *Feature) TypeName() string { return "Feature" }

func (f *Feature) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (f *Feature) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(f, target); err != nil {
		return nil, err
	}
	return f.toTransfer(), nil
}

func (f *Feature) toTransfer() *transfer.FeatureTransfer {
	return &transfer.FeatureTransfer{
		Record:      f.record(),
		FeatureName: f.featureName,
		IsEnabled:   f.isEnabled,
		Description: f.description,
	}
}
