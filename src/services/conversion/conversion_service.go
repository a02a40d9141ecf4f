package conversion

import (
	"fmt"
	"log/slog"
	"reflect"

	"organizer/src/domain"
	"organizer/src/domain/entities"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// ConversionService is the entry point used at transport boundaries to turn
// domain graphs into transfer graphs. It holds the registry built at startup
// and never changes it.
type ConversionService struct {
	logger   *slog.Logger
	registry *registry.Registry
}

func NewConversionService(logger *slog.Logger, reg *registry.Registry) *ConversionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ConversionService{
		logger:   logger,
		registry: reg,
	}
}

func (s *ConversionService) Registry() *registry.Registry {
	return s.registry
}

// Convert converts e to target. Nothing is returned alongside an error.
func (s *ConversionService) Convert(e entities.Convertible, target domain.Shape) (any, error) {
	if isNil(e) {
		return nil, fmt.Errorf("ConversionService.Convert - %w", domain.ErrNilEntity)
	}

	result, err := e.ConvertTo(s.registry, target)
	if err != nil {
		s.logger.Warn("conversion failed",
			"source", e.TypeName(),
			"id", e.GetID(),
			"target", target.String(),
			"error", err,
		)
		return nil, fmt.Errorf("ConversionService.Convert - failed to convert %s(%d) to %s: %w", e.TypeName(), e.GetID(), target, err)
	}

	s.logger.Debug("entity converted",
		"source", e.TypeName(),
		"id", e.GetID(),
		"target", target.String(),
		"result", fmt.Sprintf("%T", result),
	)

	return result, nil
}

// ToTransfer converts e to its transfer sibling.
func (s *ConversionService) ToTransfer(e entities.Convertible) (transfer.Entity, error) {
	result, err := s.Convert(e, domain.ShapeTransfer)
	if err != nil {
		return nil, err
	}

	t, ok := result.(transfer.Entity)
	if !ok {
		return nil, fmt.Errorf("ConversionService.ToTransfer - %s produced %T: %w", e.TypeName(), result, domain.ErrUnsupportedConversion)
	}

	return t, nil
}

// ConvertAll converts every item, keeping order and nil positions. It fails
// on the first error and then returns no results.
func (s *ConversionService) ConvertAll(items []entities.Convertible, target domain.Shape) ([]any, error) {
	out := make([]any, len(items))

	for i, item := range items {
		if isNil(item) {
			continue
		}

		result, err := s.Convert(item, target)
		if err != nil {
			return nil, fmt.Errorf("ConversionService.ConvertAll - item %d: %w", i, err)
		}
		out[i] = result
	}

	return out, nil
}

// ConvertTo is Convert with the result typed as T.
func ConvertTo[T any](s *ConversionService, e entities.Convertible, target domain.Shape) (T, error) {
	var zero T

	result, err := s.Convert(e, target)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("ConversionService.ConvertTo - %s to %s produced %T, not %s: %w",
			e.TypeName(), target, result, reflect.TypeFor[T](), domain.ErrUnsupportedConversion)
	}

	return typed, nil
}

// ResolveLinkedEntity resolves ref to T against the service registry.
func ResolveLinkedEntity[T any](s *ConversionService, ref entities.LinkedEntity) (T, error) {
	v, err := entities.ResolveLinkedEntity[T](s.registry, ref)
	if err != nil {
		s.logger.Warn("linked entity resolution failed",
			"reference", ref.String(),
			"target", reflect.TypeFor[T]().String(),
			"error", err,
		)
		return v, fmt.Errorf("ConversionService.ResolveLinkedEntity - %w", err)
	}

	return v, nil
}

func isNil(e entities.Convertible) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
