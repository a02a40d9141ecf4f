package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedConversion   = errors.New("unsupported conversion")
	ErrMissingLinkedEntity     = errors.New("linked entity is missing")
	ErrMissingTypeTag          = errors.New("linked entity type is missing")
	ErrUnknownLinkedEntityType = errors.New("unknown linked entity type")
	ErrLinkedEntityCastFailed  = errors.New("linked entity cast failed")

	ErrInvalidField = errors.New("invalid field")
	ErrNilEntity    = errors.New("nil entity")
)

// ############################################################
// ############### REPRESENTAÇÕES (SHAPES) ####################
// ############################################################

// Shape identifica uma representação suportada por uma entidade.
type Shape string

const (
	// ShapeTransfer é o "irmão" de transporte da entidade (ex: Person -> PersonTransfer).
	ShapeTransfer Shape = "transfer"
	// ShapeSummary é a interface comum de transporte: id, tipo e nome de exibição.
	ShapeSummary Shape = "summary"
)

func (s Shape) String() string {
	return string(s)
}

// TransferSuffix is appended to a domain type's simple name to derive its transfer type name.
const TransferSuffix = "Transfer"

// TransferTypeName derives the transfer type name for a domain type name ("Person" -> "PersonTransfer").
func TransferTypeName(typeName string) string {
	return typeName + TransferSuffix
}

// ############################################################
// ################### ERROS DE CONVERSÃO #####################
// ############################################################

// UnsupportedConversionError is returned before any result is built when the
// requested shape is not one the source entity declares.
type UnsupportedConversionError struct {
	Source string
	Target Shape
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %q: %s", e.Source, e.Target, ErrUnsupportedConversion)
}

func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

// UnknownLinkedEntityTypeError carries the type name the registry could not resolve.
type UnknownLinkedEntityTypeError struct {
	TypeName string
	Cause    error
}

func (e *UnknownLinkedEntityTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownLinkedEntityType, e.TypeName)
}

func (e *UnknownLinkedEntityTypeError) Is(target error) bool {
	return target == ErrUnknownLinkedEntityType
}

func (e *UnknownLinkedEntityTypeError) Unwrap() error {
	return e.Cause
}

// LinkedEntityCastError preserves the failure raised while converting a linked entity.
type LinkedEntityCastError struct {
	TypeName string
	Target   string
	Cause    error
}

func (e *LinkedEntityCastError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s to %s", ErrLinkedEntityCastFailed, e.TypeName, e.Target)
	}
	return fmt.Sprintf("%s: %s to %s: %v", ErrLinkedEntityCastFailed, e.TypeName, e.Target, e.Cause)
}

func (e *LinkedEntityCastError) Is(target error) bool {
	return target == ErrLinkedEntityCastFailed
}

func (e *LinkedEntityCastError) Unwrap() error {
	return e.Cause
}

// FieldError reports a domain field that failed validation.
type FieldError struct {
	Entity string
	Field  string
	Value  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s %q", e.Entity, e.Field, ErrInvalidField, e.Value)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}
