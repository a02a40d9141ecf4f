package entities

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"organizer/src/domain"
)

const (
	phonePattern    = `^\+?[0-9(][0-9 ().\-]{5,22}[0-9]$`
	usernamePattern = `^[A-Za-z0-9][A-Za-z0-9._\-]{2,31}$`
)

func requireText(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return trimmed, nil
}

func validateEmail(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !govalidator.IsEmail(trimmed) {
		return "", &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return trimmed, nil
}

func validatePhone(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !govalidator.Matches(trimmed, phonePattern) {
		return "", &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return trimmed, nil
}

func validateUsername(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !govalidator.Matches(trimmed, usernamePattern) {
		return "", &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return trimmed, nil
}

// validateOptionalURL aceita vazio.
func validateOptionalURL(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !govalidator.IsURL(trimmed) {
		return "", &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return trimmed, nil
}

// parseOptionalGUID accepts "" as uuid.Nil.
func parseOptionalGUID(entity, field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, nil
	}
	if !govalidator.IsUUID(value) {
		return uuid.Nil, &domain.FieldError{Entity: entity, Field: field, Value: value}
	}
	return uuid.Parse(value)
}

func guidString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
