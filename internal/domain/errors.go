package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrReceptionistNotFound = errors.New("receptionist not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicate            = errors.New("duplicate resource")
	ErrUnauthorized         = errors.New("invalid credentials")
)
