package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrCompanyNameTaken     = errors.New("el nombre de la empresa ya está registrado")
	ErrProfileAlreadyExists = errors.New("el usuario ya tiene un perfil")
	ErrInvalidIdentifier    = errors.New("identificador fiscal inválido")
	ErrInvalidKind          = errors.New("tipo de cuenta inválido")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrProvisioningFailed   = errors.New("no se pudo aprovisionar la cuenta")
)
