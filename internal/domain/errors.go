package domain

import "errors"

// Errores de dominio (sin dependencias externas). Toda operación de servicio o
// de almacenamiento devuelve uno de estos errores envuelto con %w; el caller
// decide la rama con errors.Is en lugar de mezclar booleanos con excepciones.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrValidation    = errors.New("entrada inválida")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrPersistence   = errors.New("fallo de persistencia")
	ErrMissingConfig = errors.New("configuración ausente")
	ErrUnauthorized  = errors.New("no autorizado")
)
