package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidDate       = errors.New("fecha inválida, formato esperado YYYY-MM-DD")
	ErrInvalidSale       = errors.New("venta inválida")
	ErrDimensionConflict = errors.New("atributos de dimensión inconsistentes")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
	ErrDuplicate         = errors.New("recurso duplicado")
)
