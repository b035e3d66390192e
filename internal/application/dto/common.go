package dto

import "github.com/jhoicas/carrito-api/internal/domain"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  *int `query:"limit"`
	Offset *int `query:"offset"`
}

// Page paginación ya validada.
type Page struct {
	Limit  int
	Offset int
}

// Resolve aplica valores por defecto (offset=0, limit=10) y valida limit∈[1,100], offset>=0.
func (p PageRequest) Resolve() (Page, error) {
	out := Page{Limit: DefaultLimit}
	if p.Limit != nil {
		if *p.Limit < 1 || *p.Limit > MaxLimit {
			return Page{}, domain.ErrInvalidInput
		}
		out.Limit = *p.Limit
	}
	if p.Offset != nil {
		if *p.Offset < 0 {
			return Page{}, domain.ErrInvalidInput
		}
		out.Offset = *p.Offset
	}
	return out, nil
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
