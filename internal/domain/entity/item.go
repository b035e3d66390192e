package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Size talla de un artículo. Conjunto cerrado.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Sizes devuelve todas las tallas válidas en orden.
func Sizes() []Size {
	return []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}
}

// ParseSize valida una talla recibida como texto (sensible a mayúsculas).
func ParseSize(s string) (Size, bool) {
	for _, sz := range Sizes() {
		if string(sz) == s {
			return sz, true
		}
	}
	return "", false
}

// Valid indica si la talla pertenece al conjunto permitido.
func (s Size) Valid() bool {
	_, ok := ParseSize(string(s))
	return ok
}

// Item representa una variante de producto en el catálogo.
// Solo Stock cambia tras la carga inicial, y únicamente vía reservas del carrito.
type Item struct {
	ID    string
	Name  string
	Color string
	Size  Size
	Price decimal.Decimal
	Stock int // unidades disponibles (no reservadas por el carrito)
}

// Validate comprueba las invariantes de un artículo recién generado.
func (i *Item) Validate() bool {
	if i == nil || strings.TrimSpace(i.ID) == "" {
		return false
	}
	return i.Stock >= 0 && !i.Price.IsNegative() && i.Size.Valid()
}

// ItemFilter filtros opcionales del catálogo; los campos vacíos/nil no filtran.
type ItemFilter struct {
	Name     string           // subcadena, sin distinguir mayúsculas
	Color    string           // igualdad, sin distinguir mayúsculas
	Size     Size             // igualdad exacta
	MaxPrice *decimal.Decimal // cota superior inclusiva
}
