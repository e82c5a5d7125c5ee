package entity

import "github.com/shopspring/decimal"

func init() {
	// El backend intercambia montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product entrada del catálogo con referencias desnormalizadas a tienda y categoría.
type Product struct {
	ID                   int             `json:"id,omitempty"`
	Nombre               string          `json:"nombre"`
	Descripcion          string          `json:"descripcion"`
	Precio               decimal.Decimal `json:"precio"`
	Stock                int             `json:"stock"`
	ImagenURL            string          `json:"imagenUrl"`
	TiendaID             int             `json:"tiendaId,omitempty"`
	TiendaNombre         string          `json:"tiendaNombre,omitempty"`
	CategoriaID          int             `json:"categoriaId,omitempty"`
	CategoriaNombre      string          `json:"categoriaNombre,omitempty"`
	CalificacionPromedio float64         `json:"calificacionPromedio"`
	CantidadReseñas      int             `json:"cantidadReseñas"`
}

// ProductPage página de productos de los listados del catálogo.
type ProductPage struct {
	Productos   []Product `json:"productos"`
	CurrentPage int       `json:"currentPage"`
	TotalItems  int       `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
}
