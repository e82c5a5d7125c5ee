package entity

// Store tienda vendedora del catálogo.
type Store struct {
	ID          int          `json:"id,omitempty"`
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion"`
	LogoURL     string       `json:"logoUrl"`
	Propietario *UserSummary `json:"propietario,omitempty"`
	Activa      bool         `json:"activa"`
}

// StorePage página de tiendas.
type StorePage struct {
	Tiendas     []Store `json:"tiendas"`
	CurrentPage int     `json:"currentPage"`
	TotalItems  int     `json:"totalItems"`
	TotalPages  int     `json:"totalPages"`
}
