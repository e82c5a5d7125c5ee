package entity

// Review reseña de un producto escrita por un usuario.
type Review struct {
	ID            int             `json:"id,omitempty"`
	Calificacion  int             `json:"calificacion"`
	Comentario    string          `json:"comentario"`
	Usuario       *UserSummary    `json:"usuario,omitempty"`
	Producto      *ProductSummary `json:"producto,omitempty"`
	FechaCreacion string          `json:"fechaCreacion,omitempty"`
}

// UserSummary referencia resumida a un usuario dentro de una reseña.
type UserSummary struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre,omitempty"`
	Apellido string `json:"apellido,omitempty"`
}

// ProductSummary referencia resumida a un producto dentro de una reseña.
type ProductSummary struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// ReviewRequest cuerpo para crear una reseña.
type ReviewRequest struct {
	Calificacion int            `json:"calificacion"`
	Comentario   string         `json:"comentario"`
	Usuario      UserSummary    `json:"usuario"`
	Producto     ProductSummary `json:"producto"`
}

// ReviewUpdateRequest cuerpo para modificar una reseña existente.
type ReviewUpdateRequest struct {
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario"`
}

// ReviewPage página de reseñas con el promedio de calificación del recurso.
type ReviewPage struct {
	Reseñas              []Review `json:"reseñas"`
	CurrentPage          int      `json:"currentPage"`
	TotalItems           int      `json:"totalItems"`
	TotalPages           int      `json:"totalPages"`
	CalificacionPromedio float64  `json:"calificacionPromedio,omitempty"`
}
