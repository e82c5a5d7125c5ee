package api

import (
	"context"
	"strconv"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

var _ ports.ReviewAPI = (*ReviewService)(nil)

// Ordenamiento por defecto de las reseñas: más recientes primero.
const (
	DefaultReviewSort      = "fechaCreacion"
	DefaultReviewDirection = "desc"
)

// ReviewService acceso al recurso /reseñas.
type ReviewService struct {
	client *Client
}

// NewReviewService construye el servicio.
func NewReviewService(client *Client) *ReviewService {
	return &ReviewService{client: client}
}

// ProductReviews lista las reseñas de un producto, paginadas y ordenadas.
func (s *ReviewService) ProductReviews(ctx context.Context, productID, page, size int, sort, direction string) (entity.ReviewPage, error) {
	if sort == "" {
		sort = DefaultReviewSort
	}
	if direction == "" {
		direction = DefaultReviewDirection
	}
	q := pageQuery(page, size)
	q.Set("sort", sort)
	q.Set("direction", direction)

	var out entity.ReviewPage
	err := s.client.Get(ctx, "/reseñas/producto/"+strconv.Itoa(productID), q, &out)
	return out, err
}

// UserReviews lista las reseñas escritas por un usuario.
func (s *ReviewService) UserReviews(ctx context.Context, userID, page, size int) (entity.ReviewPage, error) {
	var out entity.ReviewPage
	err := s.client.Get(ctx, "/reseñas/usuario/"+strconv.Itoa(userID), pageQuery(page, size), &out)
	return out, err
}

// Create crea una reseña.
func (s *ReviewService) Create(ctx context.Context, req entity.ReviewRequest) (entity.Review, error) {
	var out entity.Review
	err := s.client.Post(ctx, "/reseñas", nil, req, &out)
	return out, err
}

// Update modifica la calificación y el comentario de una reseña.
func (s *ReviewService) Update(ctx context.Context, reviewID, rating int, comment string) (entity.Review, error) {
	body := entity.ReviewUpdateRequest{
		Calificacion: rating,
		Comentario:   comment,
	}
	var out entity.Review
	err := s.client.Put(ctx, "/reseñas/"+strconv.Itoa(reviewID), nil, body, &out)
	return out, err
}

// Delete elimina una reseña.
func (s *ReviewService) Delete(ctx context.Context, reviewID int) error {
	return s.client.Delete(ctx, "/reseñas/"+strconv.Itoa(reviewID), nil, nil)
}
