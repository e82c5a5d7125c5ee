package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// ReviewsScreen reseñas de un producto: listado paginado y alta, edición y
// borrado de la reseña propia.
type ReviewsScreen struct {
	screenState
	reviews ports.ReviewAPI
	users   *repository.UserRepository

	pageMu    sync.Mutex
	productID int
	page      *entity.ReviewPage
}

// NewReviewsScreen construye la pantalla.
func NewReviewsScreen(reviews ports.ReviewAPI, users *repository.UserRepository) *ReviewsScreen {
	return &ReviewsScreen{reviews: reviews, users: users}
}

// Load carga una página de reseñas del producto, más recientes primero.
func (s *ReviewsScreen) Load(ctx context.Context, productID, page int) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		resp, err := s.reviews.ProductReviews(ctx, productID, page, 0, "", "")
		if err != nil {
			return err
		}
		s.pageMu.Lock()
		s.productID = productID
		s.page = &resp
		s.pageMu.Unlock()
		return nil
	}()

	s.finish(err)
	return err
}

// Submit crea una reseña del producto cargado y recarga la primera página.
func (s *ReviewsScreen) Submit(ctx context.Context, rating int, comment string) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		if rating < 1 || rating > 5 {
			return domain.ErrCalificacion
		}
		if strings.TrimSpace(comment) == "" {
			return domain.ErrCamposIncompletos
		}

		s.pageMu.Lock()
		productID := s.productID
		s.pageMu.Unlock()

		_, err := s.reviews.Create(ctx, entity.ReviewRequest{
			Calificacion: rating,
			Comentario:   comment,
			Usuario:      entity.UserSummary{ID: user.ID, Nombre: user.Nombre, Apellido: user.Apellido},
			Producto:     entity.ProductSummary{ID: productID},
		})
		if err != nil {
			return err
		}
		return s.reload(ctx, productID)
	}()

	s.finish(err)
	return err
}

// Edit modifica una reseña propia y recarga la página.
func (s *ReviewsScreen) Edit(ctx context.Context, reviewID, rating int, comment string) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		if rating < 1 || rating > 5 {
			return domain.ErrCalificacion
		}
		if _, err := s.reviews.Update(ctx, reviewID, rating, comment); err != nil {
			return err
		}
		s.pageMu.Lock()
		productID := s.productID
		s.pageMu.Unlock()
		return s.reload(ctx, productID)
	}()

	s.finish(err)
	return err
}

// Delete elimina una reseña propia y recarga la página.
func (s *ReviewsScreen) Delete(ctx context.Context, reviewID int) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		if err := s.reviews.Delete(ctx, reviewID); err != nil {
			return err
		}
		s.pageMu.Lock()
		productID := s.productID
		s.pageMu.Unlock()
		return s.reload(ctx, productID)
	}()

	s.finish(err)
	return err
}

// Page devuelve la última página de reseñas cargada (nil si no hay).
func (s *ReviewsScreen) Page() *entity.ReviewPage {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	return s.page
}

func (s *ReviewsScreen) reload(ctx context.Context, productID int) error {
	resp, err := s.reviews.ProductReviews(ctx, productID, 0, 0, "", "")
	if err != nil {
		return err
	}
	s.pageMu.Lock()
	s.page = &resp
	s.pageMu.Unlock()
	return nil
}
