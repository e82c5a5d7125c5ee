package ui

import (
	"context"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// OrderHistoryScreen historial de pedidos del usuario, construido desde el
// historial de pagos del backend.
type OrderHistoryScreen struct {
	screenState
	payments ports.PaymentAPI
	users    *repository.UserRepository

	historyMu sync.Mutex
	history   *entity.PaymentHistory
}

// NewOrderHistoryScreen construye la pantalla.
func NewOrderHistoryScreen(payments ports.PaymentAPI, users *repository.UserRepository) *OrderHistoryScreen {
	return &OrderHistoryScreen{payments: payments, users: users}
}

// Load obtiene el historial de pagos del usuario en sesión.
func (s *OrderHistoryScreen) Load(ctx context.Context) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		history, err := s.payments.History(ctx, user.ID)
		if err != nil {
			return err
		}
		s.historyMu.Lock()
		s.history = &history
		s.historyMu.Unlock()
		return nil
	}()

	s.finish(err)
	return err
}

// RequestRefund solicita el reembolso de un pago y recarga el historial.
func (s *OrderHistoryScreen) RequestRefund(ctx context.Context, paymentID int, reason string) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		if reason == "" {
			return domain.ErrCamposIncompletos
		}
		if _, err := s.payments.Refund(ctx, paymentID, reason); err != nil {
			return err
		}
		history, err := s.payments.History(ctx, user.ID)
		if err != nil {
			return err
		}
		s.historyMu.Lock()
		s.history = &history
		s.historyMu.Unlock()
		return nil
	}()

	s.finish(err)
	return err
}

// History devuelve el último historial cargado (nil si no se ha cargado).
func (s *OrderHistoryScreen) History() *entity.PaymentHistory {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	return s.history
}
