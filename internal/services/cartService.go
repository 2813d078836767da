package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

type CartService struct {
	carts repository.CartStore
}

func NewCartService(carts repository.CartStore) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Add(ctx context.Context, item models.CartItem) (string, error) {
	if item.Email == "" {
		return "", fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.CreatedAt = time.Now()
	return s.carts.Insert(ctx, item)
}

func (s *CartService) List(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.carts.List(ctx, email)
}

func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1", apperr.ErrInvalidArgument)
	}
	return s.carts.UpdateQuantity(ctx, id, quantity)
}

// Remove deletes one cart item. Removing an absent item is not an error;
// the deleted count is 0.
func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	return s.carts.Delete(ctx, id)
}
