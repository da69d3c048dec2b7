package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CartService manages per-user staging carts. Nothing here touches the
// stock ledger: availability answers are snapshots that checkout
// re-validates under locks.
type CartService struct {
	cartRepo    ports.CartRepo
	productRepo ports.ProductRepo
	logger      logger.Logger
}

func NewCartService(cartRepo ports.CartRepo, productRepo ports.ProductRepo, logger logger.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// SetItem adds the product to the cart or replaces its quantity and
// notes if it is already there.
func (s *CartService) SetItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	if item.ProductID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	if item.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	if _, err := s.productRepo.GetByID(ctx, item.ProductID); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	replaced := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		cart.Items = append(cart.Items, item)
	}
	cart.UpdatedAt = time.Now().UTC()

	if err = s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

// RemoveItem drops the product from the cart. Removing a product that
// is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(cart.Items) {
		return cart, nil
	}
	cart.Items = kept
	cart.UpdatedAt = time.Now().UTC()

	if err = s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Validate checks every cart line against the current catalog and
// stock snapshot. The verdict is advisory: nothing is reserved, and a
// line can become unavailable between this call and checkout.
func (s *CartService) Validate(ctx context.Context, userID string) (*domain.CartValidation, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}

	validation := &domain.CartValidation{OK: true}
	for _, it := range cart.Items {
		line := domain.CartLine{Item: it}

		p, ok := products[it.ProductID]
		switch {
		case !ok:
			line.Reason = "product no longer exists"
		case p.Status != domain.ProductStatusActive:
			line.PriceCents = p.PriceCents
			line.Reason = "product is out of stock"
		case p.Quantity < it.Quantity:
			line.PriceCents = p.PriceCents
			line.Reason = fmt.Sprintf("only %d left in stock", p.Quantity)
		default:
			line.PriceCents = p.PriceCents
			line.Available = true
		}

		if line.Available {
			validation.TotalCents += line.PriceCents * int64(it.Quantity)
		} else {
			validation.OK = false
		}
		validation.Lines = append(validation.Lines, line)
	}

	s.logger.Debug("cart validated",
		logger.String("user_id", userID),
		logger.Int("lines", len(validation.Lines)),
		logger.Any("ok", validation.OK),
	)

	return validation, nil
}
