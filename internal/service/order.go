package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OrderService struct {
	orderRepo  ports.OrderRepo
	userRepo   ports.UserRepo
	cartRepo   ports.CartRepo
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     logger.Logger
	paymentTTL time.Duration
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	userRepo ports.UserRepo,
	cartRepo ports.CartRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	logger logger.Logger,
	paymentTTL time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger,
		paymentTTL: paymentTTL,
	}
}

// Create runs the whole checkout: structural validation first, then
// the atomic reserve-and-persist transaction, then the charge. A
// failed charge cancels the order, which puts every reserved unit back
// on the ledger before the error is returned.
func (s *OrderService) Create(ctx context.Context, userID string, input domain.CreateOrderInput) (*domain.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.orderRepo.CreateWithItems(ctx, order, input.ExpectedTotalCents); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("user_id", userID),
		logger.Int64("total_cents", order.TotalCents),
	)

	if err = s.cartRepo.Clear(ctx, userID); err != nil {
		// Best effort: a stale cart is a nuisance, not a correctness problem.
		s.logger.Warn("clear cart after checkout",
			logger.String("user_id", userID),
			logger.Any("error", err),
		)
	}

	ref, err := s.gateway.Charge(ctx, order.ID, order.TotalCents, input.CardToken)
	if err != nil {
		s.logger.Warn("charge failed, cancelling order",
			logger.String("order_id", order.ID),
			logger.Any("error", err),
		)

		if _, cerr := s.orderRepo.Cancel(ctx, order.ID); cerr != nil {
			s.logger.Error("cancel order after failed charge",
				logger.String("order_id", order.ID),
				logger.Any("error", cerr),
			)
		}

		go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.Notification{
			Type:     domain.NotificationPaymentDeclined,
			Title:    "Payment declined",
			Message:  "Your payment was declined and the order was cancelled. No stock is being held.",
			Metadata: map[string]string{"order_id": order.ID},
		})

		if errors.Is(err, domain.ErrPaymentDeclined) {
			return nil, err
		}
		return nil, fmt.Errorf("charge order: %w", err)
	}

	if err = s.orderRepo.MarkPaid(ctx, order.ID, ref); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	order.Status = domain.OrderStatusPaid
	order.PaymentStatus = domain.PaymentStatusCompleted
	order.PaymentRef = &ref

	s.logger.Info("order paid",
		logger.String("order_id", order.ID),
		logger.String("payment_ref", ref),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.Notification{
		Type:     domain.NotificationOrderCreated,
		Title:    "Order confirmed",
		Message:  fmt.Sprintf("Your order is paid and confirmed. Total: %.2f.", float64(order.TotalCents)/100),
		Metadata: map[string]string{"order_id": order.ID},
	})

	return order, nil
}

func validateOrderInput(input domain.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping address is required", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(input.Items))
	for _, it := range input.Items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: item is missing a product id", domain.ErrValidation)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for product %s must be positive", domain.ErrValidation, it.ProductID)
		}
		if _, dup := seen[it.ProductID]; dup {
			return fmt.Errorf("%w: product %s appears more than once", domain.ErrValidation, it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
	}

	return nil
}

// Cancel cancels the caller's own order and releases its stock.
// Cancelling an already cancelled order is a no-op.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order belongs to another user", domain.ErrAccessDenied)
	}

	cancelled, err := s.orderRepo.Cancel(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.logger.Info("order cancelled",
		logger.String("order_id", orderID),
		logger.String("user_id", userID),
	)

	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.Notification{
			Type:     domain.NotificationOrderCancelled,
			Title:    "Order cancelled",
			Message:  "Your order was cancelled and the items were returned to stock.",
			Metadata: map[string]string{"order_id": orderID},
		})
	}

	return cancelled, nil
}

func (s *OrderService) Get(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order belongs to another user", domain.ErrAccessDenied)
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CancelExpired sweeps pending orders older than the payment TTL and
// cancels them one by one, returning how many were cancelled. A
// failure on one order is logged and does not stop the sweep.
func (s *OrderService) CancelExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.paymentTTL)

	ids, err := s.orderRepo.ListExpiredPending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list expired orders: %w", err)
	}

	cancelled := 0
	for _, id := range ids {
		order, err := s.orderRepo.Cancel(ctx, id)
		if err != nil {
			s.logger.Error("cancel expired order",
				logger.String("order_id", id),
				logger.Any("error", err),
			)
			continue
		}
		cancelled++

		s.logger.Info("expired order cancelled",
			logger.String("order_id", id),
			logger.String("user_id", order.UserID),
		)

		if user, uerr := s.userRepo.GetByID(ctx, order.UserID); uerr == nil {
			go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.Notification{
				Type:     domain.NotificationOrderCancelled,
				Title:    "Order expired",
				Message:  "Your order was not paid in time and has been cancelled. The items were returned to stock.",
				Metadata: map[string]string{"order_id": id},
			})
		}
	}

	return cancelled, nil
}
