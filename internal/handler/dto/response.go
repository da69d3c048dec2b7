package dto

import (
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	OrganizerID     string `json:"organizer_id"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	MaxParticipants *int   `json:"max_participants,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event           EventResponse `json:"event"`
	ConfirmedCount  int           `json:"confirmed_count"`
	WaitlistedCount int           `json:"waitlisted_count"`
	AvailableSeats  *int          `json:"available_seats,omitempty"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
	AttendedAt   string `json:"attended_at,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
	Rating       *int   `json:"rating,omitempty"`
}

type CancelRegistrationResponse struct {
	Cancelled RegistrationResponse  `json:"cancelled"`
	Promoted  *RegistrationResponse `json:"promoted,omitempty"`
}

type OrderItemResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	TotalCents      int64               `json:"total_cents"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentRef      *string             `json:"payment_ref,omitempty"`
	ShippingAddress string              `json:"shipping_address"`
	CreatedAt       string              `json:"created_at"`
}

type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

type CartResponse struct {
	UserID string             `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
}

type CartLineResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

type CartValidationResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalCents int64              `json:"total_cents"`
	OK         bool               `json:"ok"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Quantity:    p.Quantity,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		OrganizerID:     e.OrganizerID,
		StartsAt:        e.StartsAt.Format(time.RFC3339),
		EndsAt:          e.EndsAt.Format(time.RFC3339),
		MaxParticipants: e.MaxParticipants,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		Event:           ToEventResponse(&d.Event),
		ConfirmedCount:  d.ConfirmedCount,
		WaitlistedCount: d.WaitlistedCount,
	}
	if d.Event.MaxParticipants != nil {
		seats := *d.Event.MaxParticipants - d.ConfirmedCount
		if seats < 0 {
			seats = 0
		}
		resp.AvailableSeats = &seats
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
		Rating:       r.Rating,
	}
	if r.AttendedAt != nil {
		resp.AttendedAt = r.AttendedAt.Format(time.RFC3339)
	}
	if r.Feedback != nil {
		resp.Feedback = *r.Feedback
	}
	return resp
}

func ToCancelRegistrationResponse(res *domain.CancelResult) CancelRegistrationResponse {
	resp := CancelRegistrationResponse{
		Cancelled: ToRegistrationResponse(res.Cancelled),
	}
	if res.Promoted != nil {
		promoted := ToRegistrationResponse(res.Promoted)
		resp.Promoted = &promoted
	}
	return resp
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
		})
	}

	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalCents:      o.TotalCents,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentRef:      o.PaymentRef,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

func ToCartResponse(c *domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
		})
	}
	return CartResponse{UserID: c.UserID, Items: items}
}

func ToCartValidationResponse(v *domain.CartValidation) CartValidationResponse {
	lines := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:  l.Item.ProductID,
			Quantity:   l.Item.Quantity,
			PriceCents: l.PriceCents,
			Available:  l.Available,
			Reason:     l.Reason,
		})
	}
	return CartValidationResponse{Lines: lines, TotalCents: v.TotalCents, OK: v.OK}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
