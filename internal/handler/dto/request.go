package dto

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"gte=0"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
}

type CreateEventRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	OrganizerID     string `json:"organizer_id" binding:"required,uuid"`
	StartsAt        string `json:"starts_at" binding:"required"`
	EndsAt          string `json:"ends_at" binding:"required"`
	MaxParticipants *int   `json:"max_participants"`
}

type RegisterRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CancelRegistrationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type AttendanceRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
	UserID      string `json:"user_id" binding:"required,uuid"`
	Outcome     string `json:"outcome" binding:"required"`
}

type FeedbackRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SetCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Notes     string `json:"notes"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID             string             `json:"user_id" binding:"required,uuid"`
	Items              []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress    string             `json:"shipping_address" binding:"required"`
	ExpectedTotalCents int64              `json:"expected_total_cents" binding:"gte=0"`
	CardToken          string             `json:"card_token"`
}

type CancelOrderRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
