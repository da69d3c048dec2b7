package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/handler/dto"
	hmocks "github.com/ikaros55439147/craft-booking/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	product      *hmocks.MockProductSvc
	event        *hmocks.MockEventSvc
	registration *hmocks.MockRegistrationSvc
	order        *hmocks.MockOrderSvc
	cart         *hmocks.MockCartSvc
	user         *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		product:      hmocks.NewMockProductSvc(t),
		event:        hmocks.NewMockEventSvc(t),
		registration: hmocks.NewMockRegistrationSvc(t),
		order:        hmocks.NewMockOrderSvc(t),
		cart:         hmocks.NewMockCartSvc(t),
		user:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.product, m.event, m.registration, m.order, m.cart, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.POST("/events/:id/attendance", h.MarkAttendance)
		api.POST("/events/:id/feedback", h.SubmitFeedback)
		api.GET("/events/:id/registrations", h.ListRegistrations)
		api.GET("/events/:id/registrations/:user_id", h.GetRegistration)

		api.POST("/orders", h.CreateOrder)
		api.POST("/orders/:id/cancel", h.CancelOrder)
		api.GET("/orders/:id", h.GetOrder)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/orders", h.GetUserOrders)

		api.GET("/users/:id/cart", h.GetCart)
		api.PUT("/users/:id/cart/items", h.SetCartItem)
		api.DELETE("/users/:id/cart/items/:product_id", h.RemoveCartItem)
		api.DELETE("/users/:id/cart", h.ClearCart)
		api.POST("/users/:id/cart/validate", h.ValidateCart)
	}

	return m, r
}

// --- Products ---

func TestHandler_CreateProduct_Success(t *testing.T) {
	m, r := setupRouter(t)

	product := &domain.Product{
		ID:         uuid.New().String(),
		Name:       "Indigo-dyed scarf",
		PriceCents: 4500,
		Quantity:   12,
		Status:     domain.ProductStatusActive,
		CreatedAt:  time.Now(),
	}
	m.product.EXPECT().Create(mock.Anything, mock.Anything).Return(product, nil)

	body, _ := json.Marshal(dto.CreateProductRequest{
		Name:       "Indigo-dyed scarf",
		PriceCents: 4500,
		Quantity:   12,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Indigo-dyed scarf", resp.Name)
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_CreateProduct_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	productID := uuid.New().String()
	m.product.EXPECT().Get(mock.Anything, productID).Return(nil, domain.ErrProductNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetProduct_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListProducts_Success(t *testing.T) {
	m, r := setupRouter(t)

	products := []*domain.Product{
		{ID: "p1", Name: "Scarf", Status: domain.ProductStatusActive, CreatedAt: time.Now()},
		{ID: "p2", Name: "Teapot", Status: domain.ProductStatusOutOfStock, CreatedAt: time.Now()},
	}
	m.product.EXPECT().List(mock.Anything).Return(products, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	starts := time.Now().Add(24 * time.Hour)
	ends := starts.Add(2 * time.Hour)
	max := 10
	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           "Ceramics workshop",
		OrganizerID:     uuid.New().String(),
		StartsAt:        starts,
		EndsAt:          ends,
		MaxParticipants: &max,
		CreatedAt:       time.Now(),
	}
	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:           "Ceramics workshop",
		OrganizerID:     event.OrganizerID,
		StartsAt:        starts.Format(time.RFC3339),
		EndsAt:          ends.Format(time.RFC3339),
		MaxParticipants: &max,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ceramics workshop", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"title":"X","organizer_id":"` + uuid.New().String() + `","starts_at":"not-a-date","ends_at":"also-bad"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	max := 10
	details := &domain.EventDetails{
		Event: domain.Event{
			ID:              eventID,
			Title:           "Ceramics workshop",
			StartsAt:        time.Now().Add(time.Hour),
			EndsAt:          time.Now().Add(3 * time.Hour),
			MaxParticipants: &max,
			CreatedAt:       time.Now(),
		},
		ConfirmedCount:  7,
		WaitlistedCount: 2,
	}
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.ConfirmedCount)
	require.NotNil(t, resp.AvailableSeats)
	assert.Equal(t, 3, *resp.AvailableSeats)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Confirmed(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	reg := &domain.Registration{
		ID:           uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		Status:       domain.RegistrationStatusConfirmed,
		RegisteredAt: time.Now(),
	}
	m.registration.EXPECT().Register(mock.Anything, eventID, userID).Return(reg, nil)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_RegisterForEvent_AlreadyRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registration.EXPECT().Register(mock.Anything, eventID, userID).Return(nil, domain.ErrAlreadyRegistered)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_InvalidEventID(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/bad-id/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelRegistration_WithPromotion(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	result := &domain.CancelResult{
		Cancelled: &domain.Registration{
			ID: "r1", EventID: eventID, UserID: userID,
			Status: domain.RegistrationStatusCancelled, RegisteredAt: time.Now(),
		},
		Promoted: &domain.Registration{
			ID: "r2", EventID: eventID, UserID: uuid.New().String(),
			Status: domain.RegistrationStatusConfirmed, RegisteredAt: time.Now(),
		},
	}
	m.registration.EXPECT().Cancel(mock.Anything, eventID, userID).Return(result, nil)

	body, _ := json.Marshal(dto.CancelRegistrationRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Cancelled.Status)
	require.NotNil(t, resp.Promoted)
	assert.Equal(t, "confirmed", resp.Promoted.Status)
}

func TestHandler_MarkAttendance_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	userID := uuid.New().String()
	m.registration.EXPECT().
		MarkAttendance(mock.Anything, eventID, organizerID, userID, domain.RegistrationStatusAttended).
		Return(nil)

	body, _ := json.Marshal(dto.AttendanceRequest{
		OrganizerID: organizerID,
		UserID:      userID,
		Outcome:     "attended",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkAttendance_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	userID := uuid.New().String()
	m.registration.EXPECT().
		MarkAttendance(mock.Anything, eventID, organizerID, userID, domain.RegistrationStatusNoShow).
		Return(domain.ErrAccessDenied)

	body, _ := json.Marshal(dto.AttendanceRequest{
		OrganizerID: organizerID,
		UserID:      userID,
		Outcome:     "no_show",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SubmitFeedback_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registration.EXPECT().
		SubmitFeedback(mock.Anything, eventID, userID, "wonderful teacher", 5).
		Return(nil)

	body, _ := json.Marshal(dto.FeedbackRequest{UserID: userID, Feedback: "wonderful teacher", Rating: 5})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SubmitFeedback_InvalidRating(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registration.EXPECT().
		SubmitFeedback(mock.Anything, eventID, userID, "", 9).
		Return(domain.ErrInvalidRating)

	body, _ := json.Marshal(dto.FeedbackRequest{UserID: userID, Rating: 9})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	regs := []*domain.Registration{
		{ID: "r1", EventID: eventID, UserID: "u1", Status: domain.RegistrationStatusConfirmed, RegisteredAt: time.Now()},
		{ID: "r2", EventID: eventID, UserID: "u2", Status: domain.RegistrationStatusWaitlisted, RegisteredAt: time.Now()},
	}
	m.registration.EXPECT().ListByEvent(mock.Anything, eventID, organizerID).Return(regs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/registrations?organizer_id="+organizerID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListRegistrations_MissingOrganizer(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+uuid.New().String()+"/registrations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	productID := uuid.New().String()
	ref := "chrg_test_123"
	order := &domain.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Items: []domain.OrderItem{
			{ProductID: productID, Quantity: 2, PriceCents: 4500},
		},
		TotalCents:      9000,
		Status:          domain.OrderStatusPaid,
		PaymentStatus:   domain.PaymentStatusCompleted,
		PaymentRef:      &ref,
		ShippingAddress: "12 Cat Street, Sheung Wan",
		CreatedAt:       time.Now(),
	}
	m.order.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(order, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		UserID:             userID,
		Items:              []dto.OrderItemRequest{{ProductID: productID, Quantity: 2}},
		ShippingAddress:    "12 Cat Street, Sheung Wan",
		ExpectedTotalCents: 9000,
		CardToken:          "tok_visa",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, int64(9000), resp.TotalCents)
}

func TestHandler_CreateOrder_PaymentDeclined(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.order.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, domain.ErrPaymentDeclined)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		UserID:             userID,
		Items:              []dto.OrderItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
		ShippingAddress:    "12 Cat Street, Sheung Wan",
		ExpectedTotalCents: 4500,
		CardToken:          "tok_declined",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateOrder_InsufficientStock(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.order.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, domain.ErrResourceUnavailable)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		UserID:             userID,
		Items:              []dto.OrderItemRequest{{ProductID: uuid.New().String(), Quantity: 99}},
		ShippingAddress:    "12 Cat Street, Sheung Wan",
		ExpectedTotalCents: 1000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateOrder_EmptyItems(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","items":[],"shipping_address":"somewhere","expected_total_cents":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	orderID := uuid.New().String()
	userID := uuid.New().String()
	order := &domain.Order{
		ID:              orderID,
		UserID:          userID,
		Status:          domain.OrderStatusCancelled,
		PaymentStatus:   domain.PaymentStatusRefunded,
		ShippingAddress: "12 Cat Street, Sheung Wan",
		CreatedAt:       time.Now(),
	}
	m.order.EXPECT().Cancel(mock.Anything, orderID, userID).Return(order, nil)

	body, _ := json.Marshal(dto.CancelOrderRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CancelOrder_NotCancellable(t *testing.T) {
	m, r := setupRouter(t)

	orderID := uuid.New().String()
	userID := uuid.New().String()
	m.order.EXPECT().Cancel(mock.Anything, orderID, userID).Return(nil, domain.ErrOrderNotCancellable)

	body, _ := json.Marshal(dto.CancelOrderRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetOrder_WrongOwner(t *testing.T) {
	m, r := setupRouter(t)

	orderID := uuid.New().String()
	userID := uuid.New().String()
	m.order.EXPECT().Get(mock.Anything, orderID, userID).Return(nil, domain.ErrAccessDenied)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID+"?user_id="+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetUserOrders_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	orders := []*domain.Order{
		{ID: "o1", UserID: userID, Status: domain.OrderStatusPaid, PaymentStatus: domain.PaymentStatusCompleted, CreatedAt: time.Now()},
	}
	m.order.EXPECT().ListByUser(mock.Anything, userID).Return(orders, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Cart ---

func TestHandler_SetCartItem_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	productID := uuid.New().String()
	cart := &domain.Cart{
		UserID: userID,
		Items:  []domain.CartItem{{ProductID: productID, Quantity: 3}},
	}
	m.cart.EXPECT().SetItem(mock.Anything, userID, domain.CartItem{ProductID: productID, Quantity: 3}).Return(cart, nil)

	body, _ := json.Marshal(dto.SetCartItemRequest{ProductID: productID, Quantity: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+userID+"/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
}

func TestHandler_SetCartItem_ProductGone(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	productID := uuid.New().String()
	m.cart.EXPECT().SetItem(mock.Anything, userID, mock.Anything).Return(nil, domain.ErrProductNotFound)

	body, _ := json.Marshal(dto.SetCartItemRequest{ProductID: productID, Quantity: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+userID+"/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RemoveCartItem_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	productID := uuid.New().String()
	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	m.cart.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(cart, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID+"/cart/items/"+productID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ValidateCart_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	validation := &domain.CartValidation{
		Lines: []domain.CartLine{
			{Item: domain.CartItem{ProductID: "p1", Quantity: 2}, PriceCents: 4500, Available: true},
			{Item: domain.CartItem{ProductID: "p2", Quantity: 1}, Available: false, Reason: "product is out of stock"},
		},
		TotalCents: 9000,
		OK:         false,
	}
	m.cart.EXPECT().Validate(mock.Anything, userID).Return(validation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/cart/validate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, int64(9000), resp.TotalCents)
}

func TestHandler_ValidateCart_Empty(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.cart.EXPECT().Validate(mock.Anything, userID).Return(nil, domain.ErrCartEmpty)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/cart/validate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClearCart_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.cart.EXPECT().Clear(mock.Anything, userID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID+"/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.user.EXPECT().Get(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
