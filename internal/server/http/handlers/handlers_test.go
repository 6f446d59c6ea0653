package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/server/http/middleware"
	testhelpers "github.com/anandpatel/cafewala/internal/test"
	"github.com/anandpatel/cafewala/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	engine := gin.New()
	engine.Handle(method, "/test/*any", handler)
	req := httptest.NewRequest(method, "/test"+target, &body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, true)

	resp := performJSON(t, handler.Login, http.MethodPost, "/", dto.LoginRequest{Login: "admin", Password: "secret"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if cookie := resp.Header().Get("Set-Cookie"); cookie == "" {
		t.Fatal("expected auth cookie to be set")
	}

	failing := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}, true)
	resp = performJSON(t, failing.Login, http.MethodPost, "/", dto.LoginRequest{Login: "admin", Password: "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	now := time.Now()
	var captured usecase.OrderDraft
	stub := testhelpers.OrderFacadeStub{PlaceOrderFn: func(_ context.Context, draft usecase.OrderDraft) (*model.Order, error) {
		captured = draft
		return &model.Order{
			OrderNumber:           "CAFE-20260831-0001",
			Total:                 140,
			Status:                model.OrderStatusPending,
			EstimatedDeliveryTime: now,
		}, nil
	}}
	handler := NewOrderHandler(stub, true)

	payload := dto.CreateOrderRequest{
		Customer:        &dto.CustomerPayload{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210"},
		DeliveryAddress: &dto.AddressPayload{Street: "12 CG Road", Area: "Navrangpura", Pincode: "380009"},
		Items:           []dto.OrderItemPayload{{MenuItemID: "id-1", Quantity: 2}},
	}
	resp := performJSON(t, handler.Create, http.MethodPost, "/", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.OrderNumber != "CAFE-20260831-0001" || created.Total != 140 {
		t.Fatalf("unexpected response %+v", created)
	}
	if captured.Customer == nil || captured.Customer.Name != "Ravi" {
		t.Fatalf("unexpected draft %+v", captured)
	}
	if len(captured.Items) != 1 || captured.Items[0].Quantity != 2 {
		t.Fatalf("unexpected draft items %+v", captured.Items)
	}
}

func TestOrderHandlerCreateMapsValidationError(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, usecase.OrderDraft) (*model.Order, error) {
		return nil, domainErrors.NewValidation("items[0]", "menu item not found")
	}}
	handler := NewOrderHandler(stub, true)

	resp := performJSON(t, handler.Create, http.MethodPost, "/", dto.CreateOrderRequest{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error != "menu item not found" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestOrderHandlerCreateRejectsMalformedBody(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, true)

	engine := gin.New()
	engine.POST("/orders", handler.Create)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString("{"))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerTrackNotFound(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{TrackOrderFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	handler := NewOrderHandler(stub, true)

	engine := gin.New()
	engine.GET("/orders/:orderNumber", handler.Track)
	req := httptest.NewRequest(http.MethodGet, "/orders/CAFE-20260831-0001", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerListPassesFilters(t *testing.T) {
	var captured usecase.ListOrdersParams
	stub := testhelpers.OrderFacadeStub{ListOrdersFn: func(_ context.Context, params usecase.ListOrdersParams) (*usecase.OrderPage, error) {
		captured = params
		return &usecase.OrderPage{
			Orders: []model.Order{{OrderNumber: "CAFE-20260831-0001"}},
			Page:   2, Limit: 10, Total: 11, TotalPages: 2,
		}, nil
	}}
	handler := NewOrderHandler(stub, true)

	engine := gin.New()
	engine.GET("/orders", handler.List)
	req := httptest.NewRequest(http.MethodGet, "/orders?page=2&limit=10&status=pending&date=2026-08-31", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if captured.Page != 2 || captured.Limit != 10 || captured.Status != "pending" || captured.Date != "2026-08-31" {
		t.Fatalf("unexpected params %+v", captured)
	}

	var body dto.OrderListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Pagination.Total != 11 || body.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination %+v", body.Pagination)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{UpdateOrderStatusFn: func(_ context.Context, number string, status model.OrderStatus) (*model.Order, error) {
		if status != model.OrderStatusDelivered {
			return nil, domainErrors.ErrInvalidStatus
		}
		return &model.Order{OrderNumber: number, Status: status}, nil
	}}
	handler := NewOrderHandler(stub, true)

	engine := gin.New()
	engine.PUT("/orders/:orderNumber/status", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: "delivered"})
	req := httptest.NewRequest(http.MethodPut, "/orders/CAFE-20260831-0001/status", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	body, _ = json.Marshal(dto.UpdateOrderStatusRequest{Status: "shipped"})
	req = httptest.NewRequest(http.MethodPut, "/orders/CAFE-20260831-0001/status", bytes.NewReader(body))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestMenuHandlerEndpoints(t *testing.T) {
	stub := testhelpers.MenuFacadeStub{
		MenuListFn: func(context.Context, usecase.ListMenuParams) ([]model.MenuItem, error) {
			return []model.MenuItem{{ID: "id-1", Name: "Masala Chai"}}, nil
		},
	}
	handler := NewMenuHandler(stub, true)

	engine := gin.New()
	engine.GET("/menu", handler.List)
	engine.POST("/menu", handler.Create)
	engine.PATCH("/menu/:id/availability", handler.SetAvailability)
	engine.DELETE("/menu/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodGet, "/menu?category=tea&available=true", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	body, _ := json.Marshal(dto.MenuItemRequest{Name: "Masala Chai", Price: 25, Category: "tea"})
	req = httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(body))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/menu/id-1/availability", bytes.NewBufferString(`{}`))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing isAvailable, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/menu/id-1/availability", bytes.NewBufferString(`{"isAvailable":false}`))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/menu/id-1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestReservationHandlerCreate(t *testing.T) {
	handler := NewReservationHandler(testhelpers.ReservationFacadeStub{}, true)

	payload := dto.CreateReservationRequest{
		Name: "Meera", Email: "meera@example.com", Phone: "9812345670",
		Date: "2026-09-01", Time: "19:30", Guests: 4,
	}
	resp := performJSON(t, handler.Create, http.MethodPost, "/", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestReservationHandlerUpdateStatusPassesTable(t *testing.T) {
	var gotTable *int
	stub := testhelpers.ReservationFacadeStub{UpdateReservationStatusFn: func(_ context.Context, id string, status model.ReservationStatus, table *int) (*model.Reservation, error) {
		gotTable = table
		return &model.Reservation{ID: id, Status: status, TableNumber: table}, nil
	}}
	handler := NewReservationHandler(stub, true)

	engine := gin.New()
	engine.PUT("/reservations/:id/status", handler.UpdateStatus)

	req := httptest.NewRequest(http.MethodPut, "/reservations/res-1/status",
		bytes.NewBufferString(`{"status":"confirmed","tableNumber":12}`))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotTable == nil || *gotTable != 12 {
		t.Fatalf("expected table 12, got %+v", gotTable)
	}
}

func TestContactHandlerCreate(t *testing.T) {
	handler := NewContactHandler(testhelpers.ContactFacadeStub{}, true)

	payload := dto.ContactRequest{Name: "Kiran", Email: "kiran@example.com", Message: testhelpers.RandomASCIIString(10, 40)}
	resp := performJSON(t, handler.Create, http.MethodPost, "/", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(testhelpers.HealthFacadeStub{})
	resp := performJSON(t, healthy.Check, http.MethodGet, "/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	unhealthy := NewHealthHandler(testhelpers.HealthFacadeStub{Err: errors.New("db down")})
	resp = performJSON(t, unhealthy.Check, http.MethodGet, "/", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainErrors.NewValidation("field", "bad"), http.StatusBadRequest},
		{domainErrors.ErrInvalidStatus, http.StatusBadRequest},
		{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{domainErrors.ErrConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		resp := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(resp)
		writeError(c, tc.err, false)
		if resp.Code != tc.status {
			t.Fatalf("expected %d for %v, got %d", tc.status, tc.err, resp.Code)
		}
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	writeError(c, errors.New("connection refused"), false)
	if bytes.Contains(resp.Body.Bytes(), []byte("connection refused")) {
		t.Fatal("expected internal detail to be hidden")
	}

	resp = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(resp)
	writeError(c, errors.New("connection refused"), true)
	if !bytes.Contains(resp.Body.Bytes(), []byte("connection refused")) {
		t.Fatal("expected internal detail to be exposed")
	}
}

func TestQueryIntAndCurrentAdminID(t *testing.T) {
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&bad=x", nil)

	if got := queryInt(c, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := queryInt(c, "bad", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := queryInt(c, "missing", 5); got != 5 {
		t.Fatalf("expected fallback 5, got %d", got)
	}

	if got := CurrentAdminID(c); got != 0 {
		t.Fatalf("expected 0 without auth, got %d", got)
	}
	c.Set(middleware.AdminIDContextKey, int64(9))
	if got := CurrentAdminID(c); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}
