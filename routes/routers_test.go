package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelcart/controllers"
	"hotelcart/dto"
	"hotelcart/services"
	"hotelcart/services/booking"
	"hotelcart/services/catalog"
	"hotelcart/services/logger"
)

const sessionID = "test-session-1"

type apiResponse struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

type harness struct {
	router *gin.Engine
	svc    *services.CartService
}

func newHarness(t *testing.T, rooms []booking.Room, fetchErr error) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fetcher := catalog.FetcherFunc(func(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
		return rooms, fetchErr
	})
	svc := services.NewCartService(services.CartServiceOptions{
		Store:        services.NewMemorySessionStore(time.Hour),
		Fetcher:      fetcher,
		Logger:       logger.NewNop(),
		Signer:       services.NewHandoffSigner("secret", time.Minute),
		FetchTimeout: time.Second,
	})

	router := gin.New()
	m := melody.New()
	SetupRoutes(router,
		controllers.NewCartController(controllers.CartControllerOptions{Cart: svc, Logger: logger.NewNop()}),
		controllers.NewNotificationController(controllers.NotificationControllerOptions{Logger: logger.NewNop()}, m),
	)
	return &harness{router: router, svc: svc}
}

func (h *harness) do(t *testing.T, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func rooms() []booking.Room {
	return []booking.Room{
		{
			ID: 1, RoomTypeID: 10, RoomTypeName: "Deluxe", RoomCategoryID: 100, RoomCategoryName: "Double",
			Adults: 2, BedType: "Queen", SellableCount: 3,
			Pricing: booking.RawPricing{FinalCustomerPrice: 100000, HalfDayPrice: 60000},
		},
		{
			ID: 2, RoomTypeID: 20, RoomTypeName: "Suite", SellableCount: 0,
			Pricing: booking.RawPricing{FinalCustomerPrice: 500000},
		},
	}
}

func (h *harness) openWithStay(t *testing.T) {
	t.Helper()
	code, _ := h.do(t, http.MethodPost, "/api/v1/cart/session", dto.OpenSessionRequest{HotelID: 7, HotelName: "Khách sạn Hoa Sen"})
	require.Equal(t, http.StatusOK, code)

	code, resp := h.do(t, http.MethodPut, "/api/v1/cart/stay", dto.SelectStayRequest{CheckIn: "2025-03-01", CheckOut: "2025-03-04"})
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "Loading", decode[dto.CartResponse](t, resp.Data).State)
	h.svc.Wait()
}

func TestCartAPI_HappyPath(t *testing.T) {
	h := newHarness(t, rooms(), nil)
	h.openWithStay(t)

	code, resp := h.do(t, http.MethodGet, "/api/v1/cart/rooms", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[dto.RoomListResponse](t, resp.Data)
	assert.Equal(t, "ready", list.Availability)
	require.Len(t, list.Rooms, 1)
	assert.Equal(t, "Double - Deluxe", list.Rooms[0].Name)

	qty := 2
	code, resp = h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base", "quantity": qty})
	require.Equal(t, http.StatusOK, code)
	set := decode[dto.SetQuantityResponse](t, resp.Data)
	assert.Equal(t, 2, set.Applied)
	assert.False(t, set.Clamped)

	code, resp = h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "halfDay", "quantity": 5})
	require.Equal(t, http.StatusOK, code)
	set = decode[dto.SetQuantityResponse](t, resp.Data)
	assert.True(t, set.Clamped)
	assert.Equal(t, 1, set.Applied)
	assert.Equal(t, int64(780000), set.Cart.Summary.TotalPriceForStay)

	code, resp = h.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	cart := decode[dto.CartResponse](t, resp.Data)
	assert.Equal(t, "DatesSelected(cartNonEmpty)", cart.State)
	assert.Equal(t, 3, cart.Nights)
	assert.Len(t, cart.Items, 2)

	code, resp = h.do(t, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, code)
	out := decode[dto.CheckoutResponse](t, resp.Data)
	assert.Equal(t, int64(780000), out.Payload.TotalPrice)
	assert.NotEmpty(t, out.Token)
	assert.Contains(t, out.Params, "hotelId=7")

	code, resp = h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base", "quantity": 1})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, 0, resp.Code)
}

func TestCartAPI_Errors(t *testing.T) {
	h := newHarness(t, rooms(), nil)

	code, _ := h.do(t, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusNotFound, code)

	h.openWithStay(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"bad tier", http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "weekly", "quantity": 1}, http.StatusBadRequest},
		{"missing quantity", http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base"}, http.StatusBadRequest},
		{"negative quantity", http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base", "quantity": -1}, http.StatusBadRequest},
		{"unpriced tier", http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "singlePerson", "quantity": 1}, http.StatusBadRequest},
		{"sold out room", http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 2, "tier": "base", "quantity": 1}, http.StatusNotFound},
		{"bad date", http.MethodPut, "/api/v1/cart/stay", map[string]interface{}{"checkIn": "2025/03/01", "checkOut": "2025-03-04"}, http.StatusBadRequest},
		{"bad room id", http.MethodDelete, "/api/v1/cart/items/abc/base", nil, http.StatusBadRequest},
		{"empty checkout", http.MethodPost, "/api/v1/cart/checkout", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := h.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, 0, resp.Code)
			assert.NotEmpty(t, resp.Mess)
		})
	}
}

func TestCartAPI_RemoveAndClear(t *testing.T) {
	h := newHarness(t, rooms(), nil)
	h.openWithStay(t)

	h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base", "quantity": 1})
	h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "halfDay", "quantity": 1})

	code, resp := h.do(t, http.MethodDelete, "/api/v1/cart/items/1/base", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[dto.CartResponse](t, resp.Data).Items, 1)

	code, resp = h.do(t, http.MethodDelete, "/api/v1/cart/items", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "DatesSelected(cartEmpty)", decode[dto.CartResponse](t, resp.Data).State)
}

func TestCartAPI_CatalogUnavailable(t *testing.T) {
	h := newHarness(t, nil, assert.AnError)
	h.openWithStay(t)

	code, resp := h.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	cart := decode[dto.CartResponse](t, resp.Data)
	assert.Equal(t, "CatalogUnavailable", cart.State)
	assert.Equal(t, "unavailable", cart.Availability)

	code, _ = h.do(t, http.MethodPut, "/api/v1/cart/items", map[string]interface{}{"roomId": 1, "tier": "base", "quantity": 1})
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestPing(t *testing.T) {
	h := newHarness(t, nil, nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
