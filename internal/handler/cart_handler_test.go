package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lojinha/internal/middleware"
	"lojinha/internal/model"
	"lojinha/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withSession routes a request through the session middleware so the
// handler sees a resolved session ID, the way the router wires it.
func withSession(h http.HandlerFunc, method, target, body, sessionID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	// Path parameters the mux would have bound.
	if idx := strings.LastIndex(target, "/items/"); idx != -1 {
		req.SetPathValue("id", target[idx+len("/items/"):])
	}

	w := httptest.NewRecorder()
	middleware.SessionID(h).ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartView {
	t.Helper()
	var view CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestCartHandler_GetEmpty(t *testing.T) {
	h := NewCartHandler(newFakeSessionStore(), new(MockCatalogService), nil, zerolog.Nop())

	w := withSession(h.Get, http.MethodGet, "/api/cart", "", "session-1")

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, "0.00", view.TotalPrice)
}

func TestCartHandler_AddItem(t *testing.T) {
	sessions := newFakeSessionStore()
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "P001").Return(&model.Product{
		ID:       "P001",
		Name:     "Linen Shirt",
		Price:    89.90,
		Images:   []string{"shirt.jpg"},
		Category: "shirts",
	}, nil)

	h := NewCartHandler(sessions, catalog, nil, zerolog.Nop())

	w := withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Linen Shirt", view.Items[0].Name)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, "89.90", view.TotalPrice)

	// Adding again increments the quantity in the durable slot.
	w = withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")
	view = decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "179.80", view.TotalPrice)
}

func TestCartHandler_AddItem_ProductNotFound(t *testing.T) {
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "ghost").Return(nil, model.ErrProductNotFound)

	h := NewCartHandler(newFakeSessionStore(), catalog, nil, zerolog.Nop())

	w := withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"ghost"}`, "session-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	catalog := new(MockCatalogService)
	h := NewCartHandler(newFakeSessionStore(), catalog, nil, zerolog.Nop())

	w := withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{}`, "session-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	catalog.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCartHandler_SessionsAreIsolated(t *testing.T) {
	sessions := newFakeSessionStore()
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "P001").Return(&model.Product{
		ID: "P001", Name: "Linen Shirt", Price: 89.90, Images: []string{"shirt.jpg"}, Category: "shirts",
	}, nil)

	h := NewCartHandler(sessions, catalog, nil, zerolog.Nop())

	withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")

	w := withSession(h.Get, http.MethodGet, "/api/cart", "", "session-2")
	view := decodeCart(t, w)
	assert.Empty(t, view.Items)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	sessions := newFakeSessionStore()
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "P001").Return(&model.Product{
		ID: "P001", Name: "Linen Shirt", Price: 10.00, Images: []string{"shirt.jpg"}, Category: "shirts",
	}, nil)

	h := NewCartHandler(sessions, catalog, nil, zerolog.Nop())
	withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")

	w := withSession(h.UpdateQuantity, http.MethodPatch, "/api/cart/items/P001", `{"quantity":4}`, "session-1")
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.TotalItems)
	assert.Equal(t, "40.00", view.TotalPrice)

	// Zero quantity removes the line.
	w = withSession(h.UpdateQuantity, http.MethodPatch, "/api/cart/items/P001", `{"quantity":0}`, "session-1")
	view = decodeCart(t, w)
	assert.Empty(t, view.Items)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	sessions := newFakeSessionStore()
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "P001").Return(&model.Product{
		ID: "P001", Name: "Linen Shirt", Price: 10.00, Images: []string{"shirt.jpg"}, Category: "shirts",
	}, nil)

	h := NewCartHandler(sessions, catalog, nil, zerolog.Nop())
	withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")

	w := withSession(h.RemoveItem, http.MethodDelete, "/api/cart/items/P001", "", "session-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)

	// Removing an absent line is a no-op, not an error.
	w = withSession(h.RemoveItem, http.MethodDelete, "/api/cart/items/ghost", "", "session-1")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	sessions := newFakeSessionStore()
	catalog := new(MockCatalogService)
	catalog.On("GetByID", mock.Anything, "P001").Return(&model.Product{
		ID: "P001", Name: "Linen Shirt", Price: 10.00, Images: []string{"shirt.jpg"}, Category: "shirts",
	}, nil)

	h := NewCartHandler(sessions, catalog, nil, zerolog.Nop())
	withSession(h.AddItem, http.MethodPost, "/api/cart/items", `{"productId":"P001"}`, "session-1")

	w := withSession(h.Clear, http.MethodDelete, "/api/cart", "", "session-1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = withSession(h.Get, http.MethodGet, "/api/cart", "", "session-1")
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartHandler_Prefill(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.SavePrefill(context.Background(), "session-1", session.Prefill{
		Name:    "Maria Silva",
		Phone:   "(99) 99999-9999",
		Email:   "maria@example.com",
		Address: "Rua das Flores, 123",
	})

	h := NewCartHandler(sessions, new(MockCatalogService), nil, zerolog.Nop())

	w := withSession(h.Prefill, http.MethodGet, "/api/cart/prefill", "", "session-1")
	assert.Equal(t, http.StatusOK, w.Code)

	var got session.Prefill
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Maria Silva", got.Name)

	// Unknown session yields an empty prefill.
	w = withSession(h.Prefill, http.MethodGet, "/api/cart/prefill", "", "session-2")
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Empty(t, got.Name)
}
