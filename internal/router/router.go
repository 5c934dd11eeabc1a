package router

import (
	"net/http"

	"lojinha/internal/handler"
	"lojinha/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Product  *handler.ProductHandler
	Banner   *handler.BannerHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Admin routes sit under /api/admin/ and are gated by the API key; the
// storefront and cart routes are open and session-scoped.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront
	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)
	mux.HandleFunc("GET /api/banners/active", h.Banner.Active)
	mux.HandleFunc("GET /api/orders/track", h.Order.Track)

	// Cart (session-scoped)
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.Cart.RemoveItem)
	mux.HandleFunc("GET /api/cart/prefill", h.Cart.Prefill)

	// Checkout
	mux.HandleFunc("POST /api/checkout", h.Checkout.Submit)

	// Admin
	mux.HandleFunc("GET /api/admin/products", h.Product.ListAll)
	mux.HandleFunc("POST /api/admin/products", h.Product.Create)
	mux.HandleFunc("PUT /api/admin/products/{id}", h.Product.Update)
	mux.HandleFunc("DELETE /api/admin/products/{id}", h.Product.Delete)
	mux.HandleFunc("PATCH /api/admin/products/{id}/sold", h.Product.SetSold)

	mux.HandleFunc("GET /api/admin/banners", h.Banner.List)
	mux.HandleFunc("POST /api/admin/banners", h.Banner.Create)
	mux.HandleFunc("PUT /api/admin/banners/{id}", h.Banner.Update)
	mux.HandleFunc("DELETE /api/admin/banners/{id}", h.Banner.Delete)
	mux.HandleFunc("PATCH /api/admin/banners/{id}/active", h.Banner.SetActive)

	mux.HandleFunc("GET /api/admin/orders", h.Order.List)
	mux.HandleFunc("GET /api/admin/orders/{id}", h.Order.GetByID)
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", h.Order.UpdateStatus)

	mux.HandleFunc("GET /api/admin/customers", h.Customer.List)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth -> SessionID
	var root http.Handler = mux
	root = middleware.SessionID(root)
	root = middleware.APIKeyAuth(apiKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
