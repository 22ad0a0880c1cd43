package shop

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MarketLite/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	// Order creation is the only write a bot can grow unboundedly, so it
	// gets a per-IP limit. Generous enough for any real checkout flow.
	orderLimitPerMin = 120
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	orderLimiter := kit.NewIPRateLimiter(orderLimitPerMin, 60)

	r.Route("/api", func(api chi.Router) {
		api.Get("/products", s.listProducts)
		api.Post("/products", s.createProduct)
		api.Get("/products/{id}", s.getProduct)
		api.Patch("/products/{id}", s.updateProduct)
		api.Delete("/products/{id}", s.deleteProduct)

		api.Get("/categories", s.listCategories)
		api.Get("/categories/{id}", s.getCategory)

		api.Get("/cart", s.getCart)
		api.Post("/cart", s.addToCart)
		api.Delete("/cart", s.clearCart)
		api.Patch("/cart/{id}", s.updateCartItem)
		api.Delete("/cart/{id}", s.removeCartItem)

		api.Get("/review", s.listReviews)

		api.With(orderLimiter.Middleware).Post("/orders", s.createOrder)
		api.Get("/seller/orders", s.sellerOrders)
		api.Get("/seller/products", s.sellerProducts)
		api.Get("/seller/stats", s.sellerStats)
	})

	return r
}

func (s *Server) listReviews(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.ListReviews())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}

func queryParam(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

func intParam(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
