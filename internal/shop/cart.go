package shop

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"MarketLite/pkg/kit"
)

// defaultSession scopes cart requests from clients that never picked a
// session id. Sessions are opaque strings, not authenticated identities.
const defaultSession = "default-session"

func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return defaultSession
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.CartLines(sessionID(r)))
}

type addToCartReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == "" {
		kit.WriteError(w, http.StatusBadRequest, "productId is required")
		return
	}

	item := s.Store.AddToCart(sessionID(r), req.ProductID, req.Quantity)
	kit.WriteJSON(w, http.StatusOK, item)
}

type updateCartReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.Store.UpdateCartQuantity(chi.URLParam(r, "id"), req.Quantity)
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		kit.WriteError(w, http.StatusBadRequest, "Invalid quantity")
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, http.StatusNotFound, "Cart item not found")
	default:
		kit.WriteJSON(w, http.StatusOK, item)
	}
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.RemoveCartItem(chi.URLParam(r, "id")); err != nil {
		kit.WriteError(w, http.StatusNotFound, "Cart item not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.Store.ClearCart(sessionID(r))
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
