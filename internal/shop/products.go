package shop

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"MarketLite/pkg/kit"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := ProductFilter{
		CategoryID: q.Get("category"),
		Search:     q.Get("search"),
		Limit:      intParam(q.Get("limit"), 0),
		Offset:     intParam(q.Get("offset"), 0),
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.ListProducts(f))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Store.GetProduct(chi.URLParam(r, "id"))
	if !ok {
		kit.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p Product
	if err := decodeBody(w, r, &p); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// ids are store-assigned, never client-supplied
	p.ID = ""

	kit.WriteJSON(w, http.StatusCreated, s.Store.CreateProduct(p))
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch ProductPatch
	if err := decodeBody(w, r, &patch); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := s.Store.UpdateProduct(chi.URLParam(r, "id"), patch)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		kit.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
