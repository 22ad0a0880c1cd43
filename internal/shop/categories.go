package shop

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"MarketLite/pkg/kit"
)

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.ListCategories())
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := s.Store.GetCategory(chi.URLParam(r, "id"))
	if !ok {
		kit.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}
