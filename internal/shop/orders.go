package shop

import (
	"net/http"

	"MarketLite/pkg/kit"
)

// defaultSeller backs the seller dashboard endpoints when no seller_id is
// given, matching the demo storefront.
const defaultSeller = "seller-1"

type createOrderReq struct {
	SellerID   string `json:"sellerId"`
	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail"`
	Total      string `json:"total"`
	Status     string `json:"status"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	o := s.Store.CreateOrder(Order{
		SellerID:   req.SellerID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Total:      req.Total,
		Status:     req.Status,
	})
	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) sellerOrders(w http.ResponseWriter, r *http.Request) {
	sellerID := queryParam(r, "seller_id", defaultSeller)
	kit.WriteJSON(w, http.StatusOK, s.Store.ListOrders(sellerID))
}

func (s *Server) sellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID := queryParam(r, "seller_id", defaultSeller)
	kit.WriteJSON(w, http.StatusOK, s.Store.ListProducts(ProductFilter{SellerID: sellerID}))
}

func (s *Server) sellerStats(w http.ResponseWriter, r *http.Request) {
	sellerID := queryParam(r, "seller_id", defaultSeller)
	kit.WriteJSON(w, http.StatusOK, s.Store.SellerStatsFor(sellerID))
}
