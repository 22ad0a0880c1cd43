package shop

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

func (c Category) withID(id string) Category { c.ID = id; return c }

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	CategoryID   string   `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	SellerID     string   `json:"sellerId"`
	SellerName   string   `json:"sellerName"`
	Stock        int      `json:"stock"`
	Status       string   `json:"status"`
	Rating       string   `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
}

func (p Product) withID(id string) Product { p.ID = id; return p }

type CartItem struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (i CartItem) withID(id string) CartItem { i.ID = id; return i }

type Order struct {
	ID         string    `json:"id"`
	SellerID   string    `json:"sellerId"`
	BuyerName  string    `json:"buyerName"`
	BuyerEmail string    `json:"buyerEmail"`
	Total      string    `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (o Order) withID(id string) Order { o.ID = id; return o }

type Review struct {
	Quote  string `json:"quote"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type SellerStats struct {
	Revenue        float64 `json:"revenue"`
	ActiveListings int     `json:"activeListings"`
	TotalOrders    int     `json:"totalOrders"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

// CartLine pairs a session's cart item with its product. Product is nil
// when the listing has since been deleted.
type CartLine struct {
	Session CartItem `json:"session"`
	Product *Product `json:"product"`
}

// ProductFilter narrows ListProducts. Zero values mean "no filter";
// CategoryID "all" also bypasses the category filter.
type ProductFilter struct {
	CategoryID string
	Search     string
	SellerID   string
	Limit      int
	Offset     int
}

// ProductPatch is a partial update: nil fields keep the stored value, so a
// caller can never overwrite a field it did not send.
type ProductPatch struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *string   `json:"price"`
	CategoryID   *string   `json:"categoryId"`
	CategoryName *string   `json:"categoryName"`
	Image        *string   `json:"image"`
	Images       *[]string `json:"images"`
	SellerID     *string   `json:"sellerId"`
	SellerName   *string   `json:"sellerName"`
	Stock        *int      `json:"stock"`
	Status       *string   `json:"status"`
	Rating       *string   `json:"rating"`
	ReviewCount  *int      `json:"reviewCount"`
}

func (patch ProductPatch) apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.CategoryName != nil {
		p.CategoryName = *patch.CategoryName
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.SellerID != nil {
		p.SellerID = *patch.SellerID
	}
	if patch.SellerName != nil {
		p.SellerName = *patch.SellerName
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.ReviewCount != nil {
		p.ReviewCount = *patch.ReviewCount
	}
	return p
}
