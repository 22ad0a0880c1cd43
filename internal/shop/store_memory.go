package shop

import (
	"sort"
	"strings"
	"time"
)

// AllCategories is the category filter value that means "every category".
const AllCategories = "all"

// Store holds all marketplace state in memory, one table per entity kind.
// State is seeded fresh at construction and lost at shutdown.
type Store struct {
	products   *table[Product]
	categories *table[Category]
	cartItems  *table[CartItem]
	orders     *table[Order]
	reviews    []Review

	now func() time.Time
}

func NewStore() *Store {
	s := &Store{
		products:   newTable[Product](),
		categories: newTable[Category](),
		cartItems:  newTable[CartItem](),
		orders:     newTable[Order](),
		now:        time.Now,
	}
	s.seed()
	return s
}

func (s *Store) ListProducts(f ProductFilter) []Product {
	search := strings.ToLower(f.Search)

	products := s.products.list(func(p Product) bool {
		if f.CategoryID != "" && f.CategoryID != AllCategories && p.CategoryID != f.CategoryID {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
		if f.SellerID != "" && p.SellerID != f.SellerID {
			return false
		}
		return true
	})

	if f.Offset >= len(products) {
		return []Product{}
	}
	products = products[f.Offset:]
	if f.Limit > 0 && f.Limit < len(products) {
		products = products[:f.Limit]
	}
	return products
}

func (s *Store) GetProduct(id string) (Product, bool) {
	return s.products.get(id)
}

// CreateProduct assigns a fresh id and stores p. New listings start at
// rating "0" with no reviews unless the caller says otherwise.
func (s *Store) CreateProduct(p Product) Product {
	if p.Rating == "" {
		p.Rating = "0"
	}
	return s.products.insert(p)
}

func (s *Store) UpdateProduct(id string, patch ProductPatch) (Product, error) {
	p, ok := s.products.update(id, patch.apply)
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) DeleteProduct(id string) error {
	if !s.products.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListCategories() []Category {
	return s.categories.list(nil)
}

func (s *Store) GetCategory(id string) (Category, bool) {
	return s.categories.get(id)
}

func (s *Store) CreateCategory(c Category) Category {
	return s.categories.insert(c)
}

func (s *Store) ListCartItems(sessionID string) []CartItem {
	return s.cartItems.list(func(i CartItem) bool { return i.SessionID == sessionID })
}

// CartLines returns the session's items enriched with their products.
func (s *Store) CartLines(sessionID string) []CartLine {
	items := s.ListCartItems(sessionID)

	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		line := CartLine{Session: it}
		if p, ok := s.products.get(it.ProductID); ok {
			line.Product = &p
		}
		lines = append(lines, line)
	}
	return lines
}

// AddToCart increments the session's existing item for the product, or
// creates a new one. One (session, product) pair maps to at most one item.
func (s *Store) AddToCart(sessionID, productID string, quantity int) CartItem {
	return s.cartItems.upsert(
		func(i CartItem) bool { return i.SessionID == sessionID && i.ProductID == productID },
		func(i CartItem) CartItem { i.Quantity += quantity; return i },
		CartItem{SessionID: sessionID, ProductID: productID, Quantity: quantity},
	)
}

func (s *Store) UpdateCartQuantity(itemID string, quantity int) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, ErrInvalidQuantity
	}

	it, ok := s.cartItems.update(itemID, func(i CartItem) CartItem {
		i.Quantity = quantity
		return i
	})
	if !ok {
		return CartItem{}, ErrNotFound
	}
	return it, nil
}

func (s *Store) RemoveCartItem(itemID string) error {
	if !s.cartItems.remove(itemID) {
		return ErrNotFound
	}
	return nil
}

// ClearCart drops every item in the session. Idempotent.
func (s *Store) ClearCart(sessionID string) {
	s.cartItems.removeAll(func(i CartItem) bool { return i.SessionID == sessionID })
}

// ListOrders returns orders, optionally for one seller, most recent first.
// Ties keep insertion order.
func (s *Store) ListOrders(sellerID string) []Order {
	var keep func(Order) bool
	if sellerID != "" {
		keep = func(o Order) bool { return o.SellerID == sellerID }
	}

	orders := s.orders.list(keep)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

// CreateOrder assigns a fresh id and stamps CreatedAt; the timestamp is
// immutable afterwards.
func (s *Store) CreateOrder(o Order) Order {
	o.CreatedAt = s.now().UTC()
	return s.orders.insert(o)
}

func (s *Store) ListReviews() []Review {
	return s.reviews
}
