package shop_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"MarketLite/internal/shop"
)

func newShopTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &shop.Server{
		Store: shop.NewStore(),
		Log:   zap.NewNop(),
	}

	h := shop.NewHandler(s, shop.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "shop",
		// Registry: nil
	})

	return httptest.NewServer(h)
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestAPI_ProductLifecycle(t *testing.T) {
	ts := newShopTS(t)
	t.Cleanup(ts.Close)

	c := &http.Client{}

	var created shop.Product
	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/products", map[string]any{
			"name":       "Test",
			"price":      "10.00",
			"categoryId": "cat-1",
			"stock":      5,
			"status":     "active",
		}, nil)

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create status=%d body=%s", resp.StatusCode, string(raw))
		}
		if err := json.Unmarshal(raw, &created); err != nil {
			t.Fatalf("decode product: %v body=%s", err, string(raw))
		}
		if created.ID == "" {
			t.Fatalf("empty product id")
		}
		if created.Rating != "0" || created.ReviewCount != 0 {
			t.Fatalf("rating=%q reviewCount=%d", created.Rating, created.ReviewCount)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/products/"+created.ID, nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get status=%d body=%s", resp.StatusCode, string(raw))
		}

		var got shop.Product
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("decode product: %v", err)
		}
		if !reflect.DeepEqual(got, created) {
			t.Fatalf("got=%+v want=%+v", got, created)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodPatch, ts.URL+"/api/products/"+created.ID, map[string]any{
			"stock": 3,
		}, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("patch status=%d body=%s", resp.StatusCode, string(raw))
		}

		var got shop.Product
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("decode product: %v", err)
		}
		if got.Stock != 3 {
			t.Fatalf("stock=%d want=3", got.Stock)
		}
		if got.Name != created.Name || got.Price != created.Price || got.Status != created.Status {
			t.Fatalf("patch touched other fields: %+v", got)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodDelete, ts.URL+"/api/products/"+created.ID, nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("delete status=%d", resp.StatusCode)
		}

		var st struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(raw, &st); err != nil || st.Status != "deleted" {
			t.Fatalf("delete body=%s", string(raw))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/products/"+created.ID, nil, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("get after delete status=%d", resp.StatusCode)
		}

		var er struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(raw, &er); err != nil || er.Detail != "Product not found" {
			t.Fatalf("error body=%s", string(raw))
		}
	}
}

func TestAPI_ProductFilters(t *testing.T) {
	ts := newShopTS(t)
	t.Cleanup(ts.Close)

	c := &http.Client{}

	listLen := func(url string) int {
		t.Helper()
		resp, raw := doJSON(t, c, http.MethodGet, url, nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d url=%s", resp.StatusCode, url)
		}
		var products []shop.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		return len(products)
	}

	all := listLen(ts.URL + "/api/products")
	sentinel := listLen(ts.URL + "/api/products?category=all")
	if all != sentinel {
		t.Fatalf("all=%d sentinel=%d", all, sentinel)
	}

	if n := listLen(ts.URL + "/api/products?search=bluetooth"); n != 1 {
		t.Fatalf("search matches=%d", n)
	}
	if n := listLen(ts.URL + "/api/products?category=cat-2"); n != 4 {
		t.Fatalf("category matches=%d", n)
	}
	if n := listLen(ts.URL + "/api/products?limit=3&offset=6"); n != 2 {
		t.Fatalf("page len=%d", n)
	}
}

func TestAPI_CartFlow(t *testing.T) {
	ts := newShopTS(t)
	t.Cleanup(ts.Close)

	c := &http.Client{}
	session := map[string]string{"X-Session-ID": "test-session"}

	var item shop.CartItem
	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/cart", map[string]any{
			"productId": "prod-1",
			"quantity":  2,
		}, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("add status=%d body=%s", resp.StatusCode, string(raw))
		}
		if err := json.Unmarshal(raw, &item); err != nil {
			t.Fatalf("decode item: %v", err)
		}

		// same product again merges instead of creating a second item
		resp, raw = doJSON(t, c, http.MethodPost, ts.URL+"/api/cart", map[string]any{
			"productId": "prod-1",
			"quantity":  3,
		}, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("re-add status=%d", resp.StatusCode)
		}

		var merged shop.CartItem
		if err := json.Unmarshal(raw, &merged); err != nil {
			t.Fatalf("decode item: %v", err)
		}
		if merged.ID != item.ID || merged.Quantity != 5 {
			t.Fatalf("merged=%+v want id=%s quantity=5", merged, item.ID)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cart", nil, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get cart status=%d", resp.StatusCode)
		}

		var lines []shop.CartLine
		if err := json.Unmarshal(raw, &lines); err != nil {
			t.Fatalf("decode lines: %v body=%s", err, string(raw))
		}
		if len(lines) != 1 {
			t.Fatalf("lines=%d", len(lines))
		}
		if lines[0].Product == nil || lines[0].Product.Name != "Premium Bluetooth Speaker" {
			t.Fatalf("line product=%+v", lines[0].Product)
		}

		// a different session sees an empty cart
		resp, raw = doJSON(t, c, http.MethodGet, ts.URL+"/api/cart", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get default cart status=%d", resp.StatusCode)
		}
		if err := json.Unmarshal(raw, &lines); err != nil || len(lines) != 0 {
			t.Fatalf("default session lines=%s", string(raw))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodPatch, ts.URL+"/api/cart/"+item.ID, map[string]any{
			"quantity": 0,
		}, session)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("quantity=0 status=%d body=%s", resp.StatusCode, string(raw))
		}

		resp, raw = doJSON(t, c, http.MethodPatch, ts.URL+"/api/cart/"+item.ID, map[string]any{
			"quantity": 4,
		}, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("patch status=%d", resp.StatusCode)
		}

		var updated shop.CartItem
		if err := json.Unmarshal(raw, &updated); err != nil || updated.Quantity != 4 {
			t.Fatalf("updated=%s", string(raw))
		}
	}

	{
		resp, _ := doJSON(t, c, http.MethodDelete, ts.URL+"/api/cart/"+item.ID, nil, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("remove status=%d", resp.StatusCode)
		}

		resp, _ = doJSON(t, c, http.MethodDelete, ts.URL+"/api/cart/"+item.ID, nil, session)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("re-remove status=%d", resp.StatusCode)
		}
	}

	{
		doJSON(t, c, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": "prod-2", "quantity": 1}, session)

		resp, _ := doJSON(t, c, http.MethodDelete, ts.URL+"/api/cart", nil, session)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("clear status=%d", resp.StatusCode)
		}

		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cart", nil, session)
		var lines []shop.CartLine
		if err := json.Unmarshal(raw, &lines); err != nil || len(lines) != 0 {
			t.Fatalf("cart after clear=%s status=%d", string(raw), resp.StatusCode)
		}
	}
}

func TestAPI_SellerEndpoints(t *testing.T) {
	ts := newShopTS(t)
	t.Cleanup(ts.Close)

	c := &http.Client{}

	var created shop.Order
	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/orders", map[string]any{
			"sellerId":   "seller-1",
			"buyerName":  "Ann Example",
			"buyerEmail": "ann@example.com",
			"total":      "129.99",
			"status":     "pending",
		}, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create order status=%d body=%s", resp.StatusCode, string(raw))
		}
		if err := json.Unmarshal(raw, &created); err != nil {
			t.Fatalf("decode order: %v", err)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("order=%+v", created)
		}
	}

	{
		// seller_id defaults to seller-1
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/seller/orders", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("orders status=%d", resp.StatusCode)
		}

		var orders []shop.Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			t.Fatalf("decode orders: %v", err)
		}
		if len(orders) != 1 || orders[0].ID != created.ID {
			t.Fatalf("orders=%s", string(raw))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/seller/products?seller_id=seller-1", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("products status=%d", resp.StatusCode)
		}

		var products []shop.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("decode products: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("seller products=%d", len(products))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/seller/stats", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("stats status=%d", resp.StatusCode)
		}

		var stats shop.SellerStats
		if err := json.Unmarshal(raw, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.TotalOrders != 1 || stats.Revenue != 129.99 || stats.AvgOrderValue != 129.99 {
			t.Fatalf("stats=%+v", stats)
		}
		if stats.ActiveListings != 2 {
			t.Fatalf("activeListings=%d", stats.ActiveListings)
		}
	}

	{
		// seller with no orders still gets a zero avg, not an error
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/seller/stats?seller_id=seller-7", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("stats status=%d", resp.StatusCode)
		}

		var stats shop.SellerStats
		if err := json.Unmarshal(raw, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.AvgOrderValue != 0 || stats.TotalOrders != 0 {
			t.Fatalf("stats=%+v", stats)
		}
	}
}

func TestAPI_CategoriesAndReview(t *testing.T) {
	ts := newShopTS(t)
	t.Cleanup(ts.Close)

	c := &http.Client{}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/categories", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("categories status=%d", resp.StatusCode)
		}

		var categories []shop.Category
		if err := json.Unmarshal(raw, &categories); err != nil || len(categories) != 3 {
			t.Fatalf("categories=%s", string(raw))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/categories/cat-3", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("category status=%d", resp.StatusCode)
		}

		var cat shop.Category
		if err := json.Unmarshal(raw, &cat); err != nil || cat.Slug != "electronics" {
			t.Fatalf("category=%s", string(raw))
		}

		resp, _ = doJSON(t, c, http.MethodGet, ts.URL+"/api/categories/cat-99", nil, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("missing category status=%d", resp.StatusCode)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/review", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("review status=%d", resp.StatusCode)
		}

		var reviews []shop.Review
		if err := json.Unmarshal(raw, &reviews); err != nil || len(reviews) != 1 {
			t.Fatalf("reviews=%s", string(raw))
		}
	}
}
