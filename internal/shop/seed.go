package shop

// seed loads the demo storefront: three categories, eight listings across
// seven sellers, and one testimonial.
func (s *Store) seed() {
	s.categories.seed("cat-1", Category{
		Name:  "Fashion & Accessories",
		Slug:  "fashion",
		Image: "https://images.unsplash.com/photo-1558769132-cb1aea3c3e46?w=800",
	})
	s.categories.seed("cat-2", Category{
		Name:  "Home & Living",
		Slug:  "home-decor",
		Image: "https://images.unsplash.com/photo-1615529328331-f8917597711f?w=800",
	})
	s.categories.seed("cat-3", Category{
		Name:  "Electronics & Tech",
		Slug:  "electronics",
		Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=800",
	})

	s.products.seed("prod-1", Product{
		Name:         "Premium Bluetooth Speaker",
		Description:  "High-quality wireless speaker with 360-degree sound, 12-hour battery life, and water-resistant design. Perfect for outdoor adventures or home entertainment.",
		Price:        "129.99",
		CategoryID:   "cat-3",
		CategoryName: "Electronics & Tech",
		Image:        "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800",
			"https://images.unsplash.com/photo-1589003077984-894e133dabab?w=800",
		},
		SellerID:    "seller-1",
		SellerName:  "AudioPro",
		Stock:       45,
		Status:      "active",
		Rating:      "4.8",
		ReviewCount: 124,
	})
	s.products.seed("prod-2", Product{
		Name:         "Ceramic Vase",
		Description:  "Handcrafted ceramic vase with a modern minimalist design. Features a beautiful sage green glaze that complements any home decor style.",
		Price:        "45.00",
		CategoryID:   "cat-2",
		CategoryName: "Home & Living",
		Image:        "https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=800",
			"https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=800",
		},
		SellerID:    "seller-2",
		SellerName:  "HomeStyle",
		Stock:       28,
		Status:      "active",
		Rating:      "4.9",
		ReviewCount: 87,
	})
	s.products.seed("prod-3", Product{
		Name:         "Leather Crossbody Bag",
		Description:  "Genuine leather crossbody bag with adjustable strap and gold hardware. Multiple compartments for organized storage. Perfect for daily use or special occasions.",
		Price:        "189.99",
		CategoryID:   "cat-1",
		CategoryName: "Fashion & Accessories",
		Image:        "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800",
			"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800",
		},
		SellerID:    "seller-3",
		SellerName:  "LuxeGoods",
		Stock:       15,
		Status:      "active",
		Rating:      "4.7",
		ReviewCount: 203,
	})
	s.products.seed("prod-4", Product{
		Name:         "Wireless Mechanical Keyboard",
		Description:  "Premium mechanical keyboard with RGB backlighting, aluminum frame, and hot-swappable switches. Compatible with Windows, Mac, and Linux.",
		Price:        "149.99",
		CategoryID:   "cat-3",
		CategoryName: "Electronics & Tech",
		Image:        "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800",
			"https://images.unsplash.com/photo-1595225476474-87563907a212?w=800",
		},
		SellerID:    "seller-4",
		SellerName:  "TechGear",
		Stock:       32,
		Status:      "active",
		Rating:      "4.6",
		ReviewCount: 156,
	})
	s.products.seed("prod-5", Product{
		Name:         "Artisanal Scented Candle",
		Description:  "Hand-poured soy wax candle with natural essential oils. Features a clean-burning wooden wick and comes in a reusable frosted glass container.",
		Price:        "28.00",
		CategoryID:   "cat-2",
		CategoryName: "Home & Living",
		Image:        "https://images.unsplash.com/photo-1602874801006-a7b7e740e39e?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1602874801006-a7b7e740e39e?w=800",
			"https://images.unsplash.com/photo-1603006905003-be475563bc59?w=800",
		},
		SellerID:    "seller-5",
		SellerName:  "CozyCraft",
		Stock:       67,
		Status:      "active",
		Rating:      "5.0",
		ReviewCount: 94,
	})
	s.products.seed("prod-6", Product{
		Name:         "Premium Headphones",
		Description:  "Over-ear noise-canceling headphones with premium sound quality, 30-hour battery life, and comfortable memory foam ear cushions.",
		Price:        "299.99",
		CategoryID:   "cat-3",
		CategoryName: "Electronics & Tech",
		Image:        "https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800",
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
		},
		SellerID:    "seller-1",
		SellerName:  "AudioPro",
		Stock:       21,
		Status:      "active",
		Rating:      "4.9",
		ReviewCount: 267,
	})
	s.products.seed("prod-7", Product{
		Name:         "Stainless Steel Water Bottle",
		Description:  "Insulated stainless steel water bottle keeps drinks cold for 24 hours or hot for 12 hours. BPA-free, leak-proof design in ocean blue.",
		Price:        "35.00",
		CategoryID:   "cat-2",
		CategoryName: "Home & Living",
		Image:        "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800",
			"https://images.unsplash.com/photo-1523362628745-0c100150b504?w=800",
		},
		SellerID:    "seller-6",
		SellerName:  "EcoLife",
		Stock:       89,
		Status:      "active",
		Rating:      "4.8",
		ReviewCount: 178,
	})
	s.products.seed("prod-8", Product{
		Name:         "Macrame Wall Hanging",
		Description:  "Handcrafted macrame wall art made from natural cotton rope. Adds a bohemian touch to any room. Comes with wooden dowel for easy hanging.",
		Price:        "65.00",
		CategoryID:   "cat-2",
		CategoryName: "Home & Living",
		Image:        "https://images.unsplash.com/photo-1617098900591-3f90928e8c54?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1617098900591-3f90928e8c54?w=800",
			"https://images.unsplash.com/photo-1618220924273-338d82d6f886?w=800",
		},
		SellerID:    "seller-7",
		SellerName:  "HandmadeHome",
		Stock:       12,
		Status:      "active",
		Rating:      "4.7",
		ReviewCount: 52,
	})

	s.reviews = []Review{
		{
			Quote:  "I found exactly what I was looking for! The quality is outstanding and the seller was incredibly responsive. Will definitely shop here again.",
			Name:   "Sarah Mitchell",
			Role:   "Customer",
			Avatar: "https://unsplash.com/photos/closeup-photography-of-woman-smiling-mEZ3PoFGs_k",
		},
	}
}
