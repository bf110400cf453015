package main

import (
	"time"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// seedDemoData populates an empty store with the demo bazaar: five users
// with their friendships, a dozen listings, and a handful of feed posts.
// A store that already has users is left alone.
func seedDemoData(st *store.Store) bool {
	if len(st.Users()) > 0 {
		return false
	}

	seedUsers(st)
	seedProducts(st)
	seedPosts(st)
	_ = st.SetCurrentUser("user_1")
	return true
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func stamp(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func seedUsers(st *store.Store) {
	users := []models.User{
		{
			ID: "user_1", Username: "aayush_sharma", Name: "Aayush Sharma",
			Email: "aayush@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Aayush",
			Bio: "Tech enthusiast and seller from Kathmandu 🇳🇵", Location: "Kathmandu, Nepal",
			XP: 450, BazaarTokens: 12, Friends: []string{"user_2", "user_3"}, JoinedDate: day("2024-01-15"),
		},
		{
			ID: "user_2", Username: "priya_thapa", Name: "Priya Thapa",
			Email: "priya@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
			Bio: "Fashion lover | Vintage collector 💍", Location: "Pokhara, Nepal",
			XP: 780, BazaarTokens: 25, Friends: []string{"user_1", "user_3", "user_4"}, JoinedDate: day("2023-11-20"),
		},
		{
			ID: "user_3", Username: "rohan_kc", Name: "Rohan KC",
			Email: "rohan@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Rohan",
			Bio: "Gaming setup specialist 🎮", Location: "Lalitpur, Nepal",
			XP: 1250, BazaarTokens: 8, Friends: []string{"user_1", "user_2", "user_4"}, JoinedDate: day("2023-08-10"),
		},
		{
			ID: "user_4", Username: "sunita_gurung", Name: "Sunita Gurung",
			Email: "sunita@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sunita",
			Bio: "Handmade jewelry creator ✨", Location: "Butwal, Nepal",
			XP: 620, BazaarTokens: 15, Friends: []string{"user_2", "user_3", "user_5"}, JoinedDate: day("2024-02-01"),
		},
		{
			ID: "user_5", Username: "bikash_rai", Name: "Bikash Rai",
			Email: "bikash@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Bikash",
			Bio: "Electronics & gadgets 📱", Location: "Biratnagar, Nepal",
			XP: 920, BazaarTokens: 18, Friends: []string{"user_4"}, JoinedDate: day("2023-12-05"),
		},
	}
	for _, u := range users {
		st.AddUser(u)
	}
}

func seedProducts(st *store.Store) {
	products := []models.Product{
		{
			ID: "prod_1", Title: "Premium Wireless Headphones - Sony WH-1000XM5",
			Description: "High-quality wireless headphones with industry-leading noise cancellation. 30-hour battery life, multipoint connection, and premium sound quality. Perfect condition, barely used.",
			Price:       3499, Condition: models.ConditionAlmostNew, Category: "Electronics",
			Images:   []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500"},
			SellerID: "user_1", CreatedAt: stamp("2025-01-20T10:30:00Z"), Rating: 4.8,
		},
		{
			ID: "prod_2", Title: "Vintage Leather Messenger Bag",
			Description: "Beautiful vintage leather messenger bag in excellent condition. Genuine leather, multiple compartments, adjustable strap. A timeless classic piece.",
			Price:       2499, Condition: models.ConditionUsed, Category: "Fashion",
			Images:   []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500"},
			SellerID: "user_2", CreatedAt: stamp("2025-01-19T14:20:00Z"), Rating: 4.5,
		},
		{
			ID: "prod_3", Title: "Gaming Keyboard RGB - Mechanical Switches",
			Description: "Brand new mechanical gaming keyboard with customizable RGB lighting, tactile switches, and anti-ghosting technology. Perfect for gaming and productivity.",
			Price:       4299, Condition: models.ConditionNew, Category: "Electronics",
			Images:   []string{"https://images.unsplash.com/photo-1595225476474-87563907a212?w=500"},
			SellerID: "user_3", CreatedAt: stamp("2025-01-18T09:15:00Z"), Rating: 4.7,
		},
		{
			ID: "prod_4", Title: "Handmade Silver Necklace Set",
			Description: "Gorgeous handmade silver necklace with matching earrings. Traditional Nepali design with modern touch. Perfect for special occasions.",
			Price:       5999, Condition: models.ConditionNew, Category: "Jewelry",
			Images:   []string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=500"},
			SellerID: "user_4", CreatedAt: stamp("2025-01-17T16:45:00Z"), Rating: 5.0,
		},
		{
			ID: "prod_5", Title: "Smart Watch Pro - Fitness Tracker",
			Description: "Feature-rich smartwatch with heart rate monitoring, GPS, sleep tracking, and 7-day battery life. Compatible with both iOS and Android.",
			Price:       8999, Condition: models.ConditionNew, Category: "Electronics",
			Images:   []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500"},
			SellerID: "user_5", CreatedAt: stamp("2025-01-16T11:00:00Z"), Rating: 4.6,
		},
		{
			ID: "prod_6", Title: "Mountain Bike - 21 Speed Shimano",
			Description: "Durable mountain bike with 21-speed Shimano gear system. Perfect for trails and city roads. Well maintained, minor scratches only.",
			Price:       15999, Condition: models.ConditionUsed, Category: "Sports",
			Images:   []string{"https://images.unsplash.com/photo-1576435728678-68d0fbf94e91?w=500"},
			SellerID: "user_1", CreatedAt: stamp("2025-01-15T08:30:00Z"), Rating: 4.4,
		},
		{
			ID: "prod_7", Title: "Bluetooth Speaker Portable - JBL",
			Description: "Waterproof portable speaker with 360-degree sound and 12-hour battery. Perfect for outdoor adventures and parties.",
			Price:       2799, Condition: models.ConditionAlmostNew, Category: "Electronics",
			Images:   []string{"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500"},
			SellerID: "user_3", CreatedAt: stamp("2025-01-14T15:20:00Z"), Rating: 4.8,
		},
		{
			ID: "prod_8", Title: "Designer Sunglasses - Ray-Ban Style",
			Description: "Stylish sunglasses with UV protection and polarized lenses. Classic design that never goes out of style.",
			Price:       1899, Condition: models.ConditionNew, Category: "Fashion",
			Images:   []string{"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500"},
			SellerID: "user_2", CreatedAt: stamp("2025-01-13T12:10:00Z"), Rating: 4.3,
		},
		{
			ID: "prod_9", Title: "Coffee Maker Deluxe - Programmable",
			Description: "Professional-grade coffee maker with multiple brewing options, timer, and keep-warm function. Makes perfect coffee every time.",
			Price:       6499, Condition: models.ConditionNew, Category: "Home",
			Images:   []string{"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500"},
			SellerID: "user_4", CreatedAt: stamp("2025-01-12T10:00:00Z"), Rating: 4.5,
		},
		{
			ID: "prod_10", Title: "Running Shoes - Nike Air Zoom",
			Description: "Lightweight running shoes with cushioned sole and breathable mesh. Perfect for daily runs and workouts.",
			Price:       5499, Condition: models.ConditionNew, Category: "Sports",
			Images:   []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500"},
			SellerID: "user_5", CreatedAt: stamp("2025-01-11T09:45:00Z"), Rating: 4.9,
		},
		{
			ID: "prod_11", Title: "Yoga Mat Premium - Extra Thick",
			Description: "Eco-friendly yoga mat with extra cushioning and non-slip surface. Perfect for yoga, pilates, and home workouts.",
			Price:       1299, Condition: models.ConditionNew, Category: "Sports",
			Images:   []string{"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500"},
			SellerID: "user_2", CreatedAt: stamp("2025-01-10T14:30:00Z"), Rating: 4.6,
		},
		{
			ID: "prod_12", Title: "Canvas Backpack - Vintage Style",
			Description: "Durable canvas backpack with laptop compartment and multiple pockets. Perfect for students and travelers.",
			Price:       1799, Condition: models.ConditionAlmostNew, Category: "Fashion",
			Images:   []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500"},
			SellerID: "user_1", CreatedAt: stamp("2025-01-09T11:20:00Z"), Rating: 4.4,
		},
	}
	for _, p := range products {
		st.AddProduct(p)
	}
}

func seedPosts(st *store.Store) {
	posts := []models.Post{
		{
			ID: "post_5", UserID: "user_5",
			Content:   "Just sold my first smart watch! 🎉 GharJoy community is the best!",
			ProductID: "prod_5", Likes: []string{"user_1", "user_3", "user_4"},
			CreatedAt: stamp("2025-01-15T13:00:00Z"),
		},
		{
			ID: "post_4", UserID: "user_1",
			Content: "Thanks to AI Mentor for helping me improve my product photos! Sales have increased by 30%! 📸🚀",
			Likes:   []string{"user_2", "user_5"},
			Comments: []models.Comment{
				{ID: "comment_4", UserID: "user_5", Content: "That's amazing! I should try the AI Mentor too.", CreatedAt: stamp("2025-01-16T12:00:00Z")},
			},
			CreatedAt: stamp("2025-01-16T11:30:00Z"),
		},
		{
			ID: "post_3", UserID: "user_4",
			Content:   "New handmade jewelry collection just dropped! 💍 Each piece is unique and crafted with love.",
			ProductID: "prod_4", Likes: []string{"user_2", "user_3", "user_5"},
			CreatedAt: stamp("2025-01-17T17:00:00Z"),
		},
		{
			ID: "post_2", UserID: "user_3",
			Content: "Reached Level 7: Market Legend! 🔥 Feeling proud of this journey with GharJoy!",
			Likes:   []string{"user_1", "user_2", "user_4", "user_5"},
			Comments: []models.Comment{
				{ID: "comment_2", UserID: "user_4", Content: "Congratulations! Well deserved! 🎉", CreatedAt: stamp("2025-01-18T10:00:00Z")},
				{ID: "comment_3", UserID: "user_1", Content: "Awesome achievement bro!", CreatedAt: stamp("2025-01-18T10:15:00Z")},
			},
			CreatedAt: stamp("2025-01-18T09:30:00Z"),
		},
		{
			ID: "post_1", UserID: "user_2",
			Content:   "Just listed my vintage leather messenger bag! Perfect condition and ready for a new owner. 💼✨",
			ProductID: "prod_2", Likes: []string{"user_1", "user_3", "user_4"},
			Comments: []models.Comment{
				{ID: "comment_1", UserID: "user_1", Content: "Beautiful bag! Is the leather genuine?", CreatedAt: stamp("2025-01-19T15:00:00Z")},
			},
			CreatedAt: stamp("2025-01-19T14:30:00Z"),
		},
	}
	// AddPost prepends, so feed order ends newest first.
	for _, p := range posts {
		st.AddPost(p)
	}
}
