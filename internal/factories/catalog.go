package factories

import "github.com/bitexhq/bitemetrics/internal/models"

// Catalog returns the fixed demo menu the mock dataset is priced against.
func Catalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Old Delhi Butter Chicken", Category: models.CategoryMain, SellingPrice: 850, CostPrice: 220},
		{ID: "2", Name: "Awadhi Mutton Biryani", Category: models.CategoryMain, SellingPrice: 1250, CostPrice: 380},
		{ID: "3", Name: "Paneer Tikka Multani", Category: models.CategoryAppetizer, SellingPrice: 550, CostPrice: 150},
		{ID: "4", Name: "Tandoori Jhinga (Prawns)", Category: models.CategoryMain, SellingPrice: 1550, CostPrice: 520},
		{ID: "5", Name: "Kesari Rasmalai", Category: models.CategoryDessert, SellingPrice: 420, CostPrice: 90},
		{ID: "6", Name: "Mango Lassi Supreme", Category: models.CategoryBeverage, SellingPrice: 280, CostPrice: 60},
		{ID: "7", Name: "Galouti Kebab", Category: models.CategoryAppetizer, SellingPrice: 650, CostPrice: 180},
		{ID: "8", Name: "Dal Makhani Bukhara", Category: models.CategoryMain, SellingPrice: 620, CostPrice: 140},
		{ID: "9", Name: "Gulab Jamun with Rabri", Category: models.CategoryDessert, SellingPrice: 380, CostPrice: 80},
		{ID: "10", Name: "Masala Kokum Cooler", Category: models.CategoryBeverage, SellingPrice: 240, CostPrice: 40},
		{ID: "11", Name: "Hyderabadi Veg Biryani", Category: models.CategoryMain, SellingPrice: 750, CostPrice: 190},
		{ID: "12", Name: "Samosa Chaat Platter", Category: models.CategoryAppetizer, SellingPrice: 350, CostPrice: 85},
		{ID: "13", Name: "Kashmiri Rogan Josh", Category: models.CategoryMain, SellingPrice: 1100, CostPrice: 340},
		{ID: "14", Name: "Gajar Ka Halwa", Category: models.CategoryDessert, SellingPrice: 320, CostPrice: 70},
		{ID: "15", Name: "Assamese Masala Tea", Category: models.CategoryBeverage, SellingPrice: 150, CostPrice: 30},
		{ID: "16", Name: "Malai Kofta Mughlai", Category: models.CategoryMain, SellingPrice: 720, CostPrice: 160},
		{ID: "17", Name: "Amritsari Fish Fry", Category: models.CategoryAppetizer, SellingPrice: 880, CostPrice: 260},
		{ID: "18", Name: "Shahi Tukda with Thandai", Category: models.CategoryDessert, SellingPrice: 450, CostPrice: 110},
		{ID: "19", Name: "Palak Paneer", Category: models.CategoryMain, SellingPrice: 680, CostPrice: 150},
		{ID: "20", Name: "Pink Guava Chilli Sip", Category: models.CategoryBeverage, SellingPrice: 260, CostPrice: 55},
	}
}
