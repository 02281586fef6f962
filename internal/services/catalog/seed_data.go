package catalog

import (
	"time"

	"github.com/avdonin/grocery-catalog/internal/models"
)

// SampleProducts возвращает демонстрационный набор товаров для пересева.
// created_at разнесены по времени, чтобы порядок "последних поступлений"
// был детерминированным.
func SampleProducts() []models.Product {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(i int) time.Time { return base.Add(time.Duration(i) * time.Hour) }

	return []models.Product{
		{
			Name: "apple-gala", Title: "Gala Apples 1kg", Brand: "GreenFields",
			Category: "Fruits", Price: 2.49, Rating: 4.6,
			Description: "Crisp and sweet Gala apples, perfect for snacking.",
			Stock:       120, Image: "/images/apple-gala.jpg",
			Reviews: []models.Review{
				{Name: "Olga", Rating: 5, Comment: "Very fresh, kids love them.", Date: at(1)},
				{Name: "Marcus", Rating: 4, Comment: "Good value for the price.", Date: at(2)},
			},
			CreatedAt: at(0),
		},
		{
			Name: "banana-cavendish", Title: "Cavendish Bananas 1kg", Brand: "TropicSun",
			Category: "Fruits", Price: 1.29, Rating: 4.4,
			Description: "Ripe Cavendish bananas sourced from certified farms.",
			Stock:       200, Image: "/images/banana.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(1),
		},
		{
			Name: "orange-navel", Title: "Navel Oranges 1kg", Brand: "TropicSun",
			Category: "Fruits", Price: 2.99, Rating: 4.5,
			Description: "Juicy seedless navel oranges, rich in vitamin C.",
			Stock:       90, Image: "/images/orange.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(2),
		},
		{
			Name: "strawberry-box", Title: "Strawberries 400g", Brand: "GreenFields",
			Category: "Fruits", Price: 3.79, Rating: 4.8,
			Description: "Sweet seasonal strawberries picked at peak ripeness.",
			Stock:       45, Image: "/images/strawberry.jpg",
			Reviews: []models.Review{
				{Name: "Ivan", Rating: 5, Comment: "Best berries this season.", Date: at(4)},
			},
			CreatedAt: at(3),
		},
		{
			Name: "blueberry-box", Title: "Blueberries 250g", Brand: "BerryBarn",
			Category: "Fruits", Price: 4.49, Rating: 4.7,
			Description: "Plump antioxidant-rich blueberries.",
			Stock:       60, Image: "/images/blueberry.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(4),
		},
		{
			Name: "carrot-bag", Title: "Carrots 1kg", Brand: "GreenFields",
			Category: "Vegetables", Price: 0.99, Rating: 4.3,
			Description: "Crunchy carrots, great for soups and salads.",
			Stock:       150, Image: "/images/carrot.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(5),
		},
		{
			Name: "tomato-vine", Title: "Vine Tomatoes 500g", Brand: "SunHarvest",
			Category: "Vegetables", Price: 2.19, Rating: 4.2,
			Description: "Aromatic vine-ripened tomatoes.",
			Stock:       80, Image: "/images/tomato.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(6),
		},
		{
			Name: "cucumber-pack", Title: "Cucumbers 3pcs", Brand: "SunHarvest",
			Category: "Vegetables", Price: 1.49, Rating: 4.1,
			Description: "Fresh crisp cucumbers.",
			Stock:       110, Image: "/images/cucumber.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(7),
		},
		{
			Name: "potato-bag", Title: "Potatoes 2.5kg", Brand: "GreenFields",
			Category: "Vegetables", Price: 2.89, Rating: 4.0,
			Description: "All-purpose potatoes for baking and mashing.",
			Stock:       140, Image: "/images/potato.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(8),
		},
		{
			Name: "milk-whole", Title: "Whole Milk 1L", Brand: "DairyPure",
			Category: "Dairy", Price: 1.19, Rating: 4.5,
			Description: "Pasteurized whole milk, 3.2% fat.",
			Stock:       180, Image: "/images/milk.jpg",
			Reviews: []models.Review{
				{Name: "Anna", Rating: 5, Comment: "Tastes like from the farm.", Date: at(10)},
			},
			CreatedAt: at(9),
		},
		{
			Name: "butter-sweet", Title: "Sweet Cream Butter 200g", Brand: "DairyPure",
			Category: "Dairy", Price: 2.59, Rating: 4.6,
			Description: "Churned sweet cream butter, 82% fat.",
			Stock:       95, Image: "/images/butter.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(10),
		},
		{
			Name: "yogurt-greek", Title: "Greek Yogurt 500g", Brand: "OlympusDairy",
			Category: "Dairy", Price: 2.99, Rating: 4.7,
			Description: "Thick strained Greek yogurt, 10% fat.",
			Stock:       70, Image: "/images/yogurt.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(11),
		},
		{
			Name: "cheese-gouda", Title: "Gouda Cheese 300g", Brand: "OlympusDairy",
			Category: "Dairy", Price: 4.99, Rating: 4.8,
			Description: "Aged Gouda with a nutty flavor.",
			Stock:       55, Image: "/images/gouda.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(12),
		},
		{
			Name: "bread-sourdough", Title: "Sourdough Loaf 600g", Brand: "StoneOven",
			Category: "Bakery", Price: 3.49, Rating: 4.9,
			Description: "Slow-fermented sourdough with a crunchy crust.",
			Stock:       40, Image: "/images/sourdough.jpg",
			Reviews: []models.Review{
				{Name: "Pavel", Rating: 5, Comment: "Crust is perfect.", Date: at(14)},
				{Name: "Lena", Rating: 5, Comment: "Buying it every week.", Date: at(15)},
			},
			CreatedAt: at(13),
		},
		{
			Name: "croissant-pack", Title: "Butter Croissants 4pcs", Brand: "StoneOven",
			Category: "Bakery", Price: 3.99, Rating: 4.5,
			Description: "Flaky croissants baked with real butter.",
			Stock:       65, Image: "/images/croissant.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(14),
		},
		{
			Name: "bagel-sesame", Title: "Sesame Bagels 5pcs", Brand: "StoneOven",
			Category: "Bakery", Price: 2.79, Rating: 4.2,
			Description: "Boiled and baked sesame bagels.",
			Stock:       75, Image: "/images/bagel.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(15),
		},
		{
			Name: "orange-juice", Title: "Orange Juice 1L", Brand: "TropicSun",
			Category: "Beverages", Price: 2.29, Rating: 4.3,
			Description: "100% squeezed orange juice, not from concentrate.",
			Stock:       130, Image: "/images/orange-juice.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(16),
		},
		{
			Name: "green-tea", Title: "Green Tea 20 bags", Brand: "LeafLore",
			Category: "Beverages", Price: 3.19, Rating: 4.4,
			Description: "Delicate sencha green tea in biodegradable bags.",
			Stock:       100, Image: "/images/green-tea.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(17),
		},
		{
			Name: "coffee-beans", Title: "Arabica Coffee Beans 500g", Brand: "RoastHouse",
			Category: "Beverages", Price: 8.99, Rating: 4.8,
			Description: "Medium roast single-origin arabica beans.",
			Stock:       50, Image: "/images/coffee.jpg",
			Reviews: []models.Review{
				{Name: "Dmitry", Rating: 5, Comment: "Great crema, rich taste.", Date: at(19)},
			},
			CreatedAt: at(18),
		},
		{
			Name: "sparkling-water", Title: "Sparkling Water 6x500ml", Brand: "ClearSpring",
			Category: "Beverages", Price: 2.99, Rating: 4.1,
			Description: "Naturally carbonated mineral water.",
			Stock:       160, Image: "/images/sparkling.jpg",
			Reviews:   []models.Review{},
			CreatedAt: at(19),
		},
	}
}
