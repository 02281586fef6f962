package models

import "time"

// Review — отзыв, встроенный в карточку товара.
type Review struct {
	Name    string    `json:"name"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// Product — запись каталога. Все скалярные поля обязательны.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	Reviews     []Review  `json:"reviews"`
	CreatedAt   time.Time `json:"createdAt"`
}
