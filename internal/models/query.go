package models

// Направления сортировки в ListQuery.
const (
	OrderAsc  = 1
	OrderDesc = -1
)

// Ключи сортировки, не зависящие от конкретного хранилища.
const (
	SortByCreatedAt = "createdAt"
	SortByPrice     = "price"
	SortByRating    = "rating"
	SortByName      = "name"
	SortByTitle     = "title"
	SortByBrand     = "brand"
	SortByCategory  = "category"
)

// ListQuery — проверенное описание фильтрации, сортировки и пагинации
// списка товаров. Все предикаты объединяются через AND; Search разворачивается
// в OR-группу подстрочных совпадений по полям name/title/brand/category.
// MinPrice и MaxPrice — включительные границы, каждая может отсутствовать.
type ListQuery struct {
	Search   string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Order    int
	Page     int
	Limit    int
}

// Offset возвращает смещение первой записи запрошенной страницы.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination — метаданные страницы; Total и Pages считаются по всей
// отфильтрованной выборке, а не по возвращённой странице.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ProductPage — страница каталога вместе с метаданными пагинации.
type ProductPage struct {
	Items      []*Product `json:"items"`
	Pagination Pagination `json:"pagination"`
}
