package domain

type Book struct {
	ID                int32  `json:"id"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	ISBN              string `json:"isbn"`
	AvailableQuantity int32  `json:"available_quantity"`
	ShelfLocation     string `json:"shelf_location"`
}
