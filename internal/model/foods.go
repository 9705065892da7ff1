package model

type Food struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	CafeteriaID string  `json:"cafeteria_id"`
}

type AddFoodDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	CafeteriaID string  `json:"cafeteria_id"`
}
