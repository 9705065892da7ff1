package model

type Admin struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"-"`
	CafeteriaID string `json:"cafeteria_id"`
}

type AddAdminDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CafeteriaID string `json:"cafeteria_id"`
}

type Cafeteria struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
