package pg

import (
	"context"

	"github.com/Sahill13/backendhost/internal/model"
)

func (r *Repository) CreateFood(ctx context.Context, food model.Food) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO foods (name, description, price, category, cafeteria_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		food.Name, food.Description, food.Price, food.Category, food.CafeteriaID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) ListFoods(ctx context.Context, cafeteriaID string) ([]model.Food, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, price, category, cafeteria_id FROM foods WHERE cafeteria_id = $1 ORDER BY id`,
		cafeteriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Food, 0)
	for rows.Next() {
		var food model.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category, &food.CafeteriaID); err != nil {
			return nil, err
		}
		result = append(result, food)
	}

	return result, rows.Err()
}
