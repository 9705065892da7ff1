package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sahill13/backendhost/internal/model"
)

func (r *Repository) CreateAdmin(ctx context.Context, admin model.Admin) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO admins (name, email, password, cafeteria_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		admin.Name, admin.Email, admin.Password, admin.CafeteriaID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, cafeteria_id FROM admins WHERE lower(email) = lower($1)`,
		email,
	).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CafeteriaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &admin, nil
}
