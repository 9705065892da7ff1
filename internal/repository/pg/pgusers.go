package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sahill13/backendhost/internal/model"
)

func (r *Repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password, security_code, super_coins) VALUES ($1, $2, $3, $4, 0) RETURNING id`,
		user.Name, user.Email, user.Password, user.SecurityCode,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, security_code, super_coins, created_at FROM users WHERE lower(email) = lower($1)`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.SecurityCode, &user.SuperCoins, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, security_code, super_coins, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.SecurityCode, &user.SuperCoins, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetSuperCoins(ctx context.Context, userID int64) (int64, error) {
	var coins int64

	err := r.db.QueryRowContext(ctx, `SELECT super_coins FROM users WHERE id = $1`, userID).Scan(&coins)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, err
	}

	return coins, nil
}

// AddSuperCoins atomically credits the balance and returns the new total.
func (r *Repository) AddSuperCoins(ctx context.Context, userID, coins int64) (int64, error) {
	var total int64

	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET super_coins = super_coins + $1 WHERE id = $2 RETURNING super_coins`,
		coins, userID,
	).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, err
	}

	return total, nil
}

// RedeemSuperCoins debits the balance only when it covers the requested
// amount, so the balance can never go negative under concurrent redemptions.
func (r *Repository) RedeemSuperCoins(ctx context.Context, userID, amount int64) (int64, error) {
	var total int64

	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET super_coins = super_coins - $1 WHERE id = $2 AND super_coins >= $1 RETURNING super_coins`,
		amount, userID,
	).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, lookupErr := r.GetSuperCoins(ctx, userID); errors.Is(lookupErr, model.ErrNotFound) {
				return 0, model.ErrNotFound
			}
			return 0, model.ErrInsufficientFunds
		}
		return 0, err
	}

	return total, nil
}
