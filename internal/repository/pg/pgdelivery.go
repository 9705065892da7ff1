package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sahill13/backendhost/internal/model"
)

func (r *Repository) CreateDeliveryPerson(ctx context.Context, person model.DeliveryPerson) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO delivery_persons (name, phone, username, password, status, block) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		person.Name, person.Phone, person.Username, person.Password, model.DeliveryStatusAvailable, person.Block,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetDeliveryPersonByUsername(ctx context.Context, username string) (*model.DeliveryPerson, error) {
	var person model.DeliveryPerson

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone, username, password, status, block FROM delivery_persons WHERE lower(username) = lower($1)`,
		username,
	).Scan(&person.ID, &person.Name, &person.Phone, &person.Username, &person.Password, &person.Status, &person.Block)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	orders, err := r.assignedOrders(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	person.AssignedOrders = orders

	return &person, nil
}

// assignedOrders lists active assignments; orders out of flight define the
// Busy state, finished ones drop off the list automatically.
func (r *Repository) assignedOrders(ctx context.Context, personID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM orders WHERE delivery_person_id = $1 AND status = $2`,
		personID, model.OrderStatusOutForDelivery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// AssignDeliveryPerson matches the order to an Available person in its block
// and flips both records in one transaction. The person row is locked with
// SKIP LOCKED so two concurrent assignments never pick the same courier, and
// the order update stays conditional on its pre-assignment status.
func (r *Repository) AssignDeliveryPerson(ctx context.Context, orderID int64) (*model.Order, *model.DeliveryPerson, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	order, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, model.ErrNotFound
		}
		return nil, nil, err
	}

	if order.Status == model.OrderStatusOutForDelivery || order.Status == model.OrderStatusDelivered {
		return nil, nil, model.ErrAlreadyAssigned
	}

	var person model.DeliveryPerson
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, phone, username, status, block FROM delivery_persons
		WHERE status = $1 AND block = $2
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED`,
		model.DeliveryStatusAvailable, order.CafeteriaID,
	).Scan(&person.ID, &person.Name, &person.Phone, &person.Username, &person.Status, &person.Block)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, model.ErrNoCapacity
		}
		return nil, nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, delivery_person_id = $2 WHERE id = $3`,
		model.OrderStatusOutForDelivery, person.ID, orderID)
	if err != nil {
		return nil, nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE delivery_persons SET status = $1 WHERE id = $2`,
		model.DeliveryStatusBusy, person.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	order.Status = model.OrderStatusOutForDelivery
	order.DeliveryPersonID = &person.ID
	person.Status = model.DeliveryStatusBusy
	person.AssignedOrders = append(person.AssignedOrders, orderID)

	return order, &person, nil
}

// ConfirmDelivery closes out an order that is out for delivery: stamps the
// delivery time, records the confirming courier and frees the previously
// assigned one. Conditional on the current status, so a repeated confirmation
// surfaces as a state conflict instead of a double update.
func (r *Repository) ConfirmDelivery(ctx context.Context, orderID, confirmingPersonID int64) (*model.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var previous sql.NullInt64
	row := tx.QueryRowContext(ctx,
		`SELECT delivery_person_id FROM orders WHERE id = $1 AND lower(status) = lower($2) FOR UPDATE`,
		orderID, model.OrderStatusOutForDelivery)
	if err := row.Scan(&previous); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, lookupErr := r.GetOrderByID(ctx, orderID); lookupErr != nil {
				return nil, lookupErr
			}
			return nil, model.ErrStateConflict
		}
		return nil, err
	}

	order, err := scanOrder(tx.QueryRowContext(ctx,
		`UPDATE orders SET status = $1, delivered_at = now(), delivery_person_id = $2
		WHERE id = $3
		RETURNING `+orderColumns,
		model.OrderStatusDelivered, confirmingPersonID, orderID))
	if err != nil {
		return nil, err
	}

	if previous.Valid {
		_, err = tx.ExecContext(ctx,
			`UPDATE delivery_persons SET status = $1 WHERE id = $2`,
			model.DeliveryStatusAvailable, previous.Int64)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return order, nil
}
