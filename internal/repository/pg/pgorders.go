package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"

	"github.com/Sahill13/backendhost/internal/model"
)

const orderColumns = `id, order_number, user_id, items, amount, address, cafeteria_id, status, order_type,
	pickup_time, payment, payment_status, session_url, processor_order_id, processor_payment_id,
	processor_signature, redeemed_super_coins, delivery_person_id, date, delivered_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		order   model.Order
		items   []byte
		address sql.NullString
	)

	err := row.Scan(
		&order.ID, &order.Number, &order.UserID, &items, &order.Amount, &address,
		&order.CafeteriaID, &order.Status, &order.OrderType, &order.PickupTime,
		&order.Payment, &order.PaymentStatus, &order.SessionURL, &order.ProcessorOrderID,
		&order.ProcessorPaymentID, &order.ProcessorSignature, &order.RedeemedSuperCoins,
		&order.DeliveryPersonID, &order.Date, &order.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}
	if address.Valid {
		order.Address = json.RawMessage(address.String)
	}

	return &order, nil
}

// CreateOrder persists a new pending order and, when a discount was applied,
// debits the user balance in the same transaction. The balance condition is
// re-checked in SQL so a concurrent redemption cannot drive it negative.
func (r *Repository) CreateOrder(ctx context.Context, order model.Order, discount int64) (*model.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if discount > 0 {
		res, err := tx.ExecContext(ctx,
			`UPDATE users SET super_coins = super_coins - $1 WHERE id = $2 AND super_coins >= $1`,
			discount, order.UserID,
		)
		if err != nil {
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, model.ErrInsufficientFunds
		}
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	var address any
	if len(order.Address) > 0 {
		address = string(order.Address)
	}

	created := order
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, items, amount, address, cafeteria_id, status, order_type, pickup_time, redeemed_super_coins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, order_number, date`,
		order.UserID, items, order.Amount, address, order.CafeteriaID,
		model.OrderStatusPending, order.OrderType, order.PickupTime, order.RedeemedSuperCoins,
	).Scan(&created.ID, &created.Number, &created.Date)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	created.Status = model.OrderStatusPending
	return &created, nil
}

func (r *Repository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return order, nil
}

// ApproveOrder stores the processor session handle and moves the order to
// approved. The write is conditional on the order still being pending, so a
// concurrent reject or second approval loses cleanly.
func (r *Repository) ApproveOrder(ctx context.Context, orderID int64, processorOrderID, sessionURL string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, processor_order_id = $2, session_url = $3 WHERE id = $4 AND status = $5`,
		model.OrderStatusApproved, processorOrderID, sessionURL, orderID, model.OrderStatusPending,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetOrderByID(ctx, orderID); err != nil {
			return err
		}
		return model.ErrStateConflict
	}

	return nil
}

// RejectOrder moves any non-terminal order to rejected. Redeemed coins are
// intentionally not refunded.
func (r *Repository) RejectOrder(ctx context.Context, orderID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 AND status NOT IN ($3, $4)`,
		model.OrderStatusRejected, orderID, model.OrderStatusDelivered, model.OrderStatusRejected,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetOrderByID(ctx, orderID); err != nil {
			return err
		}
		return model.ErrStateConflict
	}

	return nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// MarkOrderPaid finalizes a verified payment: the order flips to completed /
// paid and the earned supercoins (1 per 50 spent, floored) are credited to
// the user inside the same transaction. Either both land or neither does.
// The write is conditional on the order still being approved and unpaid, so
// a replayed callback or a callback for a rejected order surfaces as a state
// conflict instead of a second credit.
func (r *Repository) MarkOrderPaid(ctx context.Context, orderID int64, processorPaymentID, signature string) (earned int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var (
		userID int64
		amount float64
	)
	err = tx.QueryRowContext(ctx,
		`UPDATE orders SET status = $1, payment = TRUE, payment_status = $2, processor_payment_id = $3, processor_signature = $4
		WHERE id = $5 AND payment = FALSE AND status = $6
		RETURNING user_id, amount`,
		model.OrderStatusCompleted, model.PaymentStatusPaid, processorPaymentID, signature, orderID, model.OrderStatusApproved,
	).Scan(&userID, &amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, lookupErr := r.GetOrderByID(ctx, orderID); lookupErr != nil {
				return 0, lookupErr
			}
			return 0, model.ErrStateConflict
		}
		return 0, err
	}

	earned = int64(math.Floor(amount / 50))
	if earned > 0 {
		res, err := tx.ExecContext(ctx,
			`UPDATE users SET super_coins = super_coins + $1 WHERE id = $2`, earned, userID)
		if err != nil {
			return 0, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, model.ErrNotFound
		}
	}

	return earned, tx.Commit()
}

func (r *Repository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}

	return result, rows.Err()
}

func (r *Repository) ListPaidOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE cafeteria_id = $1 AND payment = TRUE ORDER BY date DESC`,
		cafeteriaID)
}

func (r *Repository) ListPendingOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE cafeteria_id = $1 AND status = $2 ORDER BY date DESC`,
		cafeteriaID, model.OrderStatusPending)
}

func (r *Repository) ListDeliveryReadyOrders(ctx context.Context, block string) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE cafeteria_id = $1 AND payment = TRUE AND lower(status) = lower($2) ORDER BY date DESC`,
		block, model.OrderStatusOutForDelivery)
}

func (r *Repository) ListUserPaidOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND payment = TRUE ORDER BY date DESC`,
		userID)
}
