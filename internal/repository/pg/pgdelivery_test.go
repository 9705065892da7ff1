package pg

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahill13/backendhost/internal/model"
)

func TestRepository_CreateDeliveryPerson_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectQuery(`INSERT INTO delivery_persons \(name, phone, username, password, status, block\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) RETURNING id`).
		WithArgs("Ravi K", "9876543210", "ravi_k", "hashed", "Available", "mblock").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.CreateDeliveryPerson(context.Background(), model.DeliveryPerson{
		Name:     "Ravi K",
		Phone:    "9876543210",
		Username: "ravi_k",
		Password: "hashed",
		Block:    "mblock",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetDeliveryPersonByUsername_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectQuery(`SELECT id, name, phone, username, password, status, block FROM delivery_persons WHERE lower\(username\) = lower\(\$1\)`).
		WithArgs("Ravi_K").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "username", "password", "status", "block"}).
			AddRow(int64(9), "Ravi K", "9876543210", "ravi_k", "hashed", "Busy", "mblock"))

	mock.ExpectQuery(`SELECT id FROM orders WHERE delivery_person_id = \$1 AND status = \$2`).
		WithArgs(int64(9), "Out for Delivery").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(55)))

	person, err := repo.GetDeliveryPersonByUsername(context.Background(), "Ravi_K")

	require.NoError(t, err)
	assert.Equal(t, int64(9), person.ID)
	assert.Equal(t, model.DeliveryStatusBusy, person.Status)
	assert.Equal(t, []int64{55}, person.AssignedOrders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetDeliveryPersonByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectQuery(`FROM delivery_persons WHERE lower\(username\) = lower\(\$1\)`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	person, err := repo.GetDeliveryPersonByUsername(context.Background(), "ghost")

	assert.Nil(t, person)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignDeliveryPerson_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(55)).
		WillReturnRows(orderRow(55, model.OrderStatusCompleted))
	mock.ExpectQuery(`FROM delivery_persons`).
		WithArgs("Available", "mblock").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "username", "status", "block"}).
			AddRow(int64(9), "Ravi K", "9876543210", "ravi_k", "Available", "mblock"))
	mock.ExpectExec(`UPDATE orders SET status = \$1, delivery_person_id = \$2 WHERE id = \$3`).
		WithArgs("Out for Delivery", int64(9), int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE delivery_persons SET status = \$1 WHERE id = \$2`).
		WithArgs("Busy", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, person, err := repo.AssignDeliveryPerson(context.Background(), 55)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusOutForDelivery, order.Status)
	require.NotNil(t, order.DeliveryPersonID)
	assert.Equal(t, int64(9), *order.DeliveryPersonID)
	assert.Equal(t, model.DeliveryStatusBusy, person.Status)
	assert.Contains(t, person.AssignedOrders, int64(55))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignDeliveryPerson_AlreadyAssigned(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(55)).
		WillReturnRows(orderRow(55, model.OrderStatusOutForDelivery))
	mock.ExpectRollback()

	order, person, err := repo.AssignDeliveryPerson(context.Background(), 55)

	assert.Nil(t, order)
	assert.Nil(t, person)
	assert.ErrorIs(t, err, model.ErrAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignDeliveryPerson_NoCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(55)).
		WillReturnRows(orderRow(55, model.OrderStatusCompleted))
	mock.ExpectQuery(`FROM delivery_persons`).
		WithArgs("Available", "mblock").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	order, person, err := repo.AssignDeliveryPerson(context.Background(), 55)

	assert.Nil(t, order)
	assert.Nil(t, person)
	assert.ErrorIs(t, err, model.ErrNoCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignDeliveryPerson_OrderNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	order, person, err := repo.AssignDeliveryPerson(context.Background(), 404)

	assert.Nil(t, order)
	assert.Nil(t, person)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConfirmDelivery_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT delivery_person_id FROM orders WHERE id = \$1 AND lower\(status\) = lower\(\$2\) FOR UPDATE`).
		WithArgs(int64(55), "Out for Delivery").
		WillReturnRows(sqlmock.NewRows([]string{"delivery_person_id"}).AddRow(int64(9)))
	mock.ExpectQuery(`UPDATE orders SET status = \$1, delivered_at = now\(\), delivery_person_id = \$2`).
		WithArgs("Delivered", int64(9), int64(55)).
		WillReturnRows(orderRow(55, model.OrderStatusDelivered))
	mock.ExpectExec(`UPDATE delivery_persons SET status = \$1 WHERE id = \$2`).
		WithArgs("Available", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := repo.ConfirmDelivery(context.Background(), 55, 9)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConfirmDelivery_NotOutForDelivery(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT delivery_person_id FROM orders WHERE id = \$1 AND lower\(status\) = lower\(\$2\) FOR UPDATE`).
		WithArgs(int64(55), "Out for Delivery").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(55)).
		WillReturnRows(orderRow(55, model.OrderStatusDelivered))
	mock.ExpectRollback()

	order, err := repo.ConfirmDelivery(context.Background(), 55, 9)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConfirmDelivery_OrderNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT delivery_person_id FROM orders WHERE id = \$1 AND lower\(status\) = lower\(\$2\) FOR UPDATE`).
		WithArgs(int64(404), "Out for Delivery").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	order, err := repo.ConfirmDelivery(context.Background(), 404, 9)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
