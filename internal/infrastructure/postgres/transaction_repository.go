package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx). El log es append-only: este adaptador
// no tiene UPDATE ni DELETE sobre la tabla transactions.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txColumns = `id, user_id, item_id, item_name, unit, type, quantity, actor, date, notes`

// Create anexa un movimiento al log.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, user_id, item_id, item_name, unit, type, quantity, actor, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.UserID, tx.ItemID, tx.ItemName, tx.Unit, tx.Type,
		tx.Quantity, tx.Actor, tx.Date, tx.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(userID, id string) (*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1 AND id = $2`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&t.ID, &t.UserID, &t.ItemID, &t.ItemName, &t.Unit, &t.Type,
		&t.Quantity, &t.Actor, &t.Date, &t.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListByUser lista el log por fecha descendente con filtros opcionales.
func (r *TransactionRepo) ListByUser(userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date DESC`

	return r.list(query, args, "list transactions")
}

// ListByDateRange lista los movimientos con date en [from, to] inclusive,
// por fecha descendente. Base del reporte de acumulación.
func (r *TransactionRepo) ListByDateRange(userID string, from, to time.Time) ([]*entity.Transaction, error) {
	query := `SELECT ` + txColumns + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC`
	return r.list(query, []any{userID, from, to}, "list transactions by date range")
}

func (r *TransactionRepo) list(query string, args []any, op string) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.ItemID, &t.ItemName, &t.Unit, &t.Type,
			&t.Quantity, &t.Actor, &t.Date, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
