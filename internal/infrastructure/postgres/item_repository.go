package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, user_id, name, sku, unit, quantity, low_stock_threshold, urgent_note, created_at, updated_at`

// Create persiste un nuevo artículo. Quantity debe venir en 0 desde el caso de uso.
func (r *ItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, user_id, name, sku, unit, quantity, low_stock_threshold, urgent_note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Name, item.SKU, item.Unit, item.Quantity,
		item.LowStockThreshold, item.UrgentNote, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID dentro del namespace del usuario.
// Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(userID, id string) (*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE user_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, id), "get stock item")
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Es la relectura dentro de la transacción que impide lost updates entre
// movimientos concurrentes sobre el mismo artículo.
func (r *ItemRepo) GetForUpdate(userID, id string) (*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE user_id = $1 AND id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, id), "get stock item for update")
}

// Update actualiza los campos de catálogo. La columna quantity no aparece en
// el SET: el stock solo se muta vía UpdateQuantity dentro del motor de movimientos.
func (r *ItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $3, unit = $4, low_stock_threshold = $5, urgent_note = $6, updated_at = $7
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		item.UserID, item.ID, item.Name, item.Unit, item.LowStockThreshold,
		item.UrgentNote, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe la nueva cantidad. Solo se invoca dentro de la
// transacción del motor de movimientos, después de GetForUpdate.
func (r *ItemRepo) UpdateQuantity(userID, id string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET quantity = $3, updated_at = now() WHERE user_id = $1 AND id = $2`,
		userID, id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista el catálogo del usuario ordenado por nombre ascendente.
func (r *ItemRepo) ListByUser(userID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE user_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.Name, &it.SKU, &it.Unit, &it.Quantity,
			&it.LowStockThreshold, &it.UrgentNote, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un artículo. Las transacciones históricas no se tocan.
func (r *ItemRepo) Delete(userID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_items WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.SKU, &it.Unit, &it.Quantity,
		&it.LowStockThreshold, &it.UrgentNote, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
