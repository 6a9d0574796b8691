package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
	"github.com/stockkasir/stockkasir-api/internal/subscription"
)

// maxAttempts reintentos ante conflictos transitorios de la transacción.
const maxAttempts = 3

// RecordMovementUseCase registra movimientos de stock de forma transaccional:
// releer la cantidad actual bajo bloqueo de fila (SELECT FOR UPDATE), verificar
// suficiencia, escribir la nueva cantidad y anexar la transacción inmutable,
// todo dentro de la misma unidad atómica. Así dos salidas concurrentes no
// pueden pasar ambas la verificación contra una cantidad obsoleta.
type RecordMovementUseCase struct {
	txRunner TxRunner
	notifier Notifier
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, notifier Notifier) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, notifier: notifier}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	UserID   string
	ItemID   string
	Type     string // entity.MovementTypeIn | entity.MovementTypeOut
	Quantity int
	Actor    string
	Unit     string
	Notes    string
}

// RecordMovement valida la entrada, ejecuta la unidad atómica con reintento
// acotado ante domain.ErrConflict y devuelve la transacción creada.
//
// Ante cualquier fallo (precondición o conflicto agotado) no queda escritura
// parcial: cantidad y log permanecen como estaban.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Transaction, error) {
	if input.UserID == "" || input.ItemID == "" || input.Actor == "" || input.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Transaction
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		created, err = uc.apply(ctx, input)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
	}
	if err != nil {
		// Reintentos agotados: se expone como fallo transitorio.
		return nil, err
	}

	uc.notifier.Publish(subscription.TopicItems(input.UserID))
	uc.notifier.Publish(subscription.TopicTransactions(input.UserID))
	return created, nil
}

// apply ejecuta un intento de la unidad atómica.
func (uc *RecordMovementUseCase) apply(ctx context.Context, input MovementInput) (*entity.Transaction, error) {
	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Releer la cantidad actual bajo bloqueo de fila: nunca confiar en una
		// copia del cliente, otro terminal pudo haber movido stock entre tanto.
		item, err := itemRepo.GetForUpdate(input.UserID, input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newQuantity := item.Quantity + input.Quantity
		if input.Type == entity.MovementTypeOut {
			if item.Quantity < input.Quantity {
				return &domain.InsufficientStockError{Available: item.Quantity, Requested: input.Quantity}
			}
			newQuantity = item.Quantity - input.Quantity
		}

		if err := itemRepo.UpdateQuantity(input.UserID, item.ID, newQuantity); err != nil {
			return err
		}

		// La transacción lleva el snapshot desnormalizado de nombre y unidad
		// tal como se leyeron dentro de la transacción.
		created = &entity.Transaction{
			ID:       uuid.New().String(),
			UserID:   input.UserID,
			ItemID:   item.ID,
			ItemName: item.Name,
			Unit:     item.Unit,
			Type:     input.Type,
			Quantity: input.Quantity,
			Actor:    input.Actor,
			Date:     time.Now(),
			Notes:    input.Notes,
		}
		return txRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*entity.Transaction, error) {
	return uc.RecordMovement(ctx, MovementInput{
		UserID:   userID,
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Actor:    in.Actor,
		Unit:     in.Unit,
		Notes:    in.Notes,
	})
}
