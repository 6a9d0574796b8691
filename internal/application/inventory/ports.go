package inventory

import (
	"context"

	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Es la unidad atómica que exige el
// motor de movimientos: o se escriben stock y transacción juntos, o ninguno.
//
// Las implementaciones deben mapear los conflictos transitorios de
// concurrencia (serialización, deadlock) a domain.ErrConflict para que el
// caso de uso pueda reintentar de forma acotada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// Notifier publica señales de cambio hacia la capa de suscripciones.
// Lo implementa subscription.Hub.
type Notifier interface {
	Publish(topic string)
}
