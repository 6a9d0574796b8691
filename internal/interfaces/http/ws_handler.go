package http

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
	"github.com/stockkasir/stockkasir-api/internal/subscription"
	"github.com/stockkasir/stockkasir-api/pkg/jwt"
	"github.com/stockkasir/stockkasir-api/pkg/logger"
)

// WSHandler expone snapshots en vivo del catálogo y del historial por
// websocket. El protocolo es snapshot completo: tras conectar se envía el
// estado actual y, por cada señal del hub, se relee y reenvía entero. El
// cliente nunca aplica deltas.
type WSHandler struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
	hub      *subscription.Hub
	log      *logger.Logger
}

// NewWSHandler construye el handler.
func NewWSHandler(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository, hub *subscription.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{itemRepo: itemRepo, txRepo: txRepo, hub: hub, log: log}
}

// UpgradeMiddleware autentica y valida el upgrade. Los navegadores no pueden
// fijar headers en el handshake de websocket, así que también se acepta el
// token por query param.
func UpgradeMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			auth := c.Get("Authorization")
			if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
				token = after
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token requerido"})
		}
		userID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// Items stream del catálogo: GET /ws/items?token=...
func (h *WSHandler) Items() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(LocalUserID).(string)
		h.stream(conn, subscription.TopicItems(userID), func() (any, error) {
			items, err := h.itemRepo.ListByUser(userID)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ItemResponse, 0, len(items))
			for _, it := range items {
				out = append(out, report.ToItemResponse(it))
			}
			return out, nil
		})
	})
}

// Transactions stream del historial: GET /ws/transactions?token=...
func (h *WSHandler) Transactions() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(LocalUserID).(string)
		h.stream(conn, subscription.TopicTransactions(userID), func() (any, error) {
			txs, err := h.txRepo.ListByUser(userID, repository.TransactionFilter{})
			if err != nil {
				return nil, err
			}
			out := make([]dto.TransactionResponse, 0, len(txs))
			for _, tx := range txs {
				out = append(out, dto.TransactionResponse{
					ID:       tx.ID,
					ItemID:   tx.ItemID,
					ItemName: tx.ItemName,
					Unit:     tx.Unit,
					Type:     tx.Type,
					Quantity: tx.Quantity,
					Actor:    tx.Actor,
					Date:     tx.Date,
					Notes:    tx.Notes,
				})
			}
			return out, nil
		})
	})
}

// stream envía el snapshot inicial y reenvía uno fresco por cada señal.
// La goroutine lectora solo sirve para detectar el cierre del cliente.
func (h *WSHandler) stream(conn *websocket.Conn, topic string, snapshot func() (any, error)) {
	signals, unsubscribe := h.hub.Subscribe(topic)
	defer unsubscribe()
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		payload, err := snapshot()
		if err != nil {
			h.log.Error().Err(err).Str("topic", topic).Msg("ws: snapshot falló")
			return false
		}
		if err := conn.WriteJSON(payload); err != nil {
			return false
		}
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-signals:
			if !send() {
				return
			}
		case <-done:
			return
		}
	}
}
