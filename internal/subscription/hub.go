// Package subscription implementa la notificación de cambios en proceso:
// los casos de uso publican sobre un topic después de confirmar una escritura
// y los consumidores (websocket handlers) releen un snapshot fresco por cada
// señal recibida. La señal no lleva datos; el snapshot completo siempre se
// consulta al almacén, que es la única fuente de verdad.
package subscription

import (
	"fmt"
	"sync"
)

// Topics por tipo de colección, delimitados por usuario para no cruzar
// notificaciones entre namespaces.
func TopicItems(userID string) string        { return fmt.Sprintf("items/%s", userID) }
func TopicTransactions(userID string) string { return fmt.Sprintf("transactions/%s", userID) }

// Hub fan-out de señales de cambio por topic.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[int]chan struct{}
	nextID int
}

// NewHub construye el hub.
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[int]chan struct{})}
}

// Subscribe registra interés en un topic. Devuelve el canal de señales y la
// función de desuscripción, que DEBE llamarse al terminar el consumidor para
// no dejar suscriptores colgados.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[int]chan struct{})
	}
	id := h.nextID
	h.nextID++

	// Buffer 1: las señales se colapsan, el consumidor relee el snapshot
	// completo así que una señal pendiente ya cubre todas las anteriores.
	ch := make(chan struct{}, 1)
	h.topics[topic][id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.topics[topic]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	return ch, unsubscribe
}

// Publish señala a todos los suscriptores del topic. Nunca bloquea: si el
// suscriptor aún no consumió la señal anterior, la nueva se descarta porque
// el snapshot que va a releer ya incluirá este cambio.
func (h *Hub) Publish(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.topics[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
