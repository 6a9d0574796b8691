package entity

import "time"

// User representa una cuenta de la aplicación. Su ID es el namespace que
// delimita el catálogo y el log de transacciones de ese usuario.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
