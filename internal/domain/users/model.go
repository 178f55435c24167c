package users

import (
	"time"

	"stray-adoption/internal/ports/auth"
)

// User es la tripleta credencial del sistema. Inmutable una vez creado;
// no hay endpoints de alta ni cambio de password expuestos.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         auth.Role
	CreatedAt    time.Time
}
