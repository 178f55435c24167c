package auth

// Role es el rol de un usuario. Conjunto cerrado: no hay roles dinámicos.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRegistrar Role = "registrar"
	RoleUser      Role = "user"
)

// ParseRole valida un rol serializado (login, storage).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleRegistrar, RoleUser:
		return Role(s), true
	}
	return "", false
}

// OneOf es el chequeo de capacidad: cada operación declara su set de
// roles permitidos y esto es pertenencia simple a ese set.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Identity representa la información del usuario autenticado en un request.
// Se pasa explícita a las operaciones; no hay estado ambiente por sesión.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}
