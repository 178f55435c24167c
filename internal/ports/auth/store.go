package auth

import "context"

// SessionStore asocia tokens opacos de cookie con identidades autenticadas.
// El logout borra el token del store, por eso las sesiones son revocables
// al instante (a diferencia de un token firmado).
type SessionStore interface {
	Create(ctx context.Context, token string, id Identity) error
	Get(ctx context.Context, token string) (Identity, bool)
	Delete(ctx context.Context, token string) error
}
