package auditoria

import "context"

// Repository define a escrita da trilha de auditoria. Não há leitura pela
// API; a trilha existe para perícia direto no banco.
type Repository interface {
	Registrar(ctx context.Context, e *Entrada) error
}
