package destino

import "context"

// Repository define as operações de persistência de destinos
type Repository interface {
	// Upsert insere ou substitui o destino pelo código
	Upsert(ctx context.Context, d *Destino) error
	Listar(ctx context.Context) ([]*Destino, error)
}
