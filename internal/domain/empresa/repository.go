package empresa

import "context"

// Repository define as operações de persistência de empresas
type Repository interface {
	Criar(ctx context.Context, e *Empresa) error
	Atualizar(ctx context.Context, e *Empresa) error
	BuscarPorID(ctx context.Context, id string) (*Empresa, error)
	Listar(ctx context.Context) ([]*Empresa, error)
}
