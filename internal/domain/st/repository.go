package st

import "context"

// Filtro restringe a listagem de regras de ST
type Filtro struct {
	EmpresaID string
	Destino   string
	Operacao  string
}

// Repository define as operações de persistência de regras de ST
type Repository interface {
	Criar(ctx context.Context, r *Regra) error
	Atualizar(ctx context.Context, r *Regra) error
	BuscarPorID(ctx context.Context, id string) (*Regra, error)
	Listar(ctx context.Context, f Filtro) ([]*Regra, error)
}
