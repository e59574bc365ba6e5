package custo

import "context"

// Filtro restringe a listagem de custos logísticos
type Filtro struct {
	EmpresaID string
	Destino   string
	Operacao  string
}

// Repository define as operações de persistência de custos logísticos
type Repository interface {
	Criar(ctx context.Context, c *Custo) error
	Atualizar(ctx context.Context, c *Custo) error
	BuscarPorID(ctx context.Context, id string) (*Custo, error)
	Listar(ctx context.Context, f Filtro) ([]*Custo, error)
}
