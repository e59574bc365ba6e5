package produto

import "context"

// Repository define as operações de persistência de produtos
type Repository interface {
	Criar(ctx context.Context, p *Produto) error
	Atualizar(ctx context.Context, p *Produto) error
	BuscarPorID(ctx context.Context, id string) (*Produto, error)
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*Produto, error)
	// IndicePorSKU retorna o mapa SKU → id dos produtos da empresa
	IndicePorSKU(ctx context.Context, empresaID string) (map[string]string, error)
	// ImportarLote grava inserções e atualizações em uma única transação
	ImportarLote(ctx context.Context, inserir, atualizar []*Produto) error
}
