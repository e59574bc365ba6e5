package pauta

import "context"

// Filtro restringe a listagem de itens de pauta
type Filtro struct {
	EmpresaID string
	Destino   string
	Operacao  string
}

// ItemComProduto acrescenta ao item o SKU do produto, para exibição
type ItemComProduto struct {
	Item
	SKU string `json:"sku"`
}

// Repository define as operações de persistência de itens de pauta
type Repository interface {
	Criar(ctx context.Context, i *Item) error
	Atualizar(ctx context.Context, i *Item) error
	BuscarPorID(ctx context.Context, id string) (*Item, error)
	Listar(ctx context.Context, f Filtro) ([]*ItemComProduto, error)
}
