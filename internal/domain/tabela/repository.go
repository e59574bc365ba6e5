package tabela

import "context"

// Repository define as operações de persistência de tabelas de preço
type Repository interface {
	Criar(ctx context.Context, t *Tabela) error
	BuscarPorID(ctx context.Context, id string) (*Tabela, error)
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*Tabela, error)
	ListarItens(ctx context.Context, tabelaID string) ([]*ItemComProduto, error)
	// SubstituirItens apaga todos os itens da tabela e grava o conjunto
	// recebido, na mesma transação, atualizando o updated_at da tabela.
	// O conjunto final é sempre o antigo ou o novo, nunca uma mistura.
	SubstituirItens(ctx context.Context, tabelaID string, itens []*Item) error
}
