package ncm

import "context"

// Repository define as operações de persistência de categorias NCM
type Repository interface {
	Criar(ctx context.Context, c *Categoria) error
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*Categoria, error)
	// NomesExistentes retorna o conjunto de nomes já cadastrados da empresa,
	// usado pela carga de sementes para não duplicar
	NomesExistentes(ctx context.Context, empresaID string) (map[string]bool, error)
	CriarLote(ctx context.Context, categorias []*Categoria) error
}
