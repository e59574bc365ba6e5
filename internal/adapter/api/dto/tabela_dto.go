package dto

import (
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/tabela"
	"github.com/shopspring/decimal"
)

// TabelaRequest representa a requisição de tabela de preços
type TabelaRequest struct {
	EmpresaID      string     `json:"empresa_id" binding:"required"`
	Nome           string     `json:"nome" binding:"required"`
	VigenciaInicio *time.Time `json:"vigencia_inicio"`
	VigenciaFim    *time.Time `json:"vigencia_fim"`
	Status         string     `json:"status"`
}

// TabelaResponse representa a resposta de tabela de preços
type TabelaResponse struct {
	ID             string     `json:"id"`
	EmpresaID      string     `json:"empresa_id"`
	Nome           string     `json:"nome"`
	VigenciaInicio *time.Time `json:"vigencia_inicio"`
	VigenciaFim    *time.Time `json:"vigencia_fim"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TabelaSalvaResponse é a resposta de criação de tabela
type TabelaSalvaResponse struct {
	OK bool `json:"ok"`
	TabelaResponse
}

// ListaTabelasResponse representa a resposta de listagem de tabelas
type ListaTabelasResponse struct {
	OK      bool             `json:"ok"`
	Tabelas []TabelaResponse `json:"tabelas"`
}

// ItemTabelaRequest é uma linha (produto, preço) do corpo de substituição
type ItemTabelaRequest struct {
	ProdutoID string          `json:"produto_id" binding:"required"`
	Preco     decimal.Decimal `json:"preco"`
}

// SubstituirItensRequest representa o corpo da troca completa de itens
type SubstituirItensRequest struct {
	Itens []ItemTabelaRequest `json:"itens"`
}

// ItemTabelaResponse representa uma linha da tabela na listagem
type ItemTabelaResponse struct {
	ID        string          `json:"id"`
	TabelaID  string          `json:"tabela_id"`
	ProdutoID string          `json:"produto_id"`
	Preco     decimal.Decimal `json:"preco"`
	SKU       string          `json:"sku"`
	Descricao string          `json:"descricao"`
}

// ListaItensTabelaResponse representa a resposta de listagem de itens
type ListaItensTabelaResponse struct {
	OK    bool                 `json:"ok"`
	Itens []ItemTabelaResponse `json:"itens"`
}

// SubstituicaoResponse resume a troca completa de itens
type SubstituicaoResponse struct {
	OK    bool `json:"ok"`
	Total int  `json:"total"`
}

// ToTabelaResponse converte a entidade para o formato de resposta
func ToTabelaResponse(t *tabela.Tabela) TabelaResponse {
	return TabelaResponse{
		ID:             t.ID,
		EmpresaID:      t.EmpresaID,
		Nome:           t.Nome,
		VigenciaInicio: t.VigenciaInicio,
		VigenciaFim:    t.VigenciaFim,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToTabelaSalvaResponse monta a resposta de criação
func ToTabelaSalvaResponse(t *tabela.Tabela) TabelaSalvaResponse {
	return TabelaSalvaResponse{
		OK:             true,
		TabelaResponse: ToTabelaResponse(t),
	}
}

// ToListaTabelasResponse monta a resposta de listagem
func ToListaTabelasResponse(tabelas []*tabela.Tabela) ListaTabelasResponse {
	lista := make([]TabelaResponse, 0, len(tabelas))
	for _, t := range tabelas {
		lista = append(lista, ToTabelaResponse(t))
	}
	return ListaTabelasResponse{
		OK:      true,
		Tabelas: lista,
	}
}

// ToListaItensTabelaResponse monta a resposta de listagem de itens
func ToListaItensTabelaResponse(itens []*tabela.ItemComProduto) ListaItensTabelaResponse {
	lista := make([]ItemTabelaResponse, 0, len(itens))
	for _, i := range itens {
		lista = append(lista, ItemTabelaResponse{
			ID:        i.ID,
			TabelaID:  i.TabelaID,
			ProdutoID: i.ProdutoID,
			Preco:     i.Preco,
			SKU:       i.SKU,
			Descricao: i.Descricao,
		})
	}
	return ListaItensTabelaResponse{
		OK:    true,
		Itens: lista,
	}
}
