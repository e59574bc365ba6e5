package dto

import (
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/ncm"
)

// CategoriaNCMRequest representa a requisição de categoria NCM
type CategoriaNCMRequest struct {
	EmpresaID string `json:"empresa_id" binding:"required"`
	Nome      string `json:"nome" binding:"required"`
	NCM       string `json:"ncm" binding:"required"`
}

// SementeNCMRequest representa a requisição de carga inicial de categorias.
// Sem sementes informadas, aplica o conjunto padrão.
type SementeNCMRequest struct {
	EmpresaID string        `json:"empresa_id" binding:"required"`
	Sementes  []ncm.Semente `json:"seeds"`
}

// CategoriaNCMResponse representa a resposta de categoria NCM
type CategoriaNCMResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Nome      string    `json:"nome"`
	NCM       string    `json:"ncm"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoriaNCMSalvaResponse é a resposta de criação de categoria
type CategoriaNCMSalvaResponse struct {
	OK bool `json:"ok"`
	CategoriaNCMResponse
}

// ListaCategoriasNCMResponse representa a resposta de listagem de categorias
type ListaCategoriasNCMResponse struct {
	OK         bool                   `json:"ok"`
	Categorias []CategoriaNCMResponse `json:"categorias"`
}

// SementeNCMResponse resume a carga inicial: quantas categorias novas entraram
type SementeNCMResponse struct {
	OK        bool `json:"ok"`
	Inseridas int  `json:"inseridas"`
}

// ToCategoriaNCMResponse converte a entidade para o formato de resposta
func ToCategoriaNCMResponse(c *ncm.Categoria) CategoriaNCMResponse {
	return CategoriaNCMResponse{
		ID:        c.ID,
		EmpresaID: c.EmpresaID,
		Nome:      c.Nome,
		NCM:       c.NCM,
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoriaNCMSalvaResponse monta a resposta de criação
func ToCategoriaNCMSalvaResponse(c *ncm.Categoria) CategoriaNCMSalvaResponse {
	return CategoriaNCMSalvaResponse{
		OK:                   true,
		CategoriaNCMResponse: ToCategoriaNCMResponse(c),
	}
}

// ToListaCategoriasNCMResponse monta a resposta de listagem
func ToListaCategoriasNCMResponse(categorias []*ncm.Categoria) ListaCategoriasNCMResponse {
	lista := make([]CategoriaNCMResponse, 0, len(categorias))
	for _, c := range categorias {
		lista = append(lista, ToCategoriaNCMResponse(c))
	}
	return ListaCategoriasNCMResponse{
		OK:         true,
		Categorias: lista,
	}
}
