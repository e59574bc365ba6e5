package dto

import (
	"encoding/json"
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/custo"
	"github.com/shopspring/decimal"
)

// CustoRequest representa a requisição de custo logístico
type CustoRequest struct {
	EmpresaID       string           `json:"empresa_id" binding:"required"`
	DestinoCodigo   string           `json:"destino_codigo" binding:"required"`
	Operacao        string           `json:"operacao"`
	TipoCusto       string           `json:"tipo_custo" binding:"required"`
	Valor           *decimal.Decimal `json:"valor" binding:"required"`
	UnidadeCobranca string           `json:"unidade_cobranca" binding:"required"`
	AplicaEmJSON    json.RawMessage  `json:"aplica_em_json"`
	Ativo           *Bit             `json:"ativo"`
}

// CustoResponse representa a resposta de custo logístico
type CustoResponse struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	DestinoCodigo   string          `json:"destino_codigo"`
	Operacao        string          `json:"operacao"`
	TipoCusto       string          `json:"tipo_custo"`
	Valor           decimal.Decimal `json:"valor"`
	UnidadeCobranca string          `json:"unidade_cobranca"`
	AplicaEmJSON    json.RawMessage `json:"aplica_em_json"`
	Ativo           Bit             `json:"ativo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CustoSalvoResponse é a resposta de criação/atualização de custo
type CustoSalvoResponse struct {
	OK bool `json:"ok"`
	CustoResponse
}

// ListaCustosResponse representa a resposta de listagem de custos
type ListaCustosResponse struct {
	OK     bool            `json:"ok"`
	Custos []CustoResponse `json:"custos"`
}

// Aplicar preenche a entidade com os campos da requisição
func (r *CustoRequest) Aplicar(c *custo.Custo) {
	c.AplicaEmJSON = r.AplicaEmJSON
	c.Ativo = bitOuPadrao(r.Ativo, true)
}

// ToCustoResponse converte a entidade para o formato de resposta
func ToCustoResponse(c *custo.Custo) CustoResponse {
	return CustoResponse{
		ID:              c.ID,
		EmpresaID:       c.EmpresaID,
		DestinoCodigo:   c.DestinoCodigo,
		Operacao:        c.Operacao,
		TipoCusto:       c.TipoCusto,
		Valor:           c.Valor,
		UnidadeCobranca: c.UnidadeCobranca,
		AplicaEmJSON:    c.AplicaEmJSON,
		Ativo:           NovoBit(c.Ativo),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCustoSalvoResponse monta a resposta de criação/atualização
func ToCustoSalvoResponse(c *custo.Custo) CustoSalvoResponse {
	return CustoSalvoResponse{
		OK:            true,
		CustoResponse: ToCustoResponse(c),
	}
}

// ToListaCustosResponse monta a resposta de listagem
func ToListaCustosResponse(custos []*custo.Custo) ListaCustosResponse {
	lista := make([]CustoResponse, 0, len(custos))
	for _, c := range custos {
		lista = append(lista, ToCustoResponse(c))
	}
	return ListaCustosResponse{
		OK:     true,
		Custos: lista,
	}
}
