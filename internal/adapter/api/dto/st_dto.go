package dto

import (
	"encoding/json"
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/st"
)

// RegraSTRequest representa a requisição de regra de substituição tributária
type RegraSTRequest struct {
	EmpresaID      string          `json:"empresa_id" binding:"required"`
	DestinoCodigo  string          `json:"destino_codigo" binding:"required"`
	Operacao       string          `json:"operacao"`
	TemST          Bit             `json:"tem_st"`
	VariantesJSON  json.RawMessage `json:"variantes_json"`
	ParametrosJSON json.RawMessage `json:"parametros_json"`
	Ativo          *Bit            `json:"ativo"`
}

// RegraSTResponse representa a resposta de regra de ST
type RegraSTResponse struct {
	ID             string          `json:"id"`
	EmpresaID      string          `json:"empresa_id"`
	DestinoCodigo  string          `json:"destino_codigo"`
	Operacao       string          `json:"operacao"`
	TemST          Bit             `json:"tem_st"`
	VariantesJSON  json.RawMessage `json:"variantes_json"`
	ParametrosJSON json.RawMessage `json:"parametros_json"`
	Ativo          Bit             `json:"ativo"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RegraSTSalvaResponse é a resposta de criação/atualização de regra
type RegraSTSalvaResponse struct {
	OK bool `json:"ok"`
	RegraSTResponse
}

// ListaRegrasSTResponse representa a resposta de listagem de regras
type ListaRegrasSTResponse struct {
	OK     bool              `json:"ok"`
	Regras []RegraSTResponse `json:"regras"`
}

// Aplicar preenche a entidade com os campos da requisição
func (r *RegraSTRequest) Aplicar(regra *st.Regra) {
	regra.TemST = r.TemST.Bool()
	regra.VariantesJSON = r.VariantesJSON
	regra.ParametrosJSON = r.ParametrosJSON
	regra.Ativo = bitOuPadrao(r.Ativo, true)
}

// ToRegraSTResponse converte a entidade para o formato de resposta
func ToRegraSTResponse(regra *st.Regra) RegraSTResponse {
	return RegraSTResponse{
		ID:             regra.ID,
		EmpresaID:      regra.EmpresaID,
		DestinoCodigo:  regra.DestinoCodigo,
		Operacao:       regra.Operacao,
		TemST:          NovoBit(regra.TemST),
		VariantesJSON:  regra.VariantesJSON,
		ParametrosJSON: regra.ParametrosJSON,
		Ativo:          NovoBit(regra.Ativo),
		CreatedAt:      regra.CreatedAt,
		UpdatedAt:      regra.UpdatedAt,
	}
}

// ToRegraSTSalvaResponse monta a resposta de criação/atualização
func ToRegraSTSalvaResponse(regra *st.Regra) RegraSTSalvaResponse {
	return RegraSTSalvaResponse{
		OK:              true,
		RegraSTResponse: ToRegraSTResponse(regra),
	}
}

// ToListaRegrasSTResponse monta a resposta de listagem
func ToListaRegrasSTResponse(regras []*st.Regra) ListaRegrasSTResponse {
	lista := make([]RegraSTResponse, 0, len(regras))
	for _, regra := range regras {
		lista = append(lista, ToRegraSTResponse(regra))
	}
	return ListaRegrasSTResponse{
		OK:     true,
		Regras: lista,
	}
}
