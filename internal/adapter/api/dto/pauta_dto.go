package dto

import (
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/pauta"
)

// PautaRequest representa a requisição de item de pauta
type PautaRequest struct {
	EmpresaID           string   `json:"empresa_id" binding:"required"`
	DestinoCodigo       string   `json:"destino_codigo" binding:"required"`
	Operacao            string   `json:"operacao"`
	ProdutoID           string   `json:"produto_id" binding:"required"`
	Tipo                string   `json:"pauta_tipo" binding:"required"`
	PautaPreco          *float64 `json:"pauta_preco"`
	PautaPercentual     *float64 `json:"pauta_percentual"`
	PercentualAplicacao *float64 `json:"percentual_aplicacao"`
	MVAPct              *float64 `json:"mva_pct"`
	AliquotaPct         *float64 `json:"aliquota_pct"`
	Ativo               *Bit     `json:"ativo"`
}

// PautaResponse representa a resposta de item de pauta. O SKU do produto
// acompanha os itens listados.
type PautaResponse struct {
	ID                  string    `json:"id"`
	EmpresaID           string    `json:"empresa_id"`
	DestinoCodigo       string    `json:"destino_codigo"`
	Operacao            string    `json:"operacao"`
	ProdutoID           string    `json:"produto_id"`
	Tipo                string    `json:"pauta_tipo"`
	PautaPreco          *float64  `json:"pauta_preco"`
	PautaPercentual     *float64  `json:"pauta_percentual"`
	PercentualAplicacao *float64  `json:"percentual_aplicacao"`
	MVAPct              *float64  `json:"mva_pct"`
	AliquotaPct         *float64  `json:"aliquota_pct"`
	Ativo               Bit       `json:"ativo"`
	SKU                 string    `json:"sku,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PautaSalvaResponse é a resposta de criação/atualização de item de pauta
type PautaSalvaResponse struct {
	OK bool `json:"ok"`
	PautaResponse
}

// ListaPautaResponse representa a resposta de listagem de itens de pauta
type ListaPautaResponse struct {
	OK    bool            `json:"ok"`
	Itens []PautaResponse `json:"itens"`
}

// Aplicar preenche a entidade com os campos numéricos da requisição
func (r *PautaRequest) Aplicar(i *pauta.Item) {
	i.PautaPreco = r.PautaPreco
	i.PautaPercentual = r.PautaPercentual
	i.PercentualAplicacao = r.PercentualAplicacao
	i.MVAPct = r.MVAPct
	i.AliquotaPct = r.AliquotaPct
	i.Ativo = bitOuPadrao(r.Ativo, true)
}

// ToPautaResponse converte a entidade para o formato de resposta
func ToPautaResponse(i *pauta.Item) PautaResponse {
	return PautaResponse{
		ID:                  i.ID,
		EmpresaID:           i.EmpresaID,
		DestinoCodigo:       i.DestinoCodigo,
		Operacao:            i.Operacao,
		ProdutoID:           i.ProdutoID,
		Tipo:                string(i.Tipo),
		PautaPreco:          i.PautaPreco,
		PautaPercentual:     i.PautaPercentual,
		PercentualAplicacao: i.PercentualAplicacao,
		MVAPct:              i.MVAPct,
		AliquotaPct:         i.AliquotaPct,
		Ativo:               NovoBit(i.Ativo),
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

// ToPautaSalvaResponse monta a resposta de criação/atualização
func ToPautaSalvaResponse(i *pauta.Item) PautaSalvaResponse {
	return PautaSalvaResponse{
		OK:            true,
		PautaResponse: ToPautaResponse(i),
	}
}

// ToListaPautaResponse monta a resposta de listagem
func ToListaPautaResponse(itens []*pauta.ItemComProduto) ListaPautaResponse {
	lista := make([]PautaResponse, 0, len(itens))
	for _, i := range itens {
		resp := ToPautaResponse(&i.Item)
		resp.SKU = i.SKU
		lista = append(lista, resp)
	}
	return ListaPautaResponse{
		OK:    true,
		Itens: lista,
	}
}
