package dto

import (
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/produto"
)

// ProdutoRequest representa a requisição de produto
type ProdutoRequest struct {
	EmpresaID          string   `json:"empresa_id" binding:"required"`
	SKU                string   `json:"sku" binding:"required"`
	Descricao          string   `json:"descricao" binding:"required"`
	Unidade            string   `json:"unidade"`
	Familia            string   `json:"familia"`
	Ativo              *Bit     `json:"ativo"`
	RefFamilia         *Bit     `json:"ref_familia"`
	GrupoPreco         int      `json:"grupo_preco"`
	PesoKg             *float64 `json:"peso_kg"`
	EAN13              string   `json:"ean13"`
	EAN14Caixa         string   `json:"ean14_caixa"`
	Apresentacao       string   `json:"apresentacao"`
	CubagemM3          *float64 `json:"cubagem_m3"`
	PesoLiqKg          *float64 `json:"peso_liq_kg"`
	PesoBrutoKg        *float64 `json:"peso_bruto_kg"`
	CategoriaPrecoBase string   `json:"categoria_preco_base"`
	NCMCategoriaID     string   `json:"ncm_categoria_id"`
	Pallet             string   `json:"pallet"`
	PalletCaixas       *int     `json:"pallet_caixas"`
}

// ProdutoResponse representa a resposta de produto
type ProdutoResponse struct {
	ID                 string    `json:"id"`
	EmpresaID          string    `json:"empresa_id"`
	SKU                string    `json:"sku"`
	Descricao          string    `json:"descricao"`
	Unidade            string    `json:"unidade"`
	Familia            string    `json:"familia"`
	Ativo              Bit       `json:"ativo"`
	RefFamilia         Bit       `json:"ref_familia"`
	GrupoPreco         int       `json:"grupo_preco"`
	PesoKg             *float64  `json:"peso_kg"`
	EAN13              string    `json:"ean13"`
	EAN14Caixa         string    `json:"ean14_caixa"`
	Apresentacao       string    `json:"apresentacao"`
	CubagemM3          *float64  `json:"cubagem_m3"`
	PesoLiqKg          *float64  `json:"peso_liq_kg"`
	PesoBrutoKg        *float64  `json:"peso_bruto_kg"`
	CategoriaPrecoBase string    `json:"categoria_preco_base"`
	NCMCategoriaID     string    `json:"ncm_categoria_id"`
	Pallet             string    `json:"pallet"`
	PalletCaixas       *int      `json:"pallet_caixas"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProdutoSalvoResponse é a resposta de criação/atualização de produto
type ProdutoSalvoResponse struct {
	OK bool `json:"ok"`
	ProdutoResponse
}

// ListaProdutosResponse representa a resposta de listagem de produtos
type ListaProdutosResponse struct {
	OK       bool              `json:"ok"`
	Produtos []ProdutoResponse `json:"produtos"`
}

// ImportacaoRequest representa o lote colado pelo cliente para importação
type ImportacaoRequest struct {
	EmpresaID string           `json:"empresa_id" binding:"required"`
	Template  string           `json:"template"`
	Rows      []map[string]any `json:"rows" binding:"required"`
}

// ImportacaoResponse resume o resultado da importação em lote
type ImportacaoResponse struct {
	OK          bool                `json:"ok"`
	Inseridos   int                 `json:"inseridos"`
	Atualizados int                 `json:"atualizados"`
	Erros       []produto.ErroLinha `json:"erros"`
}

// Aplicar preenche a entidade com os campos da requisição
func (r *ProdutoRequest) Aplicar(p *produto.Produto) {
	p.EmpresaID = r.EmpresaID
	p.SKU = r.SKU
	p.Descricao = r.Descricao
	p.Unidade = r.Unidade
	p.Familia = r.Familia
	p.Ativo = bitOuPadrao(r.Ativo, true)
	p.RefFamilia = bitOuPadrao(r.RefFamilia, false)
	p.GrupoPreco = r.GrupoPreco
	p.PesoKg = r.PesoKg
	p.EAN13 = r.EAN13
	p.EAN14Caixa = r.EAN14Caixa
	p.Apresentacao = r.Apresentacao
	p.CubagemM3 = r.CubagemM3
	p.PesoLiqKg = r.PesoLiqKg
	p.PesoBrutoKg = r.PesoBrutoKg
	p.CategoriaPrecoBase = r.CategoriaPrecoBase
	p.NCMCategoriaID = r.NCMCategoriaID
	p.Pallet = r.Pallet
	p.PalletCaixas = r.PalletCaixas
}

// ToProdutoResponse converte a entidade para o formato de resposta
func ToProdutoResponse(p *produto.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:                 p.ID,
		EmpresaID:          p.EmpresaID,
		SKU:                p.SKU,
		Descricao:          p.Descricao,
		Unidade:            p.Unidade,
		Familia:            p.Familia,
		Ativo:              NovoBit(p.Ativo),
		RefFamilia:         NovoBit(p.RefFamilia),
		GrupoPreco:         p.GrupoPreco,
		PesoKg:             p.PesoKg,
		EAN13:              p.EAN13,
		EAN14Caixa:         p.EAN14Caixa,
		Apresentacao:       p.Apresentacao,
		CubagemM3:          p.CubagemM3,
		PesoLiqKg:          p.PesoLiqKg,
		PesoBrutoKg:        p.PesoBrutoKg,
		CategoriaPrecoBase: p.CategoriaPrecoBase,
		NCMCategoriaID:     p.NCMCategoriaID,
		Pallet:             p.Pallet,
		PalletCaixas:       p.PalletCaixas,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToProdutoSalvoResponse monta a resposta de criação/atualização
func ToProdutoSalvoResponse(p *produto.Produto) ProdutoSalvoResponse {
	return ProdutoSalvoResponse{
		OK:              true,
		ProdutoResponse: ToProdutoResponse(p),
	}
}

// ToListaProdutosResponse monta a resposta de listagem
func ToListaProdutosResponse(produtos []*produto.Produto) ListaProdutosResponse {
	lista := make([]ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		lista = append(lista, ToProdutoResponse(p))
	}
	return ListaProdutosResponse{
		OK:       true,
		Produtos: lista,
	}
}

// ToImportacaoResponse monta a resposta do lote
func ToImportacaoResponse(r *produto.ResultadoImportacao) ImportacaoResponse {
	return ImportacaoResponse{
		OK:          true,
		Inseridos:   r.Inseridos,
		Atualizados: r.Atualizados,
		Erros:       r.Erros,
	}
}
