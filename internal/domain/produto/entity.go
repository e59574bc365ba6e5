package produto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSKUVazio       = errors.New("SKU vazio.")
	ErrDescricaoVazia = errors.New("descrição não pode ser vazia")
	ErrEmpresaVazia   = errors.New("empresa_id é obrigatório")
)

// UnidadePadrao é a unidade de medida assumida quando o cadastro não informa
const UnidadePadrao = "UN"

// Produto representa um item do catálogo de uma empresa. O SKU é único por
// empresa; a unicidade é garantida pela importação, não por constraint.
type Produto struct {
	ID                 string    `json:"id"`
	EmpresaID          string    `json:"empresa_id"`
	SKU                string    `json:"sku"`
	Descricao          string    `json:"descricao"`
	Unidade            string    `json:"unidade"`
	Familia            string    `json:"familia"`
	Ativo              bool      `json:"ativo"`
	RefFamilia         bool      `json:"ref_familia"` // produto de referência da família
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
	Pallet             string    `json:"pallet"` // lastro x altura, ex: "8x5"
	PalletCaixas       *int      `json:"pallet_caixas"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Novo cria um novo produto com os campos obrigatórios validados
func Novo(empresaID, sku, descricao string) (*Produto, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrSKUVazio
	}

	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		return nil, ErrDescricaoVazia
	}

	now := time.Now()
	return &Produto{
		ID:         uuid.New().String(),
		EmpresaID:  empresaID,
		SKU:        sku,
		Descricao:  descricao,
		Unidade:    UnidadePadrao,
		Ativo:      true,
		GrupoPreco: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Validar confere os campos obrigatórios de um produto já montado
func (p *Produto) Validar() error {
	if strings.TrimSpace(p.EmpresaID) == "" {
		return ErrEmpresaVazia
	}
	if strings.TrimSpace(p.SKU) == "" {
		return ErrSKUVazio
	}
	if strings.TrimSpace(p.Descricao) == "" {
		return ErrDescricaoVazia
	}
	return nil
}

// Tocar marca o produto como alterado agora
func (p *Produto) Tocar() {
	p.UpdatedAt = time.Now()
}

// Normalizar aplica os padrões de cadastro (unidade, grupo de preço)
func (p *Produto) Normalizar() {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Descricao = strings.TrimSpace(p.Descricao)
	if strings.TrimSpace(p.Unidade) == "" {
		p.Unidade = UnidadePadrao
	}
	if p.GrupoPreco == 0 {
		p.GrupoPreco = 1
	}
}
