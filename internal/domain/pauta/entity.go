package pauta

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmpresaVazia = errors.New("empresa_id é obrigatório")
	ErrDestinoVazio = errors.New("destino_codigo é obrigatório")
	ErrProdutoVazio = errors.New("produto_id é obrigatório")
	ErrTipoInvalido = errors.New("pauta_tipo inválido")

	ErrPrecoObrigatorio      = errors.New("pauta_preco é obrigatório para pauta_tipo PRECO")
	ErrAplicacaoObrigatoria  = errors.New("percentual_aplicacao é obrigatório para pauta_tipo PRECO")
	ErrPercentualObrigatorio = errors.New("pauta_percentual é obrigatório para pauta_tipo PERCENTUAL")
	ErrMVAObrigatorio        = errors.New("mva_pct é obrigatório para pauta_tipo FORMULA_ESPECIAL")
	ErrAliquotaObrigatoria   = errors.New("aliquota_pct é obrigatório para pauta_tipo FORMULA_ESPECIAL")
)

// Tipo discrimina como a pauta entra no cálculo da base de ST
type Tipo string

const (
	TipoPreco           Tipo = "PRECO"            // preço de pauta fixo
	TipoPercentual      Tipo = "PERCENTUAL"       // percentual sobre o preço de tabela
	TipoFormulaEspecial Tipo = "FORMULA_ESPECIAL" // MVA x alíquota
)

// Item é uma pauta de referência por empresa, destino, operação e produto.
// Os campos numéricos exigidos dependem do tipo.
type Item struct {
	ID                  string    `json:"id"`
	EmpresaID           string    `json:"empresa_id"`
	DestinoCodigo       string    `json:"destino_codigo"`
	Operacao            string    `json:"operacao"`
	ProdutoID           string    `json:"produto_id"`
	Tipo                Tipo      `json:"pauta_tipo"`
	PautaPreco          *float64  `json:"pauta_preco"`
	PautaPercentual     *float64  `json:"pauta_percentual"`
	PercentualAplicacao *float64  `json:"percentual_aplicacao"`
	MVAPct              *float64  `json:"mva_pct"`
	AliquotaPct         *float64  `json:"aliquota_pct"`
	Ativo               bool      `json:"ativo"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Novo cria um item de pauta validado, inclusive os campos exigidos pelo tipo
func Novo(empresaID, destinoCodigo, operacao, produtoID string, tipo Tipo) (*Item, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	destinoCodigo = strings.ToUpper(strings.TrimSpace(destinoCodigo))
	if destinoCodigo == "" {
		return nil, ErrDestinoVazio
	}

	produtoID = strings.TrimSpace(produtoID)
	if produtoID == "" {
		return nil, ErrProdutoVazio
	}

	operacao = strings.TrimSpace(operacao)
	if operacao == "" {
		operacao = "INTERNA"
	}

	now := time.Now()
	return &Item{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		DestinoCodigo: destinoCodigo,
		Operacao:      operacao,
		ProdutoID:     produtoID,
		Tipo:          tipo,
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Tocar marca o item como alterado agora
func (i *Item) Tocar() {
	i.UpdatedAt = time.Now()
}

// ValidarTipo confere que os campos numéricos exigidos pelo tipo estão
// presentes. Deve ser chamado antes de qualquer escrita.
func (i *Item) ValidarTipo() error {
	switch i.Tipo {
	case TipoPreco:
		if i.PautaPreco == nil {
			return ErrPrecoObrigatorio
		}
		if i.PercentualAplicacao == nil {
			return ErrAplicacaoObrigatoria
		}
	case TipoPercentual:
		if i.PautaPercentual == nil {
			return ErrPercentualObrigatorio
		}
	case TipoFormulaEspecial:
		if i.MVAPct == nil {
			return ErrMVAObrigatorio
		}
		if i.AliquotaPct == nil {
			return ErrAliquotaObrigatoria
		}
	default:
		return ErrTipoInvalido
	}
	return nil
}
