package custo

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmpresaVazia        = errors.New("empresa_id é obrigatório")
	ErrDestinoVazio        = errors.New("destino_codigo é obrigatório")
	ErrTipoCustoVazio      = errors.New("tipo_custo é obrigatório")
	ErrUnidadeCobrancaVazia = errors.New("unidade_cobranca é obrigatória")
	ErrValorNegativo       = errors.New("valor não pode ser negativo")
)

// Custo é um custo logístico por empresa, destino e operação (paletização,
// frete, armazenagem...), valorado por unidade de cobrança.
type Custo struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	DestinoCodigo   string          `json:"destino_codigo"`
	Operacao        string          `json:"operacao"`
	TipoCusto       string          `json:"tipo_custo"`
	Valor           decimal.Decimal `json:"valor"`
	UnidadeCobranca string          `json:"unidade_cobranca"`
	AplicaEmJSON    json.RawMessage `json:"aplica_em_json"` // filtro de aplicação (famílias, grupos)
	Ativo           bool            `json:"ativo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Tocar marca o custo como alterado agora
func (c *Custo) Tocar() {
	c.UpdatedAt = time.Now()
}

// Novo cria um custo logístico validado
func Novo(empresaID, destinoCodigo, operacao, tipoCusto, unidadeCobranca string, valor decimal.Decimal) (*Custo, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	destinoCodigo = strings.ToUpper(strings.TrimSpace(destinoCodigo))
	if destinoCodigo == "" {
		return nil, ErrDestinoVazio
	}

	tipoCusto = strings.TrimSpace(tipoCusto)
	if tipoCusto == "" {
		return nil, ErrTipoCustoVazio
	}

	unidadeCobranca = strings.TrimSpace(unidadeCobranca)
	if unidadeCobranca == "" {
		return nil, ErrUnidadeCobrancaVazia
	}

	if valor.IsNegative() {
		return nil, ErrValorNegativo
	}

	operacao = strings.TrimSpace(operacao)
	if operacao == "" {
		operacao = "INTERNA"
	}

	now := time.Now()
	return &Custo{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		DestinoCodigo:   destinoCodigo,
		Operacao:        operacao,
		TipoCusto:       tipoCusto,
		Valor:           valor,
		UnidadeCobranca: unidadeCobranca,
		Ativo:           true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
