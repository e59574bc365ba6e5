package st

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmpresaVazia = errors.New("empresa_id é obrigatório")
	ErrDestinoVazio = errors.New("destino_codigo é obrigatório")
)

// OperacaoPadrao é o tipo de operação assumido quando não informado
const OperacaoPadrao = "INTERNA"

// Regra define, por empresa, se há substituição tributária para um destino
// e tipo de operação, com os blocos de variantes e parâmetros do cálculo.
type Regra struct {
	ID             string          `json:"id"`
	EmpresaID      string          `json:"empresa_id"`
	DestinoCodigo  string          `json:"destino_codigo"`
	Operacao       string          `json:"operacao"`
	TemST          bool            `json:"tem_st"`
	VariantesJSON  json.RawMessage `json:"variantes_json"`
	ParametrosJSON json.RawMessage `json:"parametros_json"`
	Ativo          bool            `json:"ativo"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Tocar marca a regra como alterada agora
func (r *Regra) Tocar() {
	r.UpdatedAt = time.Now()
}

// Nova cria uma regra de ST validada
func Nova(empresaID, destinoCodigo, operacao string) (*Regra, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	destinoCodigo = strings.ToUpper(strings.TrimSpace(destinoCodigo))
	if destinoCodigo == "" {
		return nil, ErrDestinoVazio
	}

	operacao = strings.TrimSpace(operacao)
	if operacao == "" {
		operacao = OperacaoPadrao
	}

	now := time.Now()
	return &Regra{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		DestinoCodigo: destinoCodigo,
		Operacao:      operacao,
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
