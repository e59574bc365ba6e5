package auditoria

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Acao identifica o verbo registrado na trilha de auditoria
type Acao string

const (
	AcaoCriar        Acao = "CREATE"
	AcaoAtualizar    Acao = "UPDATE"
	AcaoUpsert       Acao = "UPSERT"
	AcaoImportarLote Acao = "BULK_UPSERT"
	AcaoSubstituir   Acao = "REPLACE_ALL"
	AcaoSemear       Acao = "SEED"
)

// Entrada é um registro imutável da trilha de auditoria: quem (empresa),
// o quê (entidade/id), como (ação) e o payload completo da requisição.
type Entrada struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`  // vazio para ações globais
	Entidade    string          `json:"entidade"`
	EntidadeID  string          `json:"entidade_id"` // vazio para ações de lote
	Acao        Acao            `json:"acao"`
	PayloadJSON json.RawMessage `json:"payload_json"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NovaEntrada monta um registro de auditoria com o payload serializado
func NovaEntrada(empresaID, entidade, entidadeID string, acao Acao, payload any) *Entrada {
	raw, err := json.Marshal(payload)
	if err != nil {
		// payload veio do binding JSON da própria requisição; se ainda
		// assim não serializar, registra o motivo em vez de perder a trilha
		raw, _ = json.Marshal(map[string]string{"erro_serializacao": err.Error()})
	}

	return &Entrada{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Entidade:    entidade,
		EntidadeID:  entidadeID,
		Acao:        acao,
		PayloadJSON: raw,
		CreatedAt:   time.Now(),
	}
}
