package destino

import (
	"errors"
	"strings"
)

var (
	ErrCodigoVazio    = errors.New("código do destino não pode ser vazio")
	ErrDescricaoVazia = errors.New("descrição do destino não pode ser vazia")
)

// TipoPadrao é o tipo assumido quando o cadastro não informa (unidade federativa)
const TipoPadrao = "UF"

// Destino é uma referência global de praça de entrega (em geral uma UF).
// Não pertence a nenhuma empresa e é gravado por upsert no código.
type Destino struct {
	Codigo    string `json:"codigo"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
}

// Novo cria um destino validado
func Novo(codigo, tipo, descricao string) (*Destino, error) {
	codigo = strings.ToUpper(strings.TrimSpace(codigo))
	if codigo == "" {
		return nil, ErrCodigoVazio
	}

	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		return nil, ErrDescricaoVazia
	}

	tipo = strings.TrimSpace(tipo)
	if tipo == "" {
		tipo = TipoPadrao
	}

	return &Destino{
		Codigo:    codigo,
		Tipo:      tipo,
		Descricao: descricao,
	}, nil
}
