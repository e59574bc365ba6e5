package ncm

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNomeVazio    = errors.New("nome da categoria não pode ser vazio")
	ErrCodigoVazio  = errors.New("código NCM não pode ser vazio")
	ErrEmpresaVazia = errors.New("empresa_id é obrigatório")
)

// Categoria agrupa produtos sob um código fiscal NCM, por empresa
type Categoria struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Nome      string    `json:"nome"`
	NCM       string    `json:"ncm"`
	CreatedAt time.Time `json:"created_at"`
}

// Nova cria uma categoria NCM validada
func Nova(empresaID, nome, codigo string) (*Categoria, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, ErrNomeVazio
	}

	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoVazio
	}

	return &Categoria{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      nome,
		NCM:       codigo,
		CreatedAt: time.Now(),
	}, nil
}

// Semente é um par nome/código usado na carga inicial de categorias
type Semente struct {
	Nome string `json:"nome"`
	NCM  string `json:"ncm"`
}

// SementesPadrao são as categorias sugeridas para uma empresa recém-criada,
// cobrindo o sortimento típico de alimentos atendido pelo sistema.
var SementesPadrao = []Semente{
	{Nome: "Massas alimentícias", NCM: "1902.19.00"},
	{Nome: "Biscoitos e bolachas", NCM: "1905.31.00"},
	{Nome: "Farinha de trigo", NCM: "1101.00.10"},
	{Nome: "Arroz", NCM: "1006.30.21"},
	{Nome: "Feijão", NCM: "0713.33.19"},
	{Nome: "Óleo de soja", NCM: "1507.90.11"},
	{Nome: "Açúcar", NCM: "1701.99.00"},
	{Nome: "Molhos e condimentos", NCM: "2103.90.21"},
}
