package tabela

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmpresaVazia   = errors.New("empresa_id é obrigatório")
	ErrNomeVazio      = errors.New("nome da tabela não pode ser vazio")
	ErrProdutoVazio   = errors.New("produto_id é obrigatório em todos os itens")
	ErrPrecoNegativo  = errors.New("preço não pode ser negativo")
)

// Tabela é uma tabela de preços de uma empresa, com janela de vigência
type Tabela struct {
	ID             string     `json:"id"`
	EmpresaID      string     `json:"empresa_id"`
	Nome           string     `json:"nome"`
	VigenciaInicio *time.Time `json:"vigencia_inicio"`
	VigenciaFim    *time.Time `json:"vigencia_fim"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Item é uma linha (produto, preço) de uma tabela
type Item struct {
	ID        string          `json:"id"`
	TabelaID  string          `json:"tabela_id"`
	ProdutoID string          `json:"produto_id"`
	Preco     decimal.Decimal `json:"preco"`
}

// ItemComProduto acrescenta SKU e descrição do produto, para exibição
type ItemComProduto struct {
	Item
	SKU       string `json:"sku"`
	Descricao string `json:"descricao"`
}

// Nova cria uma tabela de preços validada
func Nova(empresaID, nome string) (*Tabela, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaVazia
	}

	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, ErrNomeVazio
	}

	now := time.Now()
	return &Tabela{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      nome,
		Status:    "ativa",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NovoItem cria uma linha de tabela validada
func NovoItem(tabelaID, produtoID string, preco decimal.Decimal) (*Item, error) {
	produtoID = strings.TrimSpace(produtoID)
	if produtoID == "" {
		return nil, ErrProdutoVazio
	}

	if preco.IsNegative() {
		return nil, ErrPrecoNegativo
	}

	return &Item{
		ID:        uuid.New().String(),
		TabelaID:  tabelaID,
		ProdutoID: produtoID,
		Preco:     preco,
	}, nil
}
