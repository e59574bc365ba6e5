package empresa

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNomeVazio = errors.New("nome não pode ser vazio")
)

// Status representa o estado da empresa
type Status string

const (
	StatusAtiva   Status = "ativa"
	StatusInativa Status = "inativa"
)

// Empresa representa um tenant do sistema; todos os dados de precificação
// são isolados por empresa.
type Empresa struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Status     Status          `json:"status"`
	LogoURL    string          `json:"logo_url"`
	TemaJSON   json.RawMessage `json:"tema_json"`   // cores do tema (primaria, texto)
	ConfigJSON json.RawMessage `json:"config_json"` // configurações livres
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Nova cria uma nova empresa
func Nova(nome string) (*Empresa, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, ErrNomeVazio
	}

	now := time.Now()
	return &Empresa{
		ID:        uuid.New().String(),
		Nome:      nome,
		Status:    StatusAtiva,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Atualizar atualiza os dados da empresa
func (e *Empresa) Atualizar(nome, logoURL string, temaJSON, configJSON json.RawMessage) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return ErrNomeVazio
	}

	e.Nome = nome
	e.LogoURL = logoURL
	if temaJSON != nil {
		e.TemaJSON = temaJSON
	}
	if configJSON != nil {
		e.ConfigJSON = configJSON
	}
	e.UpdatedAt = time.Now()
	return nil
}
