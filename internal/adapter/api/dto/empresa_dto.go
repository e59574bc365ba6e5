package dto

import (
	"encoding/json"
	"time"

	"github.com/precodigital/tabelas-precos-api/internal/domain/empresa"
)

// EmpresaRequest representa a requisição de empresa
type EmpresaRequest struct {
	Nome       string          `json:"nome" binding:"required"`
	LogoURL    string          `json:"logo_url"`
	TemaJSON   json.RawMessage `json:"tema_json"`
	ConfigJSON json.RawMessage `json:"config_json"`
}

// EmpresaResponse representa a resposta de empresa
type EmpresaResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Status     string          `json:"status"`
	LogoURL    string          `json:"logo_url"`
	TemaJSON   json.RawMessage `json:"tema_json"`
	ConfigJSON json.RawMessage `json:"config_json"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmpresaSalvaResponse é a resposta de criação/atualização: a empresa com
// o envelope de sucesso
type EmpresaSalvaResponse struct {
	OK bool `json:"ok"`
	EmpresaResponse
}

// ListaEmpresasResponse representa a resposta de listagem de empresas
type ListaEmpresasResponse struct {
	OK       bool              `json:"ok"`
	Empresas []EmpresaResponse `json:"empresas"`
}

// ToEmpresaResponse converte a entidade para o formato de resposta
func ToEmpresaResponse(e *empresa.Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:         e.ID,
		Nome:       e.Nome,
		Status:     string(e.Status),
		LogoURL:    e.LogoURL,
		TemaJSON:   e.TemaJSON,
		ConfigJSON: e.ConfigJSON,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEmpresaSalvaResponse monta a resposta de criação/atualização
func ToEmpresaSalvaResponse(e *empresa.Empresa) EmpresaSalvaResponse {
	return EmpresaSalvaResponse{
		OK:              true,
		EmpresaResponse: ToEmpresaResponse(e),
	}
}

// ToListaEmpresasResponse monta a resposta de listagem
func ToListaEmpresasResponse(empresas []*empresa.Empresa) ListaEmpresasResponse {
	lista := make([]EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		lista = append(lista, ToEmpresaResponse(e))
	}
	return ListaEmpresasResponse{
		OK:       true,
		Empresas: lista,
	}
}
