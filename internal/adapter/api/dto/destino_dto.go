package dto

import (
	"github.com/precodigital/tabelas-precos-api/internal/domain/destino"
)

// DestinoRequest representa a requisição de destino (upsert)
type DestinoRequest struct {
	Codigo    string `json:"codigo" binding:"required"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao" binding:"required"`
}

// DestinoResponse representa a resposta de destino
type DestinoResponse struct {
	Codigo    string `json:"codigo"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
}

// DestinoSalvoResponse é a resposta do upsert de destino
type DestinoSalvoResponse struct {
	OK bool `json:"ok"`
	DestinoResponse
}

// ListaDestinosResponse representa a resposta de listagem de destinos
type ListaDestinosResponse struct {
	OK       bool              `json:"ok"`
	Destinos []DestinoResponse `json:"destinos"`
}

// ToDestinoResponse converte a entidade para o formato de resposta
func ToDestinoResponse(d *destino.Destino) DestinoResponse {
	return DestinoResponse{
		Codigo:    d.Codigo,
		Tipo:      d.Tipo,
		Descricao: d.Descricao,
	}
}

// ToDestinoSalvoResponse monta a resposta do upsert
func ToDestinoSalvoResponse(d *destino.Destino) DestinoSalvoResponse {
	return DestinoSalvoResponse{
		OK:              true,
		DestinoResponse: ToDestinoResponse(d),
	}
}

// ToListaDestinosResponse monta a resposta de listagem
func ToListaDestinosResponse(destinos []*destino.Destino) ListaDestinosResponse {
	lista := make([]DestinoResponse, 0, len(destinos))
	for _, d := range destinos {
		lista = append(lista, ToDestinoResponse(d))
	}
	return ListaDestinosResponse{
		OK:       true,
		Destinos: lista,
	}
}
