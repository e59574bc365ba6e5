package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func montarPautaRouter(pautaRepo *fakePautaRepo, auditoriaRepo *fakeAuditoriaRepo) *gin.Engine {
	c := NewPautaController(pautaRepo, auditoriaRepo, logger.NewLogger())
	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/pauta-itens", c.Listar)
	v1.POST("/pauta-itens", c.Criar)
	v1.PUT("/pauta-itens/:id", c.Atualizar)
	return r
}

func TestCriarPautaPreco(t *testing.T) {
	pautaRepo := newFakePautaRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}
	r := montarPautaRouter(pautaRepo, auditoriaRepo)

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "rs",
		"produto_id": "prod-1",
		"pauta_tipo": "PRECO",
		"pauta_preco": 12.50,
		"percentual_aplicacao": 100,
		"ativo": 1
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pauta-itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "RS", resp["destino_codigo"])
	assert.Equal(t, "INTERNA", resp["operacao"], "operação assume o padrão quando omitida")
	assert.Equal(t, 12.50, resp["pauta_preco"])

	assert.Len(t, pautaRepo.itens, 1)
	assert.Len(t, auditoriaRepo.entradas, 1)
}

func TestCriarPautaPrecoSemPreco(t *testing.T) {
	pautaRepo := newFakePautaRepo()
	r := montarPautaRouter(pautaRepo, &fakeAuditoriaRepo{})

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"produto_id": "prod-1",
		"pauta_tipo": "PRECO",
		"percentual_aplicacao": 100
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pauta-itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pauta_preco é obrigatório")
	assert.Empty(t, pautaRepo.itens, "nada é gravado quando o tipo está incompleto")
}

func TestCriarPautaTipoInvalido(t *testing.T) {
	pautaRepo := newFakePautaRepo()
	r := montarPautaRouter(pautaRepo, &fakeAuditoriaRepo{})

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"produto_id": "prod-1",
		"pauta_tipo": "TABELADO"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pauta-itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pauta_tipo inválido")
	assert.Empty(t, pautaRepo.itens)
}

func TestListarPautaFiltraPorDestino(t *testing.T) {
	pautaRepo := newFakePautaRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}
	r := montarPautaRouter(pautaRepo, auditoriaRepo)

	for _, corpo := range []string{
		`{"empresa_id":"emp-1","destino_codigo":"RS","produto_id":"p1","pauta_tipo":"PERCENTUAL","pauta_percentual":15}`,
		`{"empresa_id":"emp-1","destino_codigo":"SP","produto_id":"p2","pauta_tipo":"PERCENTUAL","pauta_percentual":18}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/pauta-itens", strings.NewReader(corpo))
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/pauta-itens?empresa_id=emp-1&destino=RS", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK    bool             `json:"ok"`
		Itens []map[string]any `json:"itens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Itens, 1)
	assert.Equal(t, "RS", resp.Itens[0]["destino_codigo"])
}
