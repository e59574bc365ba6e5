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

func montarCustoRouter(custoRepo *fakeCustoRepo, auditoriaRepo *fakeAuditoriaRepo) *gin.Engine {
	c := NewCustoController(custoRepo, auditoriaRepo, logger.NewLogger())
	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/custos-logisticos", c.Listar)
	v1.POST("/custos-logisticos", c.Criar)
	v1.PUT("/custos-logisticos/:id", c.Atualizar)
	return r
}

func TestCriarCusto(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}
	r := montarCustoRouter(custoRepo, auditoriaRepo)

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "rs",
		"tipo_custo": "PALETIZACAO",
		"unidade_cobranca": "PALLET",
		"valor": 35.90
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "RS", resp["destino_codigo"], "destino é normalizado em maiúsculas")
	assert.Equal(t, "35.9", resp["valor"])

	assert.Len(t, custoRepo.custos, 1)
	assert.Len(t, auditoriaRepo.entradas, 1)
}

func TestCriarCustoSemValor(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	r := montarCustoRouter(custoRepo, &fakeAuditoriaRepo{})

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"tipo_custo": "PALETIZACAO",
		"unidade_cobranca": "PALLET"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, custoRepo.custos, "nada é gravado quando o valor é omitido")
}

func TestCriarCustoValorZero(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	r := montarCustoRouter(custoRepo, &fakeAuditoriaRepo{})

	// zero explícito é um custo válido, diferente de valor omitido
	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"tipo_custo": "FRETE",
		"unidade_cobranca": "KG",
		"valor": 0
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, custoRepo.custos, 1)
}

func TestCriarCustoValorNegativo(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	r := montarCustoRouter(custoRepo, &fakeAuditoriaRepo{})

	corpo := `{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"tipo_custo": "FRETE",
		"unidade_cobranca": "KG",
		"valor": -2.5
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valor não pode ser negativo")
	assert.Empty(t, custoRepo.custos)
}

func TestAtualizarCustoSemValor(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	r := montarCustoRouter(custoRepo, &fakeAuditoriaRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(`{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"tipo_custo": "FRETE",
		"unidade_cobranca": "KG",
		"valor": 10
	}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	id := criado["id"].(string)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/v1/custos-logisticos/"+id, strings.NewReader(`{
		"empresa_id": "emp-1",
		"destino_codigo": "RS",
		"tipo_custo": "FRETE",
		"unidade_cobranca": "KG"
	}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "10", custoRepo.custos[id].Valor.String(), "o custo original permanece intacto")
}

func TestListarCustosFiltraPorDestino(t *testing.T) {
	custoRepo := newFakeCustoRepo()
	r := montarCustoRouter(custoRepo, &fakeAuditoriaRepo{})

	for _, corpo := range []string{
		`{"empresa_id":"emp-1","destino_codigo":"RS","tipo_custo":"FRETE","unidade_cobranca":"KG","valor":1.2}`,
		`{"empresa_id":"emp-1","destino_codigo":"SP","tipo_custo":"FRETE","unidade_cobranca":"KG","valor":1.8}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/custos-logisticos", strings.NewReader(corpo))
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/custos-logisticos?empresa_id=emp-1&destino=RS", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK     bool             `json:"ok"`
		Custos []map[string]any `json:"custos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Custos, 1)
	assert.Equal(t, "RS", resp.Custos[0]["destino_codigo"])
}
