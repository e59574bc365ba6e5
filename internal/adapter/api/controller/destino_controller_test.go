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

func montarDestinoRouter(destinoRepo *fakeDestinoRepo, auditoriaRepo *fakeAuditoriaRepo) *gin.Engine {
	c := NewDestinoController(destinoRepo, auditoriaRepo, logger.NewLogger())
	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/destinos", c.Listar)
	v1.POST("/destinos", c.Upsert)
	return r
}

func TestUpsertDestino(t *testing.T) {
	destinoRepo := newFakeDestinoRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}
	r := montarDestinoRouter(destinoRepo, auditoriaRepo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/destinos", strings.NewReader(`{"codigo":"rs","descricao":"Rio Grande do Sul"}`))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "RS", resp["codigo"], "código é normalizado em maiúsculas")
	assert.Equal(t, "UF", resp["tipo"], "tipo assume o padrão quando omitido")

	require.Len(t, auditoriaRepo.entradas, 1)
	assert.Equal(t, "UPSERT", string(auditoriaRepo.entradas[0].Acao))
	assert.Empty(t, auditoriaRepo.entradas[0].EmpresaID, "destinos são globais")
}

func TestUpsertDestinoSobrescreve(t *testing.T) {
	destinoRepo := newFakeDestinoRepo()
	r := montarDestinoRouter(destinoRepo, &fakeAuditoriaRepo{})

	for _, corpo := range []string{
		`{"codigo":"SP","descricao":"Sao Paulo"}`,
		`{"codigo":"SP","tipo":"REGIAO","descricao":"São Paulo"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/destinos", strings.NewReader(corpo))
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, destinoRepo.destinos, 1, "o segundo POST sobrescreve, não duplica")
	assert.Equal(t, "São Paulo", destinoRepo.destinos["SP"].Descricao)
	assert.Equal(t, "REGIAO", destinoRepo.destinos["SP"].Tipo)
}

func TestUpsertDestinoSemDescricao(t *testing.T) {
	r := montarDestinoRouter(newFakeDestinoRepo(), &fakeAuditoriaRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/destinos", strings.NewReader(`{"codigo":"RS"}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
}

func TestListarDestinos(t *testing.T) {
	destinoRepo := newFakeDestinoRepo()
	r := montarDestinoRouter(destinoRepo, &fakeAuditoriaRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/destinos", strings.NewReader(`{"codigo":"RS","descricao":"Rio Grande do Sul"}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/destinos", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK       bool             `json:"ok"`
		Destinos []map[string]any `json:"destinos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Destinos, 1)
	assert.Equal(t, "RS", resp.Destinos[0]["codigo"])
}
