package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/domain/produto"
	"github.com/precodigital/tabelas-precos-api/internal/domain/tabela"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func montarTabelaRouter(tabelaRepo *fakeTabelaRepo, produtoRepo *fakeProdutoRepo, auditoriaRepo *fakeAuditoriaRepo) *gin.Engine {
	c := NewTabelaController(tabelaRepo, produtoRepo, auditoriaRepo, logger.NewLogger())
	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/tabelas", c.Listar)
	v1.POST("/tabelas", c.Criar)
	v1.GET("/tabelas/:id/itens", c.ListarItens)
	v1.PUT("/tabelas/:id/itens", c.SubstituirItens)
	return r
}

func cadastrarProduto(t *testing.T, repo *fakeProdutoRepo, empresaID, sku string) *produto.Produto {
	t.Helper()
	p, err := produto.Novo(empresaID, sku, "Produto "+sku)
	require.NoError(t, err)
	repo.produtos[p.ID] = p
	return p
}

func TestSubstituirItensTabelaInexistente(t *testing.T) {
	r := montarTabelaRouter(newFakeTabelaRepo(), newFakeProdutoRepo(), &fakeAuditoriaRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/nao-existe/itens", strings.NewReader(`{"itens":[]}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"tabela não encontrada"}`, rec.Body.String())
}

func TestSubstituirItensPrecoNegativo(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	produtoRepo := newFakeProdutoRepo()

	tb, err := tabela.Nova("emp-1", "Tabela RS")
	require.NoError(t, err)
	tabelaRepo.tabelas[tb.ID] = tb
	p := cadastrarProduto(t, produtoRepo, "emp-1", "SKU1")

	r := montarTabelaRouter(tabelaRepo, produtoRepo, &fakeAuditoriaRepo{})

	corpo := `{"itens":[{"produto_id":"` + p.ID + `","preco":-1.50}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/"+tb.ID+"/itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, tabelaRepo.trocouItens, "nada deve ser gravado quando a validação falha")
}

func TestSubstituirItensProdutoDeOutraEmpresa(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	produtoRepo := newFakeProdutoRepo()

	tb, err := tabela.Nova("emp-1", "Tabela RS")
	require.NoError(t, err)
	tabelaRepo.tabelas[tb.ID] = tb
	alheio := cadastrarProduto(t, produtoRepo, "emp-2", "SKU-ALHEIO")

	r := montarTabelaRouter(tabelaRepo, produtoRepo, &fakeAuditoriaRepo{})

	corpo := `{"itens":[{"produto_id":"` + alheio.ID + `","preco":10}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/"+tb.ID+"/itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "produto não pertence à empresa")
	assert.False(t, tabelaRepo.trocouItens)
}

func TestSubstituirItensTrocaCompleta(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	produtoRepo := newFakeProdutoRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}

	tb, err := tabela.Nova("emp-1", "Tabela RS")
	require.NoError(t, err)
	tabelaRepo.tabelas[tb.ID] = tb

	// item antigo que deve desaparecer com a troca
	antigo := cadastrarProduto(t, produtoRepo, "emp-1", "ANTIGO")
	itemAntigo, err := tabela.NovoItem(tb.ID, antigo.ID, decimal.NewFromFloat(5))
	require.NoError(t, err)
	tabelaRepo.itens[tb.ID] = []*tabela.Item{itemAntigo}

	p1 := cadastrarProduto(t, produtoRepo, "emp-1", "SKU1")
	p2 := cadastrarProduto(t, produtoRepo, "emp-1", "SKU2")

	r := montarTabelaRouter(tabelaRepo, produtoRepo, auditoriaRepo)

	corpo := `{"itens":[{"produto_id":"` + p1.ID + `","preco":12.90},{"produto_id":"` + p2.ID + `","preco":0}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/"+tb.ID+"/itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		OK    bool `json:"ok"`
		Total int  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 2, resp.Total)

	require.Len(t, tabelaRepo.itensDaTroca, 2)
	assert.Equal(t, p1.ID, tabelaRepo.itensDaTroca[0].ProdutoID)
	require.Len(t, tabelaRepo.itens[tb.ID], 2, "o conjunto antigo é substituído por inteiro")

	require.Len(t, auditoriaRepo.entradas, 1)
	assert.Equal(t, "tabela_preco", auditoriaRepo.entradas[0].Entidade)
	assert.Equal(t, "REPLACE_ALL", string(auditoriaRepo.entradas[0].Acao))
}

func TestSubstituirItensSKUDuplicado(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	produtoRepo := newFakeProdutoRepo()

	tb, err := tabela.Nova("emp-1", "Tabela RS")
	require.NoError(t, err)
	tabelaRepo.tabelas[tb.ID] = tb

	// dois cadastros com o mesmo SKU: ambos pertencem à empresa e
	// ambos devem ser aceitos na troca
	repetido1 := cadastrarProduto(t, produtoRepo, "emp-1", "REPETIDO")
	repetido2 := cadastrarProduto(t, produtoRepo, "emp-1", "REPETIDO")

	r := montarTabelaRouter(tabelaRepo, produtoRepo, &fakeAuditoriaRepo{})

	corpo := `{"itens":[{"produto_id":"` + repetido1.ID + `","preco":10},{"produto_id":"` + repetido2.ID + `","preco":11}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/"+tb.ID+"/itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, tabelaRepo.itens[tb.ID], 2)
}

func TestSubstituirItensFalhaDeAuditoria(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	produtoRepo := newFakeProdutoRepo()
	auditoriaRepo := &fakeAuditoriaRepo{falha: errBancoIndisponivel}

	tb, err := tabela.Nova("emp-1", "Tabela RS")
	require.NoError(t, err)
	tabelaRepo.tabelas[tb.ID] = tb
	p := cadastrarProduto(t, produtoRepo, "emp-1", "SKU1")

	r := montarTabelaRouter(tabelaRepo, produtoRepo, auditoriaRepo)

	corpo := `{"itens":[{"produto_id":"` + p.ID + `","preco":1}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/tabelas/"+tb.ID+"/itens", strings.NewReader(corpo))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "conexão com o banco recusada")
}

func TestCriarTabela(t *testing.T) {
	tabelaRepo := newFakeTabelaRepo()
	auditoriaRepo := &fakeAuditoriaRepo{}
	r := montarTabelaRouter(tabelaRepo, newFakeProdutoRepo(), auditoriaRepo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tabelas", strings.NewReader(`{"empresa_id":"emp-1","nome":"Tabela SP"}`))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		OK   bool   `json:"ok"`
		ID   string `json:"id"`
		Nome string `json:"nome"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Tabela SP", resp.Nome)
	assert.Len(t, auditoriaRepo.entradas, 1)
}

func TestListarTabelasSemEmpresa(t *testing.T) {
	r := montarTabelaRouter(newFakeTabelaRepo(), newFakeProdutoRepo(), &fakeAuditoriaRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/tabelas", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"empresa_id é obrigatório"}`, rec.Body.String())
}
