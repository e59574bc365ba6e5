package produto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapearLinhasTemplatePadrao(t *testing.T) {
	rows := []map[string]any{
		{
			"CODIGO":    1001.0,
			"DESCRIÇÃO": "  Macarrão Espaguete 500g ",
			"UND":       "CX",
			"FAMÍLIA":   "MASSAS",
			"PESO":      "1,5",
			"PALLET":    "8x5",
			"EAN":       "7891234567890",
		},
	}

	linhas, err := MapearLinhas(TemplatePadrao, "emp-1", rows)
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	require.Empty(t, linhas[0].Erro)

	p := linhas[0].Produto
	assert.Equal(t, "emp-1", p.EmpresaID)
	assert.Equal(t, "1001", p.SKU)
	assert.Equal(t, "Macarrão Espaguete 500g", p.Descricao)
	assert.Equal(t, "CX", p.Unidade)
	assert.Equal(t, "MASSAS", p.Familia)
	assert.Equal(t, 1, p.GrupoPreco)
	require.NotNil(t, p.PesoKg)
	assert.Equal(t, 1.5, *p.PesoKg)
	assert.Equal(t, "7891234567890", p.EAN13)
	require.NotNil(t, p.PalletCaixas)
	assert.Equal(t, 40, *p.PalletCaixas)
}

func TestMapearLinhasLinhaSemSKU(t *testing.T) {
	rows := []map[string]any{
		{"sku": "A", "descricao": "Produto A"},
		{"sku": "  ", "descricao": "Produto sem código"},
		{"sku": "C", "descricao": "Produto C"},
	}

	linhas, err := MapearLinhas(TemplatePadrao, "emp-1", rows)
	require.NoError(t, err)
	require.Len(t, linhas, 3)

	assert.Empty(t, linhas[0].Erro)
	assert.Equal(t, 2, linhas[1].Linha)
	assert.Equal(t, "SKU vazio.", linhas[1].Erro)
	assert.Nil(t, linhas[1].Produto)
	assert.Empty(t, linhas[2].Erro)
}

func TestMapearLinhasTemplateDesconhecido(t *testing.T) {
	_, err := MapearLinhas(Template("XLS_QUALQUER"), "emp-1", nil)
	assert.ErrorIs(t, err, ErrTemplateDesconhecido)
}

func TestTemplateGermaniDescartaDimensoes(t *testing.T) {
	rows := []map[string]any{
		{
			"sku":           "G1",
			"descricao":     "Farinha 1kg",
			"cubagem_m3":    0.02,
			"peso_liq_kg":   1.0,
			"peso_bruto_kg": 1.1,
		},
	}

	linhas, err := MapearLinhas(TemplateGermaniProdutos, "emp-1", rows)
	require.NoError(t, err)

	p := linhas[0].Produto
	assert.Nil(t, p.CubagemM3)
	assert.Nil(t, p.PesoLiqKg)
	assert.Nil(t, p.PesoBrutoKg)
}

func TestTemplateDallasUsaPesoBrutoComoFallback(t *testing.T) {
	rows := []map[string]any{
		{"sku": "D1", "descricao": "Arroz 5kg", "peso_bruto_kg": 5.2},
	}

	linhas, err := MapearLinhas(TemplateDallasLogistica, "emp-1", rows)
	require.NoError(t, err)

	p := linhas[0].Produto
	require.NotNil(t, p.PesoKg)
	assert.Equal(t, 5.2, *p.PesoKg)
}

func TestMapearLinhasAtivoNumerico(t *testing.T) {
	rows := []map[string]any{
		{"sku": "A", "descricao": "Ativo omitido"},
		{"sku": "B", "descricao": "Inativo", "ativo": 0.0},
		{"sku": "C", "descricao": "Referência", "ref_familia": "1"},
	}

	linhas, err := MapearLinhas(TemplatePadrao, "emp-1", rows)
	require.NoError(t, err)

	assert.True(t, linhas[0].Produto.Ativo)
	assert.False(t, linhas[1].Produto.Ativo)
	assert.True(t, linhas[2].Produto.RefFamilia)
}

func TestCaixasDoPallet(t *testing.T) {
	tests := []struct {
		pallet string
		caixas int
		ok     bool
	}{
		{"8x5", 40, true},
		{"10X4", 40, true},
		{" 6x6 ", 36, true},
		{"8 x 5", 0, false},
		{"pallet", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		caixas, ok := CaixasDoPallet(tt.pallet)
		assert.Equal(t, tt.ok, ok, tt.pallet)
		assert.Equal(t, tt.caixas, caixas, tt.pallet)
	}
}

func TestReconciliarInsereEAtualiza(t *testing.T) {
	linhas, err := MapearLinhas(TemplatePadrao, "emp-1", []map[string]any{
		{"sku": "EXISTENTE", "descricao": "Já cadastrado"},
		{"sku": "NOVO", "descricao": "Primeira aparição"},
		{"sku": "NOVO", "descricao": "Segunda aparição do mesmo lote"},
		{"sku": "", "descricao": "Linha quebrada"},
	})
	require.NoError(t, err)

	index := map[string]string{"EXISTENTE": "id-existente"}
	inserir, atualizar, resultado := Reconciliar(linhas, index)

	assert.Equal(t, 1, resultado.Inseridos)
	assert.Equal(t, 2, resultado.Atualizados)
	require.Len(t, resultado.Erros, 1)
	assert.Equal(t, 4, resultado.Erros[0].Linha)
	assert.Equal(t, "SKU vazio.", resultado.Erros[0].Erro)

	require.Len(t, inserir, 1)
	assert.Equal(t, "NOVO", inserir[0].SKU)
	assert.NotEmpty(t, inserir[0].ID)

	require.Len(t, atualizar, 2)
	assert.Equal(t, "id-existente", atualizar[0].ID)
	// a segunda linha do SKU NOVO atualiza o id recém-inserido
	assert.Equal(t, inserir[0].ID, atualizar[1].ID)
}

func TestReconciliarCarimbaTimestamps(t *testing.T) {
	linhas, err := MapearLinhas(TemplatePadrao, "emp-1", []map[string]any{
		{"sku": "EXISTENTE", "descricao": "Já cadastrado"},
		{"sku": "NOVO", "descricao": "Primeira aparição"},
	})
	require.NoError(t, err)

	inserir, atualizar, _ := Reconciliar(linhas, map[string]string{"EXISTENTE": "id-existente"})

	// o UPDATE do lote grava updated_at e o INSERT grava os dois campos
	require.Len(t, inserir, 1)
	assert.False(t, inserir[0].CreatedAt.IsZero(), "produto importado deve ter created_at preenchido")
	assert.False(t, inserir[0].UpdatedAt.IsZero(), "produto importado deve ter updated_at preenchido")

	require.Len(t, atualizar, 1)
	assert.False(t, atualizar[0].UpdatedAt.IsZero(), "atualização do lote não pode regredir updated_at")
}

func TestReconciliarLoteVazio(t *testing.T) {
	inserir, atualizar, resultado := Reconciliar(nil, map[string]string{})

	assert.Empty(t, inserir)
	assert.Empty(t, atualizar)
	assert.Equal(t, 0, resultado.Inseridos)
	assert.Equal(t, 0, resultado.Atualizados)
	assert.NotNil(t, resultado.Erros)
	assert.Empty(t, resultado.Erros)
}
