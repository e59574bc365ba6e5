package pauta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apontar(v float64) *float64 {
	return &v
}

func TestNovoAplicaPadroes(t *testing.T) {
	item, err := Novo("emp-1", "rs", "", "prod-1", TipoPreco)
	require.NoError(t, err)

	assert.Equal(t, "RS", item.DestinoCodigo)
	assert.Equal(t, "INTERNA", item.Operacao)
	assert.True(t, item.Ativo)
	assert.NotEmpty(t, item.ID)
}

func TestNovoCamposObrigatorios(t *testing.T) {
	_, err := Novo("", "RS", "", "prod-1", TipoPreco)
	assert.ErrorIs(t, err, ErrEmpresaVazia)

	_, err = Novo("emp-1", "", "", "prod-1", TipoPreco)
	assert.ErrorIs(t, err, ErrDestinoVazio)

	_, err = Novo("emp-1", "RS", "", "", TipoPreco)
	assert.ErrorIs(t, err, ErrProdutoVazio)
}

func TestValidarTipo(t *testing.T) {
	tests := []struct {
		name    string
		montar  func(i *Item)
		wantErr error
	}{
		{
			name: "PRECO sem pauta_preco",
			montar: func(i *Item) {
				i.Tipo = TipoPreco
				i.PercentualAplicacao = apontar(100)
			},
			wantErr: ErrPrecoObrigatorio,
		},
		{
			name: "PRECO sem percentual_aplicacao",
			montar: func(i *Item) {
				i.Tipo = TipoPreco
				i.PautaPreco = apontar(10.5)
			},
			wantErr: ErrAplicacaoObrigatoria,
		},
		{
			name: "PRECO completo",
			montar: func(i *Item) {
				i.Tipo = TipoPreco
				i.PautaPreco = apontar(10.5)
				i.PercentualAplicacao = apontar(100)
			},
		},
		{
			name: "PERCENTUAL sem pauta_percentual",
			montar: func(i *Item) {
				i.Tipo = TipoPercentual
			},
			wantErr: ErrPercentualObrigatorio,
		},
		{
			name: "PERCENTUAL completo",
			montar: func(i *Item) {
				i.Tipo = TipoPercentual
				i.PautaPercentual = apontar(15)
			},
		},
		{
			name: "FORMULA_ESPECIAL sem mva_pct",
			montar: func(i *Item) {
				i.Tipo = TipoFormulaEspecial
				i.AliquotaPct = apontar(18)
			},
			wantErr: ErrMVAObrigatorio,
		},
		{
			name: "FORMULA_ESPECIAL sem aliquota_pct",
			montar: func(i *Item) {
				i.Tipo = TipoFormulaEspecial
				i.MVAPct = apontar(40)
			},
			wantErr: ErrAliquotaObrigatoria,
		},
		{
			name: "FORMULA_ESPECIAL completo",
			montar: func(i *Item) {
				i.Tipo = TipoFormulaEspecial
				i.MVAPct = apontar(40)
				i.AliquotaPct = apontar(18)
			},
		},
		{
			name: "tipo desconhecido",
			montar: func(i *Item) {
				i.Tipo = Tipo("TABELADO")
			},
			wantErr: ErrTipoInvalido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Novo("emp-1", "RS", "INTERNA", "prod-1", TipoPreco)
			require.NoError(t, err)
			tt.montar(item)

			err = item.ValidarTipo()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
