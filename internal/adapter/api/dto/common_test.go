package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Ativo Bit `json:"ativo"`
		Ref   Bit `json:"ref"`
	}{Ativo: true, Ref: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ativo":1,"ref":0}`, string(out))
}

func TestBitUnmarshal(t *testing.T) {
	tests := []struct {
		entrada string
		querido bool
	}{
		{`1`, true},
		{`0`, false},
		{`true`, true},
		{`false`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`null`, false},
		{`2`, true},
	}

	for _, tt := range tests {
		var b Bit
		err := json.Unmarshal([]byte(tt.entrada), &b)
		require.NoError(t, err, tt.entrada)
		assert.Equal(t, tt.querido, b.Bool(), tt.entrada)
	}
}

func TestBitUnmarshalInvalido(t *testing.T) {
	var b Bit
	err := json.Unmarshal([]byte(`"sim"`), &b)
	assert.Error(t, err)
}

func TestRespostaErroEnvelope(t *testing.T) {
	out, err := json.Marshal(NovaRespostaErro("empresa_id é obrigatório"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":"empresa_id é obrigatório"}`, string(out))
}
