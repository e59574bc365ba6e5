package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// RespostaErro representa a estrutura de resposta para erros
type RespostaErro struct {
	OK   bool   `json:"ok"`
	Erro string `json:"error"`
}

// NovaRespostaErro cria uma nova resposta de erro
func NovaRespostaErro(mensagem string) RespostaErro {
	return RespostaErro{
		OK:   false,
		Erro: mensagem,
	}
}

// Bit é um booleano serializado como 0/1, convenção herdada da interface
// web. Na entrada aceita bool, número ou string ("1", "true").
type Bit bool

// MarshalJSON implementa json.Marshaler
func (b Bit) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implementa json.Unmarshaler
func (b *Bit) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch s {
	case "null", "false", `"false"`, `""`:
		*b = false
		return nil
	case "true", `"true"`:
		*b = true
		return nil
	}

	n, err := strconv.ParseFloat(strings.Trim(s, `"`), 64)
	if err != nil {
		return fmt.Errorf("valor booleano inválido: %s", s)
	}
	*b = n != 0
	return nil
}

// Bool devolve o valor como bool nativo
func (b Bit) Bool() bool {
	return bool(b)
}

// NovoBit converte um bool nativo
func NovoBit(v bool) Bit {
	return Bit(v)
}

// bitOuPadrao resolve um Bit opcional da requisição
func bitOuPadrao(b *Bit, padrao bool) bool {
	if b == nil {
		return padrao
	}
	return bool(*b)
}
