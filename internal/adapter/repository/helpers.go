package repository

import "encoding/json"

// nuloSeVazio converte string vazia em NULL no banco
func nuloSeVazio(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// jsonbOuNulo evita gravar o literal "null" ou bytes vazios em colunas JSONB
func jsonbOuNulo(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
