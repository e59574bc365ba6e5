package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
)

// AuditoriaRepository implementa a interface auditoria.Repository
type AuditoriaRepository struct {
	db *pgxpool.Pool
}

// NewAuditoriaRepository cria uma nova instância de AuditoriaRepository
func NewAuditoriaRepository(db *pgxpool.Pool) auditoria.Repository {
	return &AuditoriaRepository{
		db: db,
	}
}

// Registrar implementa auditoria.Repository.Registrar. Uma falha aqui
// propaga e derruba a requisição: a trilha não é melhor-esforço.
func (r *AuditoriaRepository) Registrar(ctx context.Context, e *auditoria.Entrada) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO auditoria (
			id, empresa_id, entidade, entidade_id, acao, payload_json, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, nuloSeVazio(e.EmpresaID), e.Entidade, nuloSeVazio(e.EntidadeID),
		e.Acao, jsonbOuNulo(e.PayloadJSON), e.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar auditoria: %w", err)
	}

	return nil
}
