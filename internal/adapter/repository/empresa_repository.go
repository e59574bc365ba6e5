package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/empresa"
)

// Erros específicos do repositório
var (
	ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")
)

// EmpresaRepository implementa a interface empresa.Repository
type EmpresaRepository struct {
	db *pgxpool.Pool
}

// NewEmpresaRepository cria uma nova instância de EmpresaRepository
func NewEmpresaRepository(db *pgxpool.Pool) empresa.Repository {
	return &EmpresaRepository{
		db: db,
	}
}

// Criar implementa empresa.Repository.Criar
func (r *EmpresaRepository) Criar(ctx context.Context, e *empresa.Empresa) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO empresas (
			id, nome, status, logo_url, tema_json, config_json, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Nome, e.Status, nuloSeVazio(e.LogoURL), jsonbOuNulo(e.TemaJSON),
		jsonbOuNulo(e.ConfigJSON), e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar empresa: %w", err)
	}

	return nil
}

// Atualizar implementa empresa.Repository.Atualizar
func (r *EmpresaRepository) Atualizar(ctx context.Context, e *empresa.Empresa) error {
	result, err := r.db.Exec(ctx,
		`UPDATE empresas SET
			nome = $1, status = $2, logo_url = $3, tema_json = $4,
			config_json = $5, updated_at = $6
		WHERE id = $7`,
		e.Nome, e.Status, nuloSeVazio(e.LogoURL), jsonbOuNulo(e.TemaJSON),
		jsonbOuNulo(e.ConfigJSON), e.UpdatedAt, e.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEmpresaNaoEncontrada
	}

	return nil
}

// BuscarPorID implementa empresa.Repository.BuscarPorID
func (r *EmpresaRepository) BuscarPorID(ctx context.Context, id string) (*empresa.Empresa, error) {
	var e empresa.Empresa
	var logoURL *string

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, status, logo_url, tema_json, config_json, created_at, updated_at
		FROM empresas WHERE id = $1`,
		id).Scan(&e.ID, &e.Nome, &e.Status, &logoURL, &e.TemaJSON, &e.ConfigJSON,
		&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmpresaNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	if logoURL != nil {
		e.LogoURL = *logoURL
	}

	return &e, nil
}

// Listar implementa empresa.Repository.Listar
func (r *EmpresaRepository) Listar(ctx context.Context) ([]*empresa.Empresa, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, status, logo_url, tema_json, config_json, created_at, updated_at
		FROM empresas
		ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas: %w", err)
	}
	defer rows.Close()

	empresas := make([]*empresa.Empresa, 0)
	for rows.Next() {
		var e empresa.Empresa
		var logoURL *string

		if err := rows.Scan(&e.ID, &e.Nome, &e.Status, &logoURL, &e.TemaJSON,
			&e.ConfigJSON, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler empresa: %w", err)
		}

		if logoURL != nil {
			e.LogoURL = *logoURL
		}

		empresas = append(empresas, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return empresas, nil
}
