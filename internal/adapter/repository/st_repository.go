package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/st"
)

// Erros específicos do repositório
var (
	ErrRegraSTNaoEncontrada = errors.New("regra de ST não encontrada")
)

// STRepository implementa a interface st.Repository
type STRepository struct {
	db *pgxpool.Pool
}

// NewSTRepository cria uma nova instância de STRepository
func NewSTRepository(db *pgxpool.Pool) st.Repository {
	return &STRepository{
		db: db,
	}
}

// Criar implementa st.Repository.Criar
func (r *STRepository) Criar(ctx context.Context, regra *st.Regra) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO st_regras (
			id, empresa_id, destino_codigo, operacao, tem_st, variantes_json,
			parametros_json, ativo, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		regra.ID, regra.EmpresaID, regra.DestinoCodigo, regra.Operacao, regra.TemST,
		jsonbOuNulo(regra.VariantesJSON), jsonbOuNulo(regra.ParametrosJSON),
		regra.Ativo, regra.CreatedAt, regra.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar regra de ST: %w", err)
	}

	return nil
}

// Atualizar implementa st.Repository.Atualizar
func (r *STRepository) Atualizar(ctx context.Context, regra *st.Regra) error {
	result, err := r.db.Exec(ctx,
		`UPDATE st_regras SET
			destino_codigo = $1, operacao = $2, tem_st = $3, variantes_json = $4,
			parametros_json = $5, ativo = $6, updated_at = $7
		WHERE id = $8 AND empresa_id = $9`,
		regra.DestinoCodigo, regra.Operacao, regra.TemST,
		jsonbOuNulo(regra.VariantesJSON), jsonbOuNulo(regra.ParametrosJSON),
		regra.Ativo, regra.UpdatedAt, regra.ID, regra.EmpresaID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar regra de ST: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRegraSTNaoEncontrada
	}

	return nil
}

// BuscarPorID implementa st.Repository.BuscarPorID
func (r *STRepository) BuscarPorID(ctx context.Context, id string) (*st.Regra, error) {
	var regra st.Regra

	err := r.db.QueryRow(ctx,
		`SELECT id, empresa_id, destino_codigo, operacao, tem_st, variantes_json,
			parametros_json, ativo, created_at, updated_at
		FROM st_regras WHERE id = $1`,
		id).Scan(&regra.ID, &regra.EmpresaID, &regra.DestinoCodigo, &regra.Operacao,
		&regra.TemST, &regra.VariantesJSON, &regra.ParametrosJSON, &regra.Ativo,
		&regra.CreatedAt, &regra.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRegraSTNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar regra de ST: %w", err)
	}

	return &regra, nil
}

// Listar implementa st.Repository.Listar
func (r *STRepository) Listar(ctx context.Context, f st.Filtro) ([]*st.Regra, error) {
	query := `SELECT id, empresa_id, destino_codigo, operacao, tem_st, variantes_json,
		parametros_json, ativo, created_at, updated_at
	FROM st_regras WHERE empresa_id = $1`
	args := []any{f.EmpresaID}

	if f.Destino != "" {
		args = append(args, f.Destino)
		query += fmt.Sprintf(" AND destino_codigo = $%d", len(args))
	}
	if f.Operacao != "" {
		args = append(args, f.Operacao)
		query += fmt.Sprintf(" AND operacao = $%d", len(args))
	}
	query += " ORDER BY destino_codigo, operacao"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar regras de ST: %w", err)
	}
	defer rows.Close()

	regras := make([]*st.Regra, 0)
	for rows.Next() {
		var regra st.Regra
		if err := rows.Scan(&regra.ID, &regra.EmpresaID, &regra.DestinoCodigo,
			&regra.Operacao, &regra.TemST, &regra.VariantesJSON, &regra.ParametrosJSON,
			&regra.Ativo, &regra.CreatedAt, &regra.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler regra de ST: %w", err)
		}
		regras = append(regras, &regra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return regras, nil
}
