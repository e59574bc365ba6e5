package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/custo"
)

// Erros específicos do repositório
var (
	ErrCustoNaoEncontrado = errors.New("custo logístico não encontrado")
)

// CustoRepository implementa a interface custo.Repository
type CustoRepository struct {
	db *pgxpool.Pool
}

// NewCustoRepository cria uma nova instância de CustoRepository
func NewCustoRepository(db *pgxpool.Pool) custo.Repository {
	return &CustoRepository{
		db: db,
	}
}

// Criar implementa custo.Repository.Criar
func (r *CustoRepository) Criar(ctx context.Context, c *custo.Custo) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO custos_logisticos (
			id, empresa_id, destino_codigo, operacao, tipo_custo, valor,
			unidade_cobranca, aplica_em_json, ativo, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.EmpresaID, c.DestinoCodigo, c.Operacao, c.TipoCusto, c.Valor,
		c.UnidadeCobranca, jsonbOuNulo(c.AplicaEmJSON), c.Ativo, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar custo logístico: %w", err)
	}

	return nil
}

// Atualizar implementa custo.Repository.Atualizar
func (r *CustoRepository) Atualizar(ctx context.Context, c *custo.Custo) error {
	result, err := r.db.Exec(ctx,
		`UPDATE custos_logisticos SET
			destino_codigo = $1, operacao = $2, tipo_custo = $3, valor = $4,
			unidade_cobranca = $5, aplica_em_json = $6, ativo = $7, updated_at = $8
		WHERE id = $9 AND empresa_id = $10`,
		c.DestinoCodigo, c.Operacao, c.TipoCusto, c.Valor, c.UnidadeCobranca,
		jsonbOuNulo(c.AplicaEmJSON), c.Ativo, c.UpdatedAt, c.ID, c.EmpresaID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar custo logístico: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustoNaoEncontrado
	}

	return nil
}

// BuscarPorID implementa custo.Repository.BuscarPorID
func (r *CustoRepository) BuscarPorID(ctx context.Context, id string) (*custo.Custo, error) {
	var c custo.Custo

	err := r.db.QueryRow(ctx,
		`SELECT id, empresa_id, destino_codigo, operacao, tipo_custo, valor,
			unidade_cobranca, aplica_em_json, ativo, created_at, updated_at
		FROM custos_logisticos WHERE id = $1`,
		id).Scan(&c.ID, &c.EmpresaID, &c.DestinoCodigo, &c.Operacao, &c.TipoCusto,
		&c.Valor, &c.UnidadeCobranca, &c.AplicaEmJSON, &c.Ativo, &c.CreatedAt,
		&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar custo logístico: %w", err)
	}

	return &c, nil
}

// Listar implementa custo.Repository.Listar
func (r *CustoRepository) Listar(ctx context.Context, f custo.Filtro) ([]*custo.Custo, error) {
	query := `SELECT id, empresa_id, destino_codigo, operacao, tipo_custo, valor,
		unidade_cobranca, aplica_em_json, ativo, created_at, updated_at
	FROM custos_logisticos WHERE empresa_id = $1`
	args := []any{f.EmpresaID}

	if f.Destino != "" {
		args = append(args, f.Destino)
		query += fmt.Sprintf(" AND destino_codigo = $%d", len(args))
	}
	if f.Operacao != "" {
		args = append(args, f.Operacao)
		query += fmt.Sprintf(" AND operacao = $%d", len(args))
	}
	query += " ORDER BY destino_codigo, tipo_custo"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar custos logísticos: %w", err)
	}
	defer rows.Close()

	custos := make([]*custo.Custo, 0)
	for rows.Next() {
		var c custo.Custo
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.DestinoCodigo, &c.Operacao,
			&c.TipoCusto, &c.Valor, &c.UnidadeCobranca, &c.AplicaEmJSON, &c.Ativo,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler custo logístico: %w", err)
		}
		custos = append(custos, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return custos, nil
}
