package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/ncm"
	"github.com/precodigital/tabelas-precos-api/internal/infrastructure/database"
)

// NCMRepository implementa a interface ncm.Repository
type NCMRepository struct {
	db *pgxpool.Pool
}

// NewNCMRepository cria uma nova instância de NCMRepository
func NewNCMRepository(db *pgxpool.Pool) ncm.Repository {
	return &NCMRepository{
		db: db,
	}
}

// Criar implementa ncm.Repository.Criar
func (r *NCMRepository) Criar(ctx context.Context, c *ncm.Categoria) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ncm_categorias (id, empresa_id, nome, ncm, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.EmpresaID, c.Nome, c.NCM, c.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar categoria NCM: %w", err)
	}

	return nil
}

// ListarPorEmpresa implementa ncm.Repository.ListarPorEmpresa
func (r *NCMRepository) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*ncm.Categoria, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, empresa_id, nome, ncm, created_at
		FROM ncm_categorias
		WHERE empresa_id = $1
		ORDER BY nome ASC`,
		empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias NCM: %w", err)
	}
	defer rows.Close()

	categorias := make([]*ncm.Categoria, 0)
	for rows.Next() {
		var c ncm.Categoria
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nome, &c.NCM, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria NCM: %w", err)
		}
		categorias = append(categorias, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return categorias, nil
}

// NomesExistentes implementa ncm.Repository.NomesExistentes
func (r *NCMRepository) NomesExistentes(ctx context.Context, empresaID string) (map[string]bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT nome FROM ncm_categorias WHERE empresa_id = $1`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar nomes de categorias: %w", err)
	}
	defer rows.Close()

	nomes := make(map[string]bool)
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("erro ao ler nome de categoria: %w", err)
		}
		nomes[nome] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return nomes, nil
}

// CriarLote implementa ncm.Repository.CriarLote
func (r *NCMRepository) CriarLote(ctx context.Context, categorias []*ncm.Categoria) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range categorias {
			if _, err := tx.Exec(ctx,
				`INSERT INTO ncm_categorias (id, empresa_id, nome, ncm, created_at)
				VALUES ($1, $2, $3, $4, $5)`,
				c.ID, c.EmpresaID, c.Nome, c.NCM, c.CreatedAt); err != nil {
				return fmt.Errorf("erro ao semear categoria %s: %w", c.Nome, err)
			}
		}
		return nil
	})
}
