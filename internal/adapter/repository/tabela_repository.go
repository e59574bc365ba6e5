package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/tabela"
	"github.com/precodigital/tabelas-precos-api/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrTabelaNaoEncontrada = errors.New("tabela não encontrada")
)

// TabelaRepository implementa a interface tabela.Repository
type TabelaRepository struct {
	db *pgxpool.Pool
}

// NewTabelaRepository cria uma nova instância de TabelaRepository
func NewTabelaRepository(db *pgxpool.Pool) tabela.Repository {
	return &TabelaRepository{
		db: db,
	}
}

// Criar implementa tabela.Repository.Criar
func (r *TabelaRepository) Criar(ctx context.Context, t *tabela.Tabela) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tabelas_preco (
			id, empresa_id, nome, vigencia_inicio, vigencia_fim, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.EmpresaID, t.Nome, t.VigenciaInicio, t.VigenciaFim, t.Status,
		t.CreatedAt, t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar tabela de preços: %w", err)
	}

	return nil
}

// BuscarPorID implementa tabela.Repository.BuscarPorID
func (r *TabelaRepository) BuscarPorID(ctx context.Context, id string) (*tabela.Tabela, error) {
	var t tabela.Tabela

	err := r.db.QueryRow(ctx,
		`SELECT id, empresa_id, nome, vigencia_inicio, vigencia_fim, status,
			created_at, updated_at
		FROM tabelas_preco WHERE id = $1`,
		id).Scan(&t.ID, &t.EmpresaID, &t.Nome, &t.VigenciaInicio, &t.VigenciaFim,
		&t.Status, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTabelaNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar tabela de preços: %w", err)
	}

	return &t, nil
}

// ListarPorEmpresa implementa tabela.Repository.ListarPorEmpresa
func (r *TabelaRepository) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*tabela.Tabela, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, empresa_id, nome, vigencia_inicio, vigencia_fim, status,
			created_at, updated_at
		FROM tabelas_preco
		WHERE empresa_id = $1
		ORDER BY nome ASC`,
		empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tabelas de preços: %w", err)
	}
	defer rows.Close()

	tabelas := make([]*tabela.Tabela, 0)
	for rows.Next() {
		var t tabela.Tabela
		if err := rows.Scan(&t.ID, &t.EmpresaID, &t.Nome, &t.VigenciaInicio,
			&t.VigenciaFim, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler tabela de preços: %w", err)
		}
		tabelas = append(tabelas, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tabelas, nil
}

// ListarItens implementa tabela.Repository.ListarItens
func (r *TabelaRepository) ListarItens(ctx context.Context, tabelaID string) ([]*tabela.ItemComProduto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.tabela_id, i.produto_id, i.preco,
			COALESCE(p.sku, '') AS sku, COALESCE(p.descricao, '') AS descricao
		FROM tabela_itens i
		LEFT JOIN produtos p ON p.id = i.produto_id
		WHERE i.tabela_id = $1
		ORDER BY sku ASC`,
		tabelaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens da tabela: %w", err)
	}
	defer rows.Close()

	itens := make([]*tabela.ItemComProduto, 0)
	for rows.Next() {
		var i tabela.ItemComProduto
		if err := rows.Scan(&i.ID, &i.TabelaID, &i.ProdutoID, &i.Preco, &i.SKU,
			&i.Descricao); err != nil {
			return nil, fmt.Errorf("erro ao ler item da tabela: %w", err)
		}
		itens = append(itens, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return itens, nil
}

// SubstituirItens implementa tabela.Repository.SubstituirItens. O conjunto
// de itens da tabela é apagado e regravado dentro de uma transação; em caso
// de falha nada é alterado.
func (r *TabelaRepository) SubstituirItens(ctx context.Context, tabelaID string, itens []*tabela.Item) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM tabela_itens WHERE tabela_id = $1`, tabelaID); err != nil {
			return fmt.Errorf("erro ao limpar itens da tabela: %w", err)
		}

		for _, item := range itens {
			if _, err := tx.Exec(ctx,
				`INSERT INTO tabela_itens (id, tabela_id, produto_id, preco)
				VALUES ($1, $2, $3, $4)`,
				item.ID, item.TabelaID, item.ProdutoID, item.Preco); err != nil {
				return fmt.Errorf("erro ao gravar item da tabela: %w", err)
			}
		}

		result, err := tx.Exec(ctx,
			`UPDATE tabelas_preco SET updated_at = $1 WHERE id = $2`,
			time.Now(), tabelaID)
		if err != nil {
			return fmt.Errorf("erro ao atualizar tabela: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrTabelaNaoEncontrada
		}

		return nil
	})
}
