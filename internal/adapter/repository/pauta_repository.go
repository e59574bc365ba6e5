package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/pauta"
)

// Erros específicos do repositório
var (
	ErrPautaNaoEncontrada = errors.New("item de pauta não encontrado")
)

// PautaRepository implementa a interface pauta.Repository
type PautaRepository struct {
	db *pgxpool.Pool
}

// NewPautaRepository cria uma nova instância de PautaRepository
func NewPautaRepository(db *pgxpool.Pool) pauta.Repository {
	return &PautaRepository{
		db: db,
	}
}

// Criar implementa pauta.Repository.Criar
func (r *PautaRepository) Criar(ctx context.Context, i *pauta.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pauta_itens (
			id, empresa_id, destino_codigo, operacao, produto_id, pauta_tipo,
			pauta_preco, pauta_percentual, percentual_aplicacao, mva_pct,
			aliquota_pct, ativo, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		i.ID, i.EmpresaID, i.DestinoCodigo, i.Operacao, i.ProdutoID, i.Tipo,
		i.PautaPreco, i.PautaPercentual, i.PercentualAplicacao, i.MVAPct,
		i.AliquotaPct, i.Ativo, i.CreatedAt, i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar item de pauta: %w", err)
	}

	return nil
}

// Atualizar implementa pauta.Repository.Atualizar
func (r *PautaRepository) Atualizar(ctx context.Context, i *pauta.Item) error {
	result, err := r.db.Exec(ctx,
		`UPDATE pauta_itens SET
			destino_codigo = $1, operacao = $2, produto_id = $3, pauta_tipo = $4,
			pauta_preco = $5, pauta_percentual = $6, percentual_aplicacao = $7,
			mva_pct = $8, aliquota_pct = $9, ativo = $10, updated_at = $11
		WHERE id = $12 AND empresa_id = $13`,
		i.DestinoCodigo, i.Operacao, i.ProdutoID, i.Tipo, i.PautaPreco,
		i.PautaPercentual, i.PercentualAplicacao, i.MVAPct, i.AliquotaPct,
		i.Ativo, i.UpdatedAt, i.ID, i.EmpresaID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar item de pauta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPautaNaoEncontrada
	}

	return nil
}

// BuscarPorID implementa pauta.Repository.BuscarPorID
func (r *PautaRepository) BuscarPorID(ctx context.Context, id string) (*pauta.Item, error) {
	var i pauta.Item

	err := r.db.QueryRow(ctx,
		`SELECT id, empresa_id, destino_codigo, operacao, produto_id, pauta_tipo,
			pauta_preco, pauta_percentual, percentual_aplicacao, mva_pct,
			aliquota_pct, ativo, created_at, updated_at
		FROM pauta_itens WHERE id = $1`,
		id).Scan(&i.ID, &i.EmpresaID, &i.DestinoCodigo, &i.Operacao, &i.ProdutoID,
		&i.Tipo, &i.PautaPreco, &i.PautaPercentual, &i.PercentualAplicacao,
		&i.MVAPct, &i.AliquotaPct, &i.Ativo, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPautaNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar item de pauta: %w", err)
	}

	return &i, nil
}

// Listar implementa pauta.Repository.Listar. O SKU do produto vem junto
// para exibição na grade de pauta.
func (r *PautaRepository) Listar(ctx context.Context, f pauta.Filtro) ([]*pauta.ItemComProduto, error) {
	query := `SELECT p.id, p.empresa_id, p.destino_codigo, p.operacao, p.produto_id,
		p.pauta_tipo, p.pauta_preco, p.pauta_percentual, p.percentual_aplicacao,
		p.mva_pct, p.aliquota_pct, p.ativo, p.created_at, p.updated_at,
		COALESCE(pr.sku, '') AS sku
	FROM pauta_itens p
	LEFT JOIN produtos pr ON pr.id = p.produto_id
	WHERE p.empresa_id = $1`
	args := []any{f.EmpresaID}

	if f.Destino != "" {
		args = append(args, f.Destino)
		query += fmt.Sprintf(" AND p.destino_codigo = $%d", len(args))
	}
	if f.Operacao != "" {
		args = append(args, f.Operacao)
		query += fmt.Sprintf(" AND p.operacao = $%d", len(args))
	}
	query += " ORDER BY sku, p.destino_codigo"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens de pauta: %w", err)
	}
	defer rows.Close()

	itens := make([]*pauta.ItemComProduto, 0)
	for rows.Next() {
		var i pauta.ItemComProduto
		if err := rows.Scan(&i.ID, &i.EmpresaID, &i.DestinoCodigo, &i.Operacao,
			&i.ProdutoID, &i.Tipo, &i.PautaPreco, &i.PautaPercentual,
			&i.PercentualAplicacao, &i.MVAPct, &i.AliquotaPct, &i.Ativo,
			&i.CreatedAt, &i.UpdatedAt, &i.SKU); err != nil {
			return nil, fmt.Errorf("erro ao ler item de pauta: %w", err)
		}
		itens = append(itens, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return itens, nil
}
