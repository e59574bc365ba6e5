package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/produto"
	"github.com/precodigital/tabelas-precos-api/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
)

const colunasProduto = `id, empresa_id, sku, descricao, unidade, familia, ativo,
	ref_familia, grupo_preco, peso_kg, ean13, ean14_caixa, apresentacao,
	cubagem_m3, peso_liq_kg, peso_bruto_kg, categoria_preco_base,
	ncm_categoria_id, pallet, pallet_caixas, created_at, updated_at`

// ProdutoRepository implementa a interface produto.Repository
type ProdutoRepository struct {
	db *pgxpool.Pool
}

// NewProdutoRepository cria uma nova instância de ProdutoRepository
func NewProdutoRepository(db *pgxpool.Pool) produto.Repository {
	return &ProdutoRepository{
		db: db,
	}
}

// Criar implementa produto.Repository.Criar
func (r *ProdutoRepository) Criar(ctx context.Context, p *produto.Produto) error {
	if _, err := r.db.Exec(ctx, sqlInserirProduto, argsProduto(p)...); err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// Atualizar implementa produto.Repository.Atualizar
func (r *ProdutoRepository) Atualizar(ctx context.Context, p *produto.Produto) error {
	result, err := r.db.Exec(ctx, sqlAtualizarProduto, argsAtualizarProduto(p)...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProdutoNaoEncontrado
	}

	return nil
}

// BuscarPorID implementa produto.Repository.BuscarPorID
func (r *ProdutoRepository) BuscarPorID(ctx context.Context, id string) (*produto.Produto, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+colunasProduto+` FROM produtos WHERE id = $1`, id)

	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// ListarPorEmpresa implementa produto.Repository.ListarPorEmpresa
func (r *ProdutoRepository) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*produto.Produto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+colunasProduto+` FROM produtos WHERE empresa_id = $1 ORDER BY sku ASC`,
		empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	produtos := make([]*produto.Produto, 0)
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		produtos = append(produtos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return produtos, nil
}

// IndicePorSKU implementa produto.Repository.IndicePorSKU. Se houver SKU
// duplicado no banco, a última linha lida prevalece.
func (r *ProdutoRepository) IndicePorSKU(ctx context.Context, empresaID string) (map[string]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sku, id FROM produtos WHERE empresa_id = $1`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao indexar produtos por SKU: %w", err)
	}
	defer rows.Close()

	index := make(map[string]string)
	for rows.Next() {
		var sku, id string
		if err := rows.Scan(&sku, &id); err != nil {
			return nil, fmt.Errorf("erro ao ler índice de SKU: %w", err)
		}
		index[sku] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return index, nil
}

// ImportarLote implementa produto.Repository.ImportarLote. Todas as
// escritas do lote acontecem em uma única transação.
func (r *ProdutoRepository) ImportarLote(ctx context.Context, inserir, atualizar []*produto.Produto) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, p := range inserir {
			if _, err := tx.Exec(ctx, sqlInserirProduto, argsProduto(p)...); err != nil {
				return fmt.Errorf("erro ao inserir produto %s: %w", p.SKU, err)
			}
		}
		for _, p := range atualizar {
			if _, err := tx.Exec(ctx, sqlAtualizarProduto, argsAtualizarProduto(p)...); err != nil {
				return fmt.Errorf("erro ao atualizar produto %s: %w", p.SKU, err)
			}
		}
		return nil
	})
}

const sqlInserirProduto = `INSERT INTO produtos (
	id, empresa_id, sku, descricao, unidade, familia, ativo, ref_familia,
	grupo_preco, peso_kg, ean13, ean14_caixa, apresentacao, cubagem_m3,
	peso_liq_kg, peso_bruto_kg, categoria_preco_base, ncm_categoria_id,
	pallet, pallet_caixas, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22
)`

const sqlAtualizarProduto = `UPDATE produtos SET
	sku = $1, descricao = $2, unidade = $3, familia = $4, ativo = $5,
	ref_familia = $6, grupo_preco = $7, peso_kg = $8, ean13 = $9,
	ean14_caixa = $10, apresentacao = $11, cubagem_m3 = $12,
	peso_liq_kg = $13, peso_bruto_kg = $14, categoria_preco_base = $15,
	ncm_categoria_id = $16, pallet = $17, pallet_caixas = $18, updated_at = $19
WHERE id = $20`

func argsProduto(p *produto.Produto) []any {
	return []any{
		p.ID, p.EmpresaID, p.SKU, p.Descricao, p.Unidade, nuloSeVazio(p.Familia),
		p.Ativo, p.RefFamilia, p.GrupoPreco, p.PesoKg, nuloSeVazio(p.EAN13),
		nuloSeVazio(p.EAN14Caixa), nuloSeVazio(p.Apresentacao), p.CubagemM3,
		p.PesoLiqKg, p.PesoBrutoKg, nuloSeVazio(p.CategoriaPrecoBase),
		nuloSeVazio(p.NCMCategoriaID), nuloSeVazio(p.Pallet), p.PalletCaixas,
		p.CreatedAt, p.UpdatedAt,
	}
}

func argsAtualizarProduto(p *produto.Produto) []any {
	return []any{
		p.SKU, p.Descricao, p.Unidade, nuloSeVazio(p.Familia), p.Ativo,
		p.RefFamilia, p.GrupoPreco, p.PesoKg, nuloSeVazio(p.EAN13),
		nuloSeVazio(p.EAN14Caixa), nuloSeVazio(p.Apresentacao), p.CubagemM3,
		p.PesoLiqKg, p.PesoBrutoKg, nuloSeVazio(p.CategoriaPrecoBase),
		nuloSeVazio(p.NCMCategoriaID), nuloSeVazio(p.Pallet), p.PalletCaixas,
		p.UpdatedAt, p.ID,
	}
}

func scanProduto(row pgx.Row) (*produto.Produto, error) {
	var p produto.Produto
	var familia, ean13, ean14, apresentacao, categoria, ncmID, pallet *string

	err := row.Scan(&p.ID, &p.EmpresaID, &p.SKU, &p.Descricao, &p.Unidade,
		&familia, &p.Ativo, &p.RefFamilia, &p.GrupoPreco, &p.PesoKg, &ean13,
		&ean14, &apresentacao, &p.CubagemM3, &p.PesoLiqKg, &p.PesoBrutoKg,
		&categoria, &ncmID, &pallet, &p.PalletCaixas, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Familia = deref(familia)
	p.EAN13 = deref(ean13)
	p.EAN14Caixa = deref(ean14)
	p.Apresentacao = deref(apresentacao)
	p.CategoriaPrecoBase = deref(categoria)
	p.NCMCategoriaID = deref(ncmID)
	p.Pallet = deref(pallet)

	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
