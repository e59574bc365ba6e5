package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/domain/destino"
)

// DestinoRepository implementa a interface destino.Repository
type DestinoRepository struct {
	db *pgxpool.Pool
}

// NewDestinoRepository cria uma nova instância de DestinoRepository
func NewDestinoRepository(db *pgxpool.Pool) destino.Repository {
	return &DestinoRepository{
		db: db,
	}
}

// Upsert implementa destino.Repository.Upsert. Repetir um código já
// cadastrado sobrescreve tipo e descrição em vez de falhar.
func (r *DestinoRepository) Upsert(ctx context.Context, d *destino.Destino) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO destinos (codigo, tipo, descricao)
		VALUES ($1, $2, $3)
		ON CONFLICT (codigo) DO UPDATE SET tipo = EXCLUDED.tipo, descricao = EXCLUDED.descricao`,
		d.Codigo, d.Tipo, d.Descricao)

	if err != nil {
		return fmt.Errorf("erro ao gravar destino: %w", err)
	}

	return nil
}

// Listar implementa destino.Repository.Listar
func (r *DestinoRepository) Listar(ctx context.Context) ([]*destino.Destino, error) {
	rows, err := r.db.Query(ctx,
		`SELECT codigo, tipo, descricao FROM destinos ORDER BY codigo ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar destinos: %w", err)
	}
	defer rows.Close()

	destinos := make([]*destino.Destino, 0)
	for rows.Next() {
		var d destino.Destino
		if err := rows.Scan(&d.Codigo, &d.Tipo, &d.Descricao); err != nil {
			return nil, fmt.Errorf("erro ao ler destino: %w", err)
		}
		destinos = append(destinos, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return destinos, nil
}
