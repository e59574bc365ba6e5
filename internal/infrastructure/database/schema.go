package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ddl é o esquema completo do sistema. As tabelas são criadas de forma
// idempotente na subida; não há versionamento de migrações.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS empresas (
		id          TEXT PRIMARY KEY,
		nome        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'ativa',
		logo_url    TEXT,
		tema_json   JSONB,
		config_json JSONB,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS produtos (
		id                   TEXT PRIMARY KEY,
		empresa_id           TEXT NOT NULL REFERENCES empresas(id),
		sku                  TEXT NOT NULL,
		descricao            TEXT NOT NULL,
		unidade              TEXT NOT NULL DEFAULT 'UN',
		familia              TEXT,
		ativo                BOOLEAN NOT NULL DEFAULT TRUE,
		ref_familia          BOOLEAN NOT NULL DEFAULT FALSE,
		grupo_preco          INTEGER NOT NULL DEFAULT 1,
		peso_kg              DOUBLE PRECISION,
		ean13                TEXT,
		ean14_caixa          TEXT,
		apresentacao         TEXT,
		cubagem_m3           DOUBLE PRECISION,
		peso_liq_kg          DOUBLE PRECISION,
		peso_bruto_kg        DOUBLE PRECISION,
		categoria_preco_base TEXT,
		ncm_categoria_id     TEXT,
		pallet               TEXT,
		pallet_caixas        INTEGER,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_empresa_sku ON produtos (empresa_id, sku)`,
	`CREATE TABLE IF NOT EXISTS destinos (
		codigo    TEXT PRIMARY KEY,
		tipo      TEXT NOT NULL DEFAULT 'UF',
		descricao TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tabelas_preco (
		id              TEXT PRIMARY KEY,
		empresa_id      TEXT NOT NULL REFERENCES empresas(id),
		nome            TEXT NOT NULL,
		vigencia_inicio TIMESTAMPTZ,
		vigencia_fim    TIMESTAMPTZ,
		status          TEXT NOT NULL DEFAULT 'ativa',
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tabela_itens (
		id         TEXT PRIMARY KEY,
		tabela_id  TEXT NOT NULL REFERENCES tabelas_preco(id),
		produto_id TEXT NOT NULL REFERENCES produtos(id),
		preco      NUMERIC(14,4) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tabela_itens_tabela ON tabela_itens (tabela_id)`,
	`CREATE TABLE IF NOT EXISTS st_regras (
		id              TEXT PRIMARY KEY,
		empresa_id      TEXT NOT NULL REFERENCES empresas(id),
		destino_codigo  TEXT NOT NULL,
		operacao        TEXT NOT NULL DEFAULT 'INTERNA',
		tem_st          BOOLEAN NOT NULL DEFAULT FALSE,
		variantes_json  JSONB,
		parametros_json JSONB,
		ativo           BOOLEAN NOT NULL DEFAULT TRUE,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS custos_logisticos (
		id               TEXT PRIMARY KEY,
		empresa_id       TEXT NOT NULL REFERENCES empresas(id),
		destino_codigo   TEXT NOT NULL,
		operacao         TEXT NOT NULL DEFAULT 'INTERNA',
		tipo_custo       TEXT NOT NULL,
		valor            NUMERIC(14,4) NOT NULL,
		unidade_cobranca TEXT NOT NULL,
		aplica_em_json   JSONB,
		ativo            BOOLEAN NOT NULL DEFAULT TRUE,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ncm_categorias (
		id         TEXT PRIMARY KEY,
		empresa_id TEXT NOT NULL REFERENCES empresas(id),
		nome       TEXT NOT NULL,
		ncm        TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pauta_itens (
		id                   TEXT PRIMARY KEY,
		empresa_id           TEXT NOT NULL REFERENCES empresas(id),
		destino_codigo       TEXT NOT NULL,
		operacao             TEXT NOT NULL DEFAULT 'INTERNA',
		produto_id           TEXT NOT NULL REFERENCES produtos(id),
		pauta_tipo           TEXT NOT NULL,
		pauta_preco          DOUBLE PRECISION,
		pauta_percentual     DOUBLE PRECISION,
		percentual_aplicacao DOUBLE PRECISION,
		mva_pct              DOUBLE PRECISION,
		aliquota_pct         DOUBLE PRECISION,
		ativo                BOOLEAN NOT NULL DEFAULT TRUE,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auditoria (
		id           TEXT PRIMARY KEY,
		empresa_id   TEXT,
		entidade     TEXT NOT NULL,
		entidade_id  TEXT,
		acao         TEXT NOT NULL,
		payload_json JSONB,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema cria as tabelas do sistema caso ainda não existam
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao preparar esquema: %w", err)
		}
	}
	return nil
}
