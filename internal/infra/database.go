package infra

import (
	"fmt"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (CHECK constraints, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Also used by integration tests
// against a disposable database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Endereco{},
		&model.Categoria{},
		&model.Pagamento{},
		&model.Fornecedor{},
		&model.Cliente{},
		&model.Produto{},
		&model.Estoque{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.PedidoFornecedor{},
		&model.ItemPedido{},
		&model.MovimentacaoEstoque{},
		&model.Mensagem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded by an existence check so re-running on an
// already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// The database is the last line of defense against negative stock;
		// the service layer enforces it first under a row lock.
		{"check estoques.quantidade >= 0", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('estoques')
                   AND conname = 'estoques_quantidade_nao_negativa') THEN
    ALTER TABLE estoques
      ADD CONSTRAINT estoques_quantidade_nao_negativa CHECK (quantidade >= 0);
  END IF;
END $$`},
		// Partial index for the low-stock alert scan.
		{"partial index estoques abaixo do minimo", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_estoques_abaixo_minimo') THEN
    CREATE INDEX idx_estoques_abaixo_minimo
        ON estoques (produto_id)
        WHERE quantidade <= minimo;
  END IF;
END $$`},
		// Ledger queries filter by product and walk backwards in time.
		{"index movimentacoes por produto/data", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimentacoes_produto_data') THEN
    CREATE INDEX idx_movimentacoes_produto_data
        ON movimentacoes_estoque (produto_id, created_at DESC);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
