package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	DocsSchema   = "docs.sql"
	ReportSchema = "report.sql"
)

// sqlFiles embeds all SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchemas executes the embedded SQL scripts (DocsSchema, ReportSchema)
// using the provided connection pool. The scripts are idempotent.
func CreateSchemas(pool *sqlitex.Pool, schemaNames ...string) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	for _, schemaName := range schemaNames {
		scriptPath := path.Join("sql", schemaName)

		script, err := sqlFiles.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read embedded sql file %s: %w", scriptPath, err)
		}

		if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
			return fmt.Errorf("failed to execute script %s: %w", schemaName, err)
		}
	}

	return nil
}
