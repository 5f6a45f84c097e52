package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
)

// PostgresArchive сохраняет записи аудита в Postgres. Каноническим
// остается журнал в памяти; архив нужен только для долговременного
// хранения и включается, если задан DATABASE_URL.
type PostgresArchive struct {
	db *pgxpool.Pool
}

// NewPostgresArchive создает архив поверх пула соединений
func NewPostgresArchive(db *pgxpool.Pool) *PostgresArchive {
	return &PostgresArchive{db: db}
}

// Save записывает одну запись аудита в таблицу audit_log
func (a *PostgresArchive) Save(ctx context.Context, entry models.AuditLogEntry) error {
	var details []byte
	if len(entry.Details) > 0 {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}

	query := `
		INSERT INTO audit_log (id, entity_type, entity_id, entity_name, action, actor, note, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := a.db.Exec(ctx, query,
		entry.ID,
		string(entry.EntityType),
		entry.EntityID,
		entry.EntityName,
		entry.Action,
		entry.User,
		entry.Note,
		details,
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to archive audit entry: %w", err)
	}
	return nil
}
