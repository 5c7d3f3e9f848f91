package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

type SearchPrefsRepository struct {
	db *sql.DB
}

func NewSearchPrefsRepository(db *sql.DB) *SearchPrefsRepository {
	return &SearchPrefsRepository{db: db}
}

func (r *SearchPrefsRepository) Get(ctx context.Context, sessionID string) (*domain.SearchPrefs, error) {
	query := `
	SELECT desde, hasta, huespedes
	FROM search_preferences
	WHERE session_id = $1
	`

	var from, to sql.NullTime
	var guests sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&from, &to, &guests)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}

		return nil, err
	}

	var prefs domain.SearchPrefs
	if from.Valid {
		prefs.From = calendarDay(from.Time)
	}

	if to.Valid {
		prefs.To = calendarDay(to.Time)
	}

	if guests.Valid {
		prefs.Guests = int(guests.Int64)
	}

	return &prefs, nil
}

func (r *SearchPrefsRepository) Save(ctx context.Context, sessionID string, prefs domain.SearchPrefs) error {
	query := `
	INSERT INTO search_preferences (session_id, desde, hasta, huespedes, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (session_id) DO UPDATE
	SET desde = EXCLUDED.desde,
		hasta = EXCLUDED.hasta,
		huespedes = EXCLUDED.huespedes,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, sessionID, nullDate(prefs.From), nullDate(prefs.To), prefs.Guests, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save search preferences: %w", err)
	}

	return nil
}

func (r *SearchPrefsRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM search_preferences WHERE session_id = $1`, sessionID)

	return err
}

// PurgeStale removes preferences not touched since before.
func (r *SearchPrefsRepository) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM search_preferences WHERE updated_at < $1`, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func nullDate(d domain.Date) sql.NullTime {
	if d.IsZero() {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: d.Time, Valid: true}
}

func calendarDay(t time.Time) domain.Date {
	return domain.NewDate(t.Year(), t.Month(), t.Day())
}
