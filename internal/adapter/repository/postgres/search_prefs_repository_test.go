package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/postgres"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sid = "6a3e1f0c-2b7d-4f5e-8c9a-0d1e2f3a4b5c"

func newRepo(t *testing.T) (*postgres.SearchPrefsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewSearchPrefsRepository(db), mock
}

func TestSearchPrefs_Get(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"desde", "hasta", "huespedes"}).
		AddRow(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC), 3)
	mock.ExpectQuery(regexp.QuoteMeta("FROM search_preferences")).WithArgs(sid).WillReturnRows(rows)

	prefs, err := repo.Get(context.Background(), sid)

	require.NoError(t, err)
	assert.Equal(t, "2025-12-10", prefs.From.String())
	assert.Equal(t, "2025-12-12", prefs.To.String())
	assert.Equal(t, 3, prefs.Guests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPrefs_GetMissing(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM search_preferences")).WithArgs(sid).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), sid)

	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSearchPrefs_SaveUpserts(t *testing.T) {
	repo, mock := newRepo(t)

	from := domain.NewDate(2025, time.December, 10)
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (session_id) DO UPDATE")).
		WithArgs(sid, sqlmock.AnyArg(), sqlmock.AnyArg(), 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), sid, domain.SearchPrefs{From: from, Guests: 2})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPrefs_PurgeStale(t *testing.T) {
	repo, mock := newRepo(t)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM search_preferences WHERE updated_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.PurgeStale(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
