package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return newDB(conn, dialect, classifier, logger.Nop()), mock
}

func newTestThemeRepo(t *testing.T, dialect Dialect) (ThemeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, dialect)
	return NewThemeRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: code, ExtendedCode: extended}
}

// ── ListThemes ────────────────────────────────────────────────────────────────

func TestListThemes_Success(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT id, name FROM themes ORDER BY name, id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(2, "Autumn").
			AddRow(1, "Summer"))

	themes, err := repo.ListThemes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Theme{{ID: 2, Name: "Autumn"}, {ID: 1, Name: "Summer"}}, themes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListThemes_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT id, name FROM themes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	themes, err := repo.ListThemes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, themes)
	assert.Empty(t, themes)
}

func TestListThemes_QueryError(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT id, name FROM themes`).WillReturnError(sql.ErrConnDone)

	_, err := repo.ListThemes(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── CreateTheme ───────────────────────────────────────────────────────────────

func TestCreateTheme_Success(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`INSERT INTO themes \(name\) VALUES \(\?\) RETURNING id, name`).
		WithArgs("Summer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Summer"))

	theme, err := repo.CreateTheme(context.Background(), "Summer")
	require.NoError(t, err)
	assert.Equal(t, models.Theme{ID: 7, Name: "Summer"}, theme)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTheme_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO themes \(name\) VALUES \(\$1\)`).
		WithArgs("Summer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Summer"))

	_, err := repo.CreateTheme(context.Background(), "Summer")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTheme_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{
			name:    "sqlite",
			dialect: DialectSQLite,
			err:     sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique),
		},
		{
			name:    "postgres",
			dialect: DialectPostgres,
			err:     pgError(pgerrcode.UniqueViolation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestThemeRepo(t, tt.dialect)

			mock.ExpectQuery(`INSERT INTO themes`).
				WithArgs("Summer").
				WillReturnError(tt.err)

			_, err := repo.CreateTheme(context.Background(), "Summer")
			assert.ErrorIs(t, err, ErrThemeAlreadyExists)
		})
	}
}

func TestCreateTheme_RetriesTransientError(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO themes`).
		WithArgs("Summer").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(`INSERT INTO themes`).
		WithArgs("Summer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Summer"))

	theme, err := repo.CreateTheme(context.Background(), "Summer")
	require.NoError(t, err)
	assert.Equal(t, int64(3), theme.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTheme_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	for range maxAttempts {
		mock.ExpectQuery(`INSERT INTO themes`).
			WillReturnError(sqliteError(sqlite3.ErrBusy, 0))
	}

	_, err := repo.CreateTheme(context.Background(), "Summer")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── GetTheme ──────────────────────────────────────────────────────────────────

func TestGetTheme_Success(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT id, name FROM themes WHERE id = \?`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Dawn"))

	theme, err := repo.GetTheme(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, models.Theme{ID: 4, Name: "Dawn"}, theme)
}

func TestGetTheme_NotFound(t *testing.T) {
	repo, mock := newTestThemeRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT id, name FROM themes`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetTheme(context.Background(), 4)
	assert.ErrorIs(t, err, ErrThemeNotFound)
}
