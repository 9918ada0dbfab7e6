package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*GormStore[articulo], sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGormStore[articulo](gdb, articuloDesc), mock
}

func TestGormFindByID(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "nota"}).AddRow(1, "silla", 150.0, ""))

	rec, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "silla", rec.Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFindByIDAbsentReturnsNil(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "nota"}))

	rec, err := store.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCountAll(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	n, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 25, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCreate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`INSERT INTO "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	rec, err := store.Create(context.Background(), map[string]any{"nombre": "mesa", "precio": 99.0})
	require.NoError(t, err)
	assert.EqualValues(t, 7, rec.ID)
	assert.Equal(t, "mesa", rec.Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCreateMissingFieldsSkipsDatabase(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.Create(context.Background(), map[string]any{"nota": "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"nombre", "precio"}, ve.Missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCreateUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`INSERT INTO "articulos"`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_articulos_nombre"`))

	_, err := store.Create(context.Background(), map[string]any{"nombre": "mesa", "precio": 99.0})
	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Original, "duplicate key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDelete(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "nota"}).AddRow(3, "banco", 40.0, ""))
	mock.ExpectExec(`DELETE FROM "articulos"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := store.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeleteAbsent(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "articulos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "nota"}))

	_, err := store.Delete(context.Background(), 99)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUpdateFieldUnknownSkipsDatabase(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.UpdateField(context.Background(), 1, "color", "rojo")
	var fe *InvalidFieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "color", fe.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUpdateFieldPrimaryKeyRejected(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.UpdateField(context.Background(), 1, "id", 9)
	var fe *InvalidFieldError
	require.ErrorAs(t, err, &fe)
}

func TestGormFindByFieldUnknown(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.FindByField(context.Background(), "color", "rojo")
	var fe *InvalidFieldError
	require.ErrorAs(t, err, &fe)
}

func TestGormFindByField(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "articulos" WHERE nombre = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "nota"}).AddRow(1, "espejo", 30.0, ""))

	recs, err := store.FindByField(context.Background(), "nombre", "espejo")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "espejo", recs[0].Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}
