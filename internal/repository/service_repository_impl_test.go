package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRepository_FindAll_OrdersByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository()

	mock.ExpectQuery(`SELECT (.+) FROM "services" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	services, err := repo.FindAll(db)

	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_FindByID_MissingRowIsNilNotError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository()

	mock.ExpectQuery(`SELECT (.+) FROM "services" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	service, err := repo.FindByID(db, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, service)
	assert.NoError(t, mock.ExpectationsWereMet())
}
