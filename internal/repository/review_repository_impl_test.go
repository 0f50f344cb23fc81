package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_FindRecentByWorkerID_NewestFirstWithLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository()

	mock.ExpectQuery(`SELECT (.+) FROM "reviews" WHERE worker_id = \$1 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating"}))

	reviews, err := repo.FindRecentByWorkerID(db, uuid.New(), 5)

	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}
