package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campusai-api/internal/models"
)

func resourceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "type", "url", "category", "description", "file_size", "added_at"})
}

func TestListResourcesUnfiltered(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM resources ORDER BY added_at DESC")).
		WillReturnRows(resourceRows().
			AddRow(2, "OS Lecture Notes", "pdf", "https://cdn.campus.edu/os.pdf", "notes", nil, "2.4 MB", now).
			AddRow(1, "DSA Playlist", "video", "https://video.campus.edu/dsa", "lectures", "Full semester playlist", nil, now.Add(-time.Hour)))

	resources, err := repo.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "OS Lecture Notes", resources[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResourcesCategoryAndSearch(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1 AND (title ILIKE $2 OR description ILIKE $3) ORDER BY added_at DESC")).
		WithArgs("notes", "%graph%", "%graph%").
		WillReturnRows(resourceRows())

	resources, err := repo.List(context.Background(), models.ResourceFilter{Category: "notes", Search: "graph"})
	require.NoError(t, err)
	assert.Empty(t, resources)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceCategories(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM resources ORDER BY category")).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("lectures").AddRow("notes"))

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lectures", "notes"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
