package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDb(t *testing.T) *DbContext {
	db, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Migrate_SeedsAnEmptyDatabase(t *testing.T) {

	assert := assert.New(t)
	repo := NewSnapshotRepository(testDb(t).DB)

	trainings, err := LoadCollection[entities.Training](context.Background(), repo, CollectionTrainings)
	assert.NoError(err)
	assert.NotEmpty(trainings)
	assert.Equal("Développement Web Fullstack", trainings[0].Title)

	posts, err := LoadCollection[entities.BlogPost](context.Background(), repo, CollectionNews)
	assert.NoError(err)
	assert.NotEmpty(posts)
}

func Test_ReplaceCollection_SwapsAndKeepsOrder(t *testing.T) {

	assert := assert.New(t)
	repo := NewSnapshotRepository(testDb(t).DB)
	ctx := context.Background()

	first := []entities.JobOffer{
		{ID: "1", Title: "c"},
		{ID: "2", Title: "a"},
	}
	require.NoError(t, ReplaceCollection(ctx, repo, CollectionJobs, first,
		func(o entities.JobOffer) string { return o.ID }))

	second := []entities.JobOffer{
		{ID: "3", Title: "b"},
	}
	require.NoError(t, ReplaceCollection(ctx, repo, CollectionJobs, second,
		func(o entities.JobOffer) string { return o.ID }))

	loaded, err := LoadCollection[entities.JobOffer](ctx, repo, CollectionJobs)
	assert.NoError(err)
	assert.Len(loaded, 1)
	assert.Equal("b", loaded[0].Title)
}

func Test_RemoveStale_PrunesOldRowsOnly(t *testing.T) {

	assert := assert.New(t)
	db := testDb(t)
	repo := NewSnapshotRepository(db.DB)
	ctx := context.Background()

	offers := []entities.JobOffer{{ID: "1", Title: "keep"}}
	require.NoError(t, ReplaceCollection(ctx, repo, CollectionJobs, offers,
		func(o entities.JobOffer) string { return o.ID }))

	removed, err := repo.RemoveStale(ctx, time.Now().Add(-time.Hour))
	assert.NoError(err)
	assert.Zero(removed)

	removed, err = repo.RemoveStale(ctx, time.Now().Add(time.Hour))
	assert.NoError(err)
	assert.NotZero(removed)

	loaded, err := LoadCollection[entities.JobOffer](ctx, repo, CollectionJobs)
	assert.NoError(err)
	assert.Empty(loaded)
}

func Test_NewCleaner_RejectsNonPositiveExpiration(t *testing.T) {
	_, err := NewCleaner(NewSnapshotRepository(testDb(t).DB), 0)
	assert.Error(t, err)
}
