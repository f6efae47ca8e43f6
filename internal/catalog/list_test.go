package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/store"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshots(t *testing.T) *store.Snapshots {
	db, err := store.NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return store.NewSnapshotRepository(db.DB)
}

func offersPage(total, pageSize int, offers ...entities.JobOffer) *lafaom.Page[entities.JobOffer] {
	return &lafaom.Page[entities.JobOffer]{
		Items:      offers,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
}

func offer(id, title string) entities.JobOffer {
	return entities.JobOffer{ID: id, Title: title, Location: "Douala", ContractType: "CDI"}
}

func renderTitle(w io.Writer, o entities.JobOffer) {
	fmt.Fprintln(w, o.Title)
}

func Test_List_LoadComputesCeilPagination(t *testing.T) {

	assert := assert.New(t)

	list := NewList("jobs", func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
		return offersPage(45, 20, offer("1", "a"), offer("2", "b")), nil
	})

	assert.NoError(list.Load(context.Background(), 1))
	assert.Equal(3, list.TotalPages())
	assert.Len(list.Items(), 2)
}

func Test_List_PagePastTheEndRendersPlaceholder(t *testing.T) {

	assert := assert.New(t)

	list := NewList("jobs", func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
		return offersPage(45, 20), nil
	})

	assert.NoError(list.Load(context.Background(), 9))

	var buf bytes.Buffer
	list.Render(&buf, renderTitle)
	assert.Equal("no results found\n", buf.String())
}

func Test_List_FilterNarrowsWithoutRefetch(t *testing.T) {

	assert := assert.New(t)
	fetches := 0

	list := NewList("jobs", func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
		fetches++
		return offersPage(3, 20,
			offer("1", "Éducateur spécialisé"),
			offer("2", "Comptable"),
			offer("3", "Éducateur de jeunes enfants")), nil
	})

	assert.NoError(list.Load(context.Background(), 1))

	list.Filter(func(o entities.JobOffer) bool {
		return MatchesSearch("éducateur", o.Title)
	})
	assert.Len(list.Items(), 2)
	assert.Equal(1, fetches)

	list.ResetFilter()
	assert.Len(list.Items(), 3)
	assert.Equal(1, fetches)
}

func Test_List_FallbackNoneSurfacesTheError(t *testing.T) {

	fetchErr := errors.New("connection refused")
	list := NewList("applications", func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
		return nil, fetchErr
	})

	err := list.Load(context.Background(), 1)
	assert.ErrorIs(t, err, fetchErr)
}

func Test_List_FallbackSnapshotServesLastGoodPage(t *testing.T) {

	assert := assert.New(t)
	snapshots := testSnapshots(t)
	itemID := func(o entities.JobOffer) string { return o.ID }

	healthy := NewListWithSnapshots("jobs",
		func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
			return offersPage(2, 20, offer("1", "Éducateur"), offer("2", "Comptable")), nil
		}, snapshots, itemID)
	assert.NoError(healthy.Load(context.Background(), 1))
	assert.False(healthy.FromSnapshot())

	broken := NewListWithSnapshots("jobs",
		func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
			return nil, errors.New("connection refused")
		}, snapshots, itemID)

	assert.NoError(broken.Load(context.Background(), 1))
	assert.True(broken.FromSnapshot())
	assert.Len(broken.Items(), 2)
	assert.Equal("Éducateur", broken.Items()[0].Title)

	var buf bytes.Buffer
	broken.Render(&buf, renderTitle)
	assert.Contains(buf.String(), "previously fetched entries")
}

func Test_List_RenderKeepsServerOrder(t *testing.T) {

	assert := assert.New(t)

	list := NewList("jobs", func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
		return offersPage(3, 20, offer("1", "c"), offer("2", "a"), offer("3", "b")), nil
	})
	assert.NoError(list.Load(context.Background(), 1))

	var buf bytes.Buffer
	list.Render(&buf, renderTitle)
	assert.Equal("c\na\nb\n", buf.String())
}
