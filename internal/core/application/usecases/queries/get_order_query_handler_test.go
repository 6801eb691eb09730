package queries_test

import (
	"testing"
	"time"

	"foodhub/internal/core/application/usecases/queries"
	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/pkg/errs"
	"foodhub/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_BlankID(t *testing.T) {
	_, err := queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQueryHandler_Handle_ReconcilesOnRead(t *testing.T) {
	repo := newRepo()
	placed := seedOrder(t, repo, placedAt)

	// 11s elapsed: the read itself should surface preparing, not the
	// stored pending snapshot.
	h := queries.NewGetOrderQueryHandler(repo, keylock.NewKeyedMutex(), fixedClock(placedAt.Add(11*time.Second)))

	query, err := queries.NewGetOrderQuery(placed.ID())
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, got.Status())
	assert.Len(t, got.StatusUpdates(), 3)

	// The advanced state was persisted, not just returned.
	stored, err := repo.Get(t.Context(), placed.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, stored.Status())
}

func TestGetOrderQueryHandler_Handle_UnknownOrder(t *testing.T) {
	h := queries.NewGetOrderQueryHandler(newRepo(), keylock.NewKeyedMutex(), fixedClock(placedAt))

	query, err := queries.NewGetOrderQuery("ORD-0-missing")
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
