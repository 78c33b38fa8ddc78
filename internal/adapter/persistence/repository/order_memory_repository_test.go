package repository

import (
	"testing"

	"tienda_admin/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, status entities.OrderStatus) entities.Order {
	return entities.Order{ID: id, Status: status}
}

func TestOrderMemoryRepository_PutAndGet(t *testing.T) {
	repo := NewOrderMemoryRepository()

	repo.Put(order("a", entities.OrderStatusNew))
	repo.Put(order("b", entities.OrderStatusProcessing))

	got, ok := repo.GetByID("a")
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusNew, got.Status)

	// upsert keeps position
	repo.Put(order("a", entities.OrderStatusProcessing))
	snap := repo.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, entities.OrderStatusProcessing, snap[0].Status)
}

func TestOrderMemoryRepository_ReplaceAllKeepsUpstreamOrder(t *testing.T) {
	repo := NewOrderMemoryRepository()

	gen := repo.NextGeneration()
	applied := repo.ReplaceAll(gen, []entities.Order{
		order("z", entities.OrderStatusNew),
		order("a", entities.OrderStatusCompleted),
		order("m", entities.OrderStatusProcessing),
	})
	require.True(t, applied)

	snap := repo.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, []string{snap[0].ID, snap[1].ID, snap[2].ID}, []string{"z", "a", "m"})
}

func TestOrderMemoryRepository_StaleReplaceIsDropped(t *testing.T) {
	repo := NewOrderMemoryRepository()

	older := repo.NextGeneration()
	newer := repo.NextGeneration()

	require.True(t, repo.ReplaceAll(newer, []entities.Order{order("fresh", entities.OrderStatusNew)}))

	// the response of the superseded fetch lands last; it must be dropped
	assert.False(t, repo.ReplaceAll(older, []entities.Order{order("stale", entities.OrderStatusNew)}))

	snap := repo.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "fresh", snap[0].ID)
}

func TestOrderMemoryRepository_SnapshotIsACopy(t *testing.T) {
	repo := NewOrderMemoryRepository()
	repo.Put(order("a", entities.OrderStatusNew))

	snap := repo.Snapshot()
	snap[0].Status = entities.OrderStatusCancelled

	got, ok := repo.GetByID("a")
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusNew, got.Status)
}

func TestOrderMemoryRepository_Clear(t *testing.T) {
	repo := NewOrderMemoryRepository()
	gen := repo.NextGeneration()
	repo.ReplaceAll(gen, []entities.Order{order("a", entities.OrderStatusNew)})

	repo.Clear()
	assert.Equal(t, 0, repo.Len())

	// after Clear the guard restarts; a fresh refresh must apply again
	gen = repo.NextGeneration()
	assert.True(t, repo.ReplaceAll(gen, []entities.Order{order("b", entities.OrderStatusNew)}))
}
