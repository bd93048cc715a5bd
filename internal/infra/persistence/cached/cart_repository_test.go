package cached

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriber hands the registered handler back to the test so it can
// inject change events synchronously.
type fakeSubscriber struct {
	handler service.CartEventHandler
}

func (f *fakeSubscriber) Subscribe(_ context.Context, handler service.CartEventHandler) error {
	f.handler = handler

	return nil
}

func (f *fakeSubscriber) Close() error { return nil }

func newCachedRepo(t *testing.T) (repository.CartRepository, repository.CartRepository, *fakeSubscriber) {
	t.Helper()

	inner := memory.NewCartRepository()
	sub := &fakeSubscriber{}
	repo, err := NewCartRepository(context.Background(), inner, sub, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, sub.handler)

	return repo, inner, sub
}

func TestCachedCartRepository_LoadReadsThrough(t *testing.T) {
	repo, inner, _ := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Name: "Agua de rosas", Price: 250}, 1)
	require.NoError(t, inner.Save(ctx, cart))

	loaded, err := repo.Load(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Agua de rosas", loaded.Items[0].Name)
}

func TestCachedCartRepository_LoadUnknownCart(t *testing.T) {
	repo, _, _ := newCachedRepo(t)

	_, err := repo.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCachedCartRepository_SaveWritesThrough(t *testing.T) {
	repo, inner, _ := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Price: 250}, 2)
	require.NoError(t, repo.Save(ctx, cart))

	stored, err := inner.Load(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Qty)
}

func TestCachedCartRepository_ChangeEventReplacesWholesale(t *testing.T) {
	repo, _, sub := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Price: 250}, 1)
	cart.Add(&entity.Product{ID: "42", Price: 180}, 1)
	require.NoError(t, repo.Save(ctx, cart))

	// Another instance wrote a different snapshot; ours is replaced even
	// though it is newer in wall-clock terms.
	sub.handler(&service.CartChange{
		CartID:    cartID.String(),
		Items:     []entity.CartItem{{ID: "99", Name: "Vainilla", Price: 120, Qty: 3}},
		WrittenAt: time.Now().Add(-time.Minute),
	})

	loaded, err := repo.Load(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "99", loaded.Items[0].ID)
	assert.Equal(t, 3, loaded.Items[0].Qty)
}

func TestCachedCartRepository_ChangeEventWithEmptyItemsEmptiesCart(t *testing.T) {
	repo, _, sub := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Price: 250}, 1)
	require.NoError(t, repo.Save(ctx, cart))

	sub.handler(&service.CartChange{CartID: cartID.String(), WrittenAt: time.Now()})

	loaded, err := repo.Load(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestCachedCartRepository_InvalidChangeIgnored(t *testing.T) {
	repo, _, sub := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Price: 250}, 1)
	require.NoError(t, repo.Save(ctx, cart))

	sub.handler(nil)
	sub.handler(&service.CartChange{CartID: "not-a-uuid"})

	loaded, err := repo.Load(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
}

func TestCachedCartRepository_DeleteDropsBothCopies(t *testing.T) {
	repo, inner, _ := newCachedRepo(t)
	ctx := context.Background()
	cartID := uuid.New()

	cart := entity.NewCart(cartID)
	cart.Add(&entity.Product{ID: "41", Price: 250}, 1)
	require.NoError(t, repo.Save(ctx, cart))

	require.NoError(t, repo.Delete(ctx, cartID))

	_, err := repo.Load(ctx, cartID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
	_, err = inner.Load(ctx, cartID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}
