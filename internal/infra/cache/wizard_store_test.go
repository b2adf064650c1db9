//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWizardStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("save then load returns an independent copy", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		store := NewMemoryWizardStore(time.Hour, clk)
		st := wizard.New(now)
		serviceID := uuid.New()
		require.NoError(t, st.SelectService(serviceID, nil))
		require.NoError(t, store.Save(ctx, st))

		loaded, err := store.Load(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, st.ID, loaded.ID)
		require.NotNil(t, loaded.ServiceID)
		assert.Equal(t, serviceID, *loaded.ServiceID)

		loaded.Step = wizard.StepConfirm
		again, err := store.Load(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, wizard.StepService, again.Step)
	})

	t.Run("unknown session", func(t *testing.T) {
		store := NewMemoryWizardStore(time.Hour, clock.NewMockClock(now))

		_, err := store.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrWizardSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		store := NewMemoryWizardStore(time.Hour, clk)
		st := wizard.New(now)
		require.NoError(t, store.Save(ctx, st))

		clk.Add(time.Hour)
		_, err := store.Load(ctx, st.ID)
		assert.ErrorIs(t, err, commands.ErrWizardSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store := NewMemoryWizardStore(time.Hour, clock.NewMockClock(now))
		st := wizard.New(now)
		require.NoError(t, store.Save(ctx, st))
		require.NoError(t, store.Delete(ctx, st.ID))

		_, err := store.Load(ctx, st.ID)
		assert.ErrorIs(t, err, commands.ErrWizardSessionNotFound)
	})
}
