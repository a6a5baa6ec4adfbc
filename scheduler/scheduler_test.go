package scheduler

import (
	"testing"
	"time"

	"github.com/color-picker/api/colors"
	"github.com/color-picker/api/datastore"
	"github.com/color-picker/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpired(t *testing.T) {
	store, err := datastore.NewSessionMemory()
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err = store.Create(models.Session{SessionID: "stale", Expiry: now.Add(-time.Minute)}, colors.DefaultHSV)
	require.NoError(t, err)
	_, err = store.Create(models.Session{SessionID: "live", Expiry: now.Add(time.Minute)}, colors.DefaultHSV)
	require.NoError(t, err)

	s := NewScheduler(store, time.Hour)
	s.now = func() time.Time { return now }

	assert.Equal(t, 1, s.SweepExpired())
	assert.Equal(t, 0, s.SweepExpired())
	assert.Equal(t, 1, store.Count())
}

func TestStartStop(t *testing.T) {
	store, err := datastore.NewSessionMemory()
	require.NoError(t, err)
	_, err = store.Create(models.Session{SessionID: "stale", Expiry: time.Now().Add(-time.Minute)}, colors.DefaultHSV)
	require.NoError(t, err)

	s := NewScheduler(store, 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return store.Count() == 0 }, time.Second, 5*time.Millisecond)

	s.Stop()
}

func TestDefaultInterval(t *testing.T) {
	store, err := datastore.NewSessionMemory()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, NewScheduler(store, 0).interval)
}
