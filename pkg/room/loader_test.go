package room

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"idlepoker-server/internal/rng"
)

type brokenStore struct{}

func (brokenStore) Load(context.Context) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) Save(context.Context, []byte) error {
	return errors.New("connection refused")
}

func (brokenStore) Delete(context.Context) error {
	return errors.New("connection refused")
}

func TestLoadEngine(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	mem := newMemoryWith(t, "")
	e, err := LoadEngine(ctx, mem, rng.NewSequence(0))
	require.NoError(t, err)
	a.Equal(1, e.State().Ante)
	a.Equal(52, e.State().Deck.CardsLeft())

	mem = newMemoryWith(t, `{"chips":42,"ante":3,"maxHandSize":9}`)
	e, err = LoadEngine(ctx, mem, rng.NewSequence(0))
	require.NoError(t, err)
	a.Equal(42, e.State().Chips)
	a.Equal(3, e.State().Ante)
	a.Equal(9, e.State().MaxHandSize)

	_, err = LoadEngine(ctx, brokenStore{}, rng.NewSequence(0))
	a.EqualError(err, "connection refused")
}

func TestRunner_Reset_brokenStore(t *testing.T) {
	r := NewRunner(pairEngine(), brokenStore{}, Options{TickInterval: never, AutosaveInterval: never})
	r.Start()
	defer r.Stop()

	_, err := r.Reset(context.Background())
	assert.Error(t, err)

	v, err := r.View()
	assert.NoError(t, err)
	assert.Equal(t, 2, v.MaxSlots)
}
