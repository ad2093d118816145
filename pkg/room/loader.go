package room

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/game"
	"idlepoker-server/pkg/store"
)

// LoadEngine resumes the saved run, or starts a new one if there is no save
// A store that cannot be read is an error, so a working save is never overwritten
func LoadEngine(ctx context.Context, s store.Store, r rng.Generator) (*game.Engine, error) {
	data, err := s.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		logrus.Info("no save found, starting a new run")
		return game.New(r), nil
	}

	if err != nil {
		return nil, err
	}

	state := game.LoadSave(data, r)
	logrus.WithFields(logrus.Fields{
		"ante":  state.Ante,
		"chips": state.Chips,
		"money": state.Money,
	}).Info("resumed run")

	return game.NewWithState(state, r), nil
}
