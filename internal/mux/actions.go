package mux

import (
	"errors"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"idlepoker-server/pkg/game"
	"idlepoker-server/pkg/room"
)

// action names, shared by the HTTP routes and the websocket
const (
	actionDraw      = "draw"
	actionDiscard   = "discard"
	actionPlace     = "place"
	actionBuySlot   = "buySlot"
	actionBuyJoker  = "buyJoker"
	actionSellJoker = "sellJoker"
	actionBuyPack   = "buyPack"
	actionPickPack  = "pickPack"
	actionSkipPack  = "skipPack"
	actionReset     = "reset"
)

// payloadIn is the format we expect from the client
type payloadIn struct {
	Action string `json:"action"`
	Index  int    `json:"index"`
	Slot   int    `json:"slot"`
	ID     string `json:"id"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

var actions = map[string]func(e *game.Engine, p *payloadIn) error{
	actionDraw: func(e *game.Engine, _ *payloadIn) error {
		return e.Draw()
	},
	actionDiscard: func(e *game.Engine, p *payloadIn) error {
		return e.Discard(p.Index)
	},
	actionPlace: func(e *game.Engine, p *payloadIn) error {
		return e.PlaceCard(p.Index, p.Slot)
	},
	actionBuySlot: func(e *game.Engine, _ *payloadIn) error {
		return e.BuySlot()
	},
	actionBuyJoker: func(e *game.Engine, p *payloadIn) error {
		return e.BuyJoker(p.ID)
	},
	actionSellJoker: func(e *game.Engine, p *payloadIn) error {
		return e.SellJoker(p.Index)
	},
	actionBuyPack: func(e *game.Engine, p *payloadIn) error {
		return e.BuyPack(p.ID)
	},
	actionPickPack: func(e *game.Engine, p *payloadIn) error {
		return e.ResolvePackChoice(p.Index)
	},
	actionSkipPack: func(e *game.Engine, _ *payloadIn) error {
		return e.SkipPack()
	},
}

// errUnknownAction is returned for an action name that does not exist
var errUnknownAction = errors.New("unknown action")

// exec runs the named action in the run loop
// A rejected action is not an error for the caller, it is logged and the state is returned unchanged
func (m *Mux) exec(p *payloadIn) (*game.View, error) {
	action, ok := actions[p.Action]
	if !ok {
		return nil, errUnknownAction
	}

	view, err := m.runner.Exec(func(e *game.Engine) error {
		return action(e, p)
	})

	if errors.Is(err, room.ErrStopped) {
		return nil, err
	}

	if err != nil {
		logrus.WithError(err).WithField("action", p.Action).Debug("action rejected")
	}

	return view, nil
}

// pathPayload reads the action arguments from the route variables
func pathPayload(r *http.Request) *payloadIn {
	vars := gmux.Vars(r)
	p := &payloadIn{
		Index: pathInt(vars, "index"),
		Slot:  pathInt(vars, "slot"),
		ID:    vars["id"],
	}

	return p
}

// pathInt returns -1 for a missing or unparsable value, which every action rejects
func pathInt(vars map[string]string, key string) int {
	s, ok := vars[key]
	if !ok {
		return -1
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}

	return i
}

func (m *Mux) postAction(action string, payload func(r *http.Request) *payloadIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := &payloadIn{}
		if payload != nil {
			p = payload(r)
		}

		p.Action = action
		view, err := m.exec(p)
		if err != nil {
			writeRunnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) postReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := m.runner.Reset(r.Context())
		if err != nil {
			writeRunnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := m.runner.View()
		if err != nil {
			writeRunnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) getShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := m.runner.View()
		if err != nil {
			writeRunnerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view.Shop)
	}
}
