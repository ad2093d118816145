package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"idlepoker-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	runner  *room.Runner
}

// NewMux returns a new HTTP mux
// The runner must be started by the caller
func NewMux(version string, runner *room.Runner) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		runner:  runner,
	}

	// read surface
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/state").Handler(this.getState())
		r.Methods(http.MethodGet).Path("/shop").Handler(this.getShop())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	}

	// actions always respond with the current state, a rejected action leaves it unchanged
	{
		r := this.Router
		r.Methods(http.MethodPost).Path("/draw").Handler(this.postAction(actionDraw, nil))
		r.Methods(http.MethodPost).Path("/hand/{index:[0-9]+}/discard").Handler(this.postAction(actionDiscard, pathPayload))
		r.Methods(http.MethodPost).Path("/hand/{index:[0-9]+}/place/{slot:[0-9]+}").Handler(this.postAction(actionPlace, pathPayload))
		r.Methods(http.MethodPost).Path("/slots").Handler(this.postAction(actionBuySlot, nil))
		r.Methods(http.MethodPost).Path("/jokers/{id}").Handler(this.postAction(actionBuyJoker, pathPayload))
		r.Methods(http.MethodPost).Path("/owned/{index:[0-9]+}/sell").Handler(this.postAction(actionSellJoker, pathPayload))
		r.Methods(http.MethodPost).Path("/packs/{id}").Handler(this.postAction(actionBuyPack, pathPayload))
		r.Methods(http.MethodPost).Path("/pack/options/{index:[0-9]+}").Handler(this.postAction(actionPickPack, pathPayload))
		r.Methods(http.MethodPost).Path("/pack/skip").Handler(this.postAction(actionSkipPack, nil))
		r.Methods(http.MethodPost).Path("/reset").Handler(this.postReset())
	}

	return this
}
