package casino

import (
	"encoding/json"

	"coin-casino/internal/event"
	"coin-casino/internal/monitoring"
)

type Audit interface {
	Log(uid int, action string, metadata string)
}

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// RegisterConsumers wires the observational side effects of a settled
// wager. None of them move coins; credits happen synchronously inside
// the settlement itself.
func RegisterConsumers(bus *event.Bus, audit Audit, hub Broadcaster) {

	bus.Subscribe(event.EventWagerSettled, func(payload interface{}) {
		res, ok := payload.(*Result)
		if !ok {
			return
		}

		meta, _ := json.Marshal(res)
		audit.Log(res.UID, "wager_settled", string(meta))

		hub.BroadcastJSON(res)

		game := string(res.Game)
		monitoring.BetsPlaced.WithLabelValues(game).Inc()
		monitoring.CoinsWagered.WithLabelValues(game).Add(res.Bet.InexactFloat64())
		monitoring.CoinsPaidOut.WithLabelValues(game).Add(res.Payout.InexactFloat64())
	})

	bus.Subscribe(event.EventMinesStarted, func(payload interface{}) {
		view, ok := payload.(*SessionView)
		if !ok {
			return
		}

		meta, _ := json.Marshal(view)
		audit.Log(view.UID, "mines_started", string(meta))
	})
}
