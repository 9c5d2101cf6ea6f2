package event

const (
	EventWagerSettled = "wager.settled"
	EventMinesStarted = "mines.started"
)
