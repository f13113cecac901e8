package entity

// Turn is one entry of a round's turn history.
type Turn struct {
	PlayerName string `json:"player_name"`
	Action     string `json:"action"`
	Outcome    string `json:"outcome"`
}

// Round records the turns of one rotation. Only the most recent, open round accepts turns.
type Round struct {
	Index       int    `json:"index"`
	CurrentTurn int    `json:"current_turn"`
	TurnHistory []Turn `json:"turn_history"`
	Closed      bool   `json:"closed"`

	actingOrder []string
}

func NewRound(index int, actingOrder []string) *Round {
	order := make([]string, len(actingOrder))
	copy(order, actingOrder)

	return &Round{
		Index:       index,
		TurnHistory: []Turn{},
		actingOrder: order,
	}
}

// CurrentActor returns the connection ID whose turn it is, or "" once everybody has acted.
func (that *Round) CurrentActor() string {
	if that.Closed || that.CurrentTurn >= len(that.actingOrder) {
		return ""
	}

	return that.actingOrder[that.CurrentTurn]
}

func (that *Round) IsOpen() bool {
	return !that.Closed
}

// Record appends a turn and advances to the next actor for which present returns true.
// The round closes when no actor is left.
func (that *Round) Record(turn Turn, present func(connectionID string) bool) {
	that.TurnHistory = append(that.TurnHistory, turn)
	that.CurrentTurn++
	that.SkipAbsent(present)
}

// SkipAbsent moves the current turn past actors that are no longer present.
func (that *Round) SkipAbsent(present func(connectionID string) bool) {
	for that.CurrentTurn < len(that.actingOrder) && !present(that.actingOrder[that.CurrentTurn]) {
		that.CurrentTurn++
	}

	if that.CurrentTurn >= len(that.actingOrder) {
		that.Closed = true
	}
}

func (that *Round) Close() {
	that.Closed = true
}

func (that *Round) clone() Round {
	history := make([]Turn, len(that.TurnHistory))
	copy(history, that.TurnHistory)

	return Round{
		Index:       that.Index,
		CurrentTurn: that.CurrentTurn,
		TurnHistory: history,
		Closed:      that.Closed,
	}
}
