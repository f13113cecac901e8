package entity

// PlayerView is the public projection of a player.
type PlayerView struct {
	Name        string `json:"name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
	Character   string `json:"character,omitempty"`
	BaseScore   int    `json:"base_score"`
	KillerScore int    `json:"killer_score"`
	IsKiller    bool   `json:"is_killer"`
}

// Snapshot is the read-only view of the session broadcast to every participant.
// Players are identified by name; connection IDs and rotation bookkeeping stay internal.
type Snapshot struct {
	Host     string       `json:"host"`
	Killer   string       `json:"killer"`
	Players  []PlayerView `json:"players"`
	State    State        `json:"state"`
	Rotation int          `json:"rotation"`
	Rounds   []Round      `json:"rounds"`
}

func (that *Game) Snapshot() Snapshot {
	that.mu.RLock()
	defer that.mu.RUnlock()

	snapshot := Snapshot{
		Players:  make([]PlayerView, 0, len(that.players)),
		State:    that.currentState,
		Rotation: that.currentRotation,
		Rounds:   make([]Round, 0, len(that.rounds)),
	}

	for _, player := range that.players {
		isKiller := player.ConnectionID == that.currentKillerConnectionID

		if player.ConnectionID == that.hostConnectionID {
			snapshot.Host = player.Name
		}

		if isKiller {
			snapshot.Killer = player.Name
		}

		snapshot.Players = append(snapshot.Players, PlayerView{
			Name:        player.Name,
			IsHost:      player.IsHost,
			IsReady:     player.IsReady,
			Character:   player.CharacterName(),
			BaseScore:   player.BaseScore,
			KillerScore: player.KillerScore,
			IsKiller:    isKiller,
		})
	}

	for _, round := range that.rounds {
		snapshot.Rounds = append(snapshot.Rounds, round.clone())
	}

	return snapshot
}
