package entity

// PlayerOptions enumerates the recognized per-player join attributes.
type PlayerOptions struct {
	IsHost bool
}

type Player struct {
	Name         string     `json:"name"`
	ConnectionID string     `json:"-"`
	Character    *Character `json:"character,omitempty"`
	IsHost       bool       `json:"is_host"`
	IsReady      bool       `json:"is_ready"`
	BaseScore    int        `json:"base_score"`
	KillerScore  int        `json:"killer_score"`
	WasKiller    bool       `json:"-"`
}

func NewPlayer(name, connectionID string, options PlayerOptions) *Player {
	return &Player{
		Name:         name,
		ConnectionID: connectionID,
		IsHost:       options.IsHost,
	}
}

func (that *Player) HasCharacter() bool {
	return that.Character != nil
}

// CharacterName returns an empty string for a player without a character.
func (that *Player) CharacterName() string {
	if that.Character == nil {
		return ""
	}

	return that.Character.Name
}
