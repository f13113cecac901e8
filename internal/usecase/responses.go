package usecase

type MessageResponse struct {
	Message string `json:"message"`
}

type CharacterResponse struct {
	Character string `json:"character"`
}

type ReadyResponse struct {
	Ready bool `json:"ready"`
}

type TurnResponse struct {
	RoundClosed bool `json:"round_closed"`
}

type DisconnectResponse struct {
	Disconnected bool   `json:"disconnected"`
	NewHost      string `json:"new_host,omitempty"`
	GameClosed   bool   `json:"game_closed,omitempty"`
}
