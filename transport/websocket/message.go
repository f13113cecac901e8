package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
)

const writeTimeout = 5 * time.Second

const (
	actionConnect         = "connect"
	actionGameJoin        = "game:join"
	actionCharacterChoose = "character:choose"
	actionGameStart       = "game:start"
	actionPlayerReady     = "player:ready"
	actionGamePause       = "game:pause"
	actionGameResume      = "game:resume"
	actionGameFinish      = "game:finish"
	actionRoundTurn       = "round:turn"
	actionRoundEnd        = "round:end"
	actionPlayerScore     = "player:score"
	actionGameClose       = "game:close"
	actionGameState       = "game:state"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectPayload struct {
	ConnectionID string `json:"connectionID"`
}

type JoinPayload struct {
	Name string `json:"name"`
}

type CharacterPayload struct {
	Character string `json:"character"`
}

type TurnPayload struct {
	Action  string `json:"action"`
	Outcome string `json:"outcome,omitempty"`
}

type ScorePayload struct {
	Player string `json:"player"`
	Base   int    `json:"base"`
	Killer int    `json:"killer"`
}

type ErrorPayload struct {
	Error *apperror.Error `json:"error"`
}

func decodePayload(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return apperror.ErrInvalidPayload
	}

	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", apperror.ErrInvalidPayload)
	}

	return nil
}

func sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = wsjson.Write(ctx, conn, Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
