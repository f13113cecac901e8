package websocket

import (
	"context"
)

func (that *Server) handleJoinGame(ctx context.Context, connectionID string, msg *Message) (any, error) {
	var payload JoinPayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	return that.gameUseCase.JoinGame(ctx, connectionID, payload.Name)
}

func (that *Server) handleChooseCharacter(ctx context.Context, connectionID string, msg *Message) (any, error) {
	var payload CharacterPayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	return that.gameUseCase.ChooseCharacter(ctx, connectionID, payload.Character)
}

func (that *Server) handleStartGame(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.StartGame(ctx, connectionID)
}

func (that *Server) handleToggleReady(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.ToggleReady(ctx, connectionID)
}

func (that *Server) handlePauseGame(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.PauseGame(ctx, connectionID)
}

func (that *Server) handleResumeGame(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.ResumeGame(ctx, connectionID)
}

func (that *Server) handleFinishGame(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.FinishGame(ctx, connectionID)
}

func (that *Server) handlePlayTurn(ctx context.Context, connectionID string, msg *Message) (any, error) {
	var payload TurnPayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	return that.gameUseCase.PlayTurn(ctx, connectionID, payload.Action, payload.Outcome)
}

func (that *Server) handleEndRound(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.EndRound(ctx, connectionID)
}

func (that *Server) handleAwardPoints(ctx context.Context, connectionID string, msg *Message) (any, error) {
	var payload ScorePayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	return that.gameUseCase.AwardPoints(ctx, connectionID, payload.Player, payload.Base, payload.Killer)
}

func (that *Server) handleCloseGame(ctx context.Context, connectionID string, _ *Message) (any, error) {
	return that.gameUseCase.CloseGame(ctx, connectionID)
}

func (that *Server) handleState(ctx context.Context, _ string, _ *Message) (any, error) {
	return that.gameUseCase.State(ctx), nil
}
