package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
	"github.com/rocketscienceinc/killer-backend/internal/entity"
)

type GameUseCase interface {
	JoinGame(ctx context.Context, connectionID, name string) (*entity.Snapshot, error)
	ChooseCharacter(ctx context.Context, connectionID, characterName string) (*CharacterResponse, error)
	ToggleReady(ctx context.Context, connectionID string) (*ReadyResponse, error)

	StartGame(ctx context.Context, connectionID string) (*MessageResponse, error)
	PauseGame(ctx context.Context, connectionID string) (*MessageResponse, error)
	ResumeGame(ctx context.Context, connectionID string) (*MessageResponse, error)
	FinishGame(ctx context.Context, connectionID string) (*MessageResponse, error)
	CloseGame(ctx context.Context, connectionID string) (*MessageResponse, error)

	PlayTurn(ctx context.Context, connectionID, action, outcome string) (*TurnResponse, error)
	EndRound(ctx context.Context, connectionID string) (*MessageResponse, error)
	AwardPoints(ctx context.Context, connectionID, playerName string, base, killer int) (*MessageResponse, error)

	Disconnect(ctx context.Context, connectionID string) (*DisconnectResponse, error)
	State(ctx context.Context) entity.Snapshot
}

type characterRegistry interface {
	FindByName(ctx context.Context, name string) (*entity.Character, error)
	Use(ctx context.Context, name, connectionID string) error
	Release(ctx context.Context, name string) error
	entity.CharacterResetter
}

type gameUseCase struct {
	logger *slog.Logger

	// mu serializes commands: each one runs to completion before the next starts.
	mu         sync.Mutex
	game       *entity.Game
	characters characterRegistry
}

func NewGameUseCase(logger *slog.Logger, game *entity.Game, characters characterRegistry) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "usecase"),
		game:       game,
		characters: characters,
	}
}

func (that *gameUseCase) JoinGame(_ context.Context, connectionID, name string) (*entity.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "JoinGame")

	name = strings.TrimSpace(name)
	if err := that.game.AddPlayer(name, connectionID, entity.PlayerOptions{}); err != nil {
		return nil, err
	}

	log.Info("player joined", "name", name, "players", that.game.Size())

	snapshot := that.game.Snapshot()

	return &snapshot, nil
}

func (that *gameUseCase) ChooseCharacter(ctx context.Context, connectionID, characterName string) (*CharacterResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "ChooseCharacter")

	if connectionID == "" {
		return nil, apperror.ErrConnectionIDRequired
	}

	if that.game.FindByConnectionID(connectionID) == nil {
		return nil, apperror.ErrPlayerNotFound
	}

	if characterName == "" {
		return nil, apperror.ErrCharacterNameRequired
	}

	character, err := that.characters.FindByName(ctx, characterName)
	if err != nil {
		return nil, err
	}

	if character.InUse {
		if character.OwnerConnectionID == connectionID {
			return &CharacterResponse{Character: character.Name}, nil
		}

		return nil, apperror.ErrCharacterInUse
	}

	if err = that.characters.Use(ctx, character.Name, connectionID); err != nil {
		return nil, err
	}

	previous, err := that.game.AssignCharacter(connectionID, *character)
	if err != nil {
		that.release(ctx, log, character.Name)
		return nil, err
	}

	if previous != "" && previous != character.Name {
		that.release(ctx, log, previous)
	}

	log.Info("character chosen", "character", character.Name)

	return &CharacterResponse{Character: character.Name}, nil
}

func (that *gameUseCase) ToggleReady(_ context.Context, connectionID string) (*ReadyResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if connectionID == "" {
		return nil, apperror.ErrConnectionIDRequired
	}

	ready, err := that.game.ToggleReady(connectionID)
	if err != nil {
		return nil, err
	}

	return &ReadyResponse{Ready: ready}, nil
}

func (that *gameUseCase) StartGame(_ context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "StartGame")

	if err := that.game.Start(connectionID); err != nil {
		return nil, err
	}

	log.Info("game started", "rotation", that.game.CurrentRotation())

	return &MessageResponse{Message: "Game started"}, nil
}

func (that *gameUseCase) PauseGame(_ context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	if that.game.State() != entity.StateStarted {
		return nil, apperror.ErrGameIsNotStarted
	}

	if err := that.game.UpdateState(entity.StatePaused); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Game paused"}, nil
}

func (that *gameUseCase) ResumeGame(_ context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	if that.game.State() != entity.StatePaused {
		return nil, apperror.ErrGameIsNotPaused
	}

	if err := that.game.UpdateState(entity.StateStarted); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Game resumed"}, nil
}

func (that *gameUseCase) FinishGame(_ context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "FinishGame")

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	switch that.game.State() {
	case entity.StateFinished:
		return nil, apperror.ErrGameFinished
	case entity.StateWaitingForPlayers:
		return nil, apperror.ErrGameIsNotStarted
	case entity.StateWaitingForHost:
		if that.game.CurrentRotation() == 0 {
			return nil, apperror.ErrGameIsNotStarted
		}
	}

	if err := that.game.EndRound(); err != nil && !errors.Is(err, apperror.ErrNoOpenRound) {
		return nil, err
	}

	if err := that.game.UpdateState(entity.StateFinished); err != nil {
		return nil, err
	}

	log.Info("game finished", "rotations", that.game.CurrentRotation())

	return &MessageResponse{Message: "Game finished"}, nil
}

func (that *gameUseCase) CloseGame(ctx context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	that.closeGame(ctx)

	return &MessageResponse{Message: "Game closed"}, nil
}

func (that *gameUseCase) PlayTurn(_ context.Context, connectionID, action, outcome string) (*TurnResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if connectionID == "" {
		return nil, apperror.ErrConnectionIDRequired
	}

	if action == "" {
		return nil, apperror.ErrActionRequired
	}

	closed, err := that.game.RecordTurn(connectionID, action, outcome)
	if err != nil {
		return nil, err
	}

	return &TurnResponse{RoundClosed: closed}, nil
}

func (that *gameUseCase) EndRound(_ context.Context, connectionID string) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	if err := that.game.EndRound(); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Round ended"}, nil
}

func (that *gameUseCase) AwardPoints(_ context.Context, connectionID, playerName string, base, killer int) (*MessageResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.requireHost(connectionID); err != nil {
		return nil, err
	}

	if playerName == "" {
		return nil, apperror.ErrNameRequired
	}

	target := that.game.FindByName(playerName)
	if target == nil {
		return nil, apperror.ErrPlayerNotFound
	}

	if err := that.game.AwardPoints(target.ConnectionID, base, killer); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Points awarded"}, nil
}

// Disconnect removes the player behind the connection. When the host leaves, the earliest
// joined player is promoted; when the killer leaves mid-round, the round is ended and the
// game waits for the host to start the next rotation. The last player leaving closes the game.
func (that *gameUseCase) Disconnect(ctx context.Context, connectionID string) (*DisconnectResponse, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Disconnect")

	if connectionID == "" {
		return nil, apperror.ErrConnectionIDRequired
	}

	player := that.game.FindByConnectionID(connectionID)
	wasKiller := connectionID == that.game.KillerConnectionID()
	state := that.game.State()
	roundRunning := state == entity.StateStarted || state == entity.StatePaused

	if !that.game.DisconnectPlayer(player) {
		return &DisconnectResponse{Disconnected: false}, nil
	}

	if player.HasCharacter() {
		that.release(ctx, log, player.CharacterName())
	}

	log = log.With("name", player.Name)

	if that.game.Size() == 0 {
		that.closeGame(ctx)
		log.Info("last player left, game closed")

		return &DisconnectResponse{Disconnected: true, GameClosed: true}, nil
	}

	response := &DisconnectResponse{Disconnected: true}

	if player.IsHost {
		if host := that.game.PromoteHost(); host != nil {
			response.NewHost = host.Name
			log.Info("host promoted", "host", host.Name)
		}
	}

	if wasKiller && roundRunning {
		if err := that.game.EndRound(); err != nil && !errors.Is(err, apperror.ErrNoOpenRound) {
			log.Error("failed to end round", "error", err)
		}
		log.Info("killer left, round ended")
	}

	log.Info("player disconnected", "players", that.game.Size())

	return response, nil
}

func (that *gameUseCase) State(_ context.Context) entity.Snapshot {
	return that.game.Snapshot()
}

func (that *gameUseCase) requireHost(connectionID string) error {
	if connectionID == "" {
		return apperror.ErrConnectionIDRequired
	}

	if that.game.FindByConnectionID(connectionID) == nil {
		return apperror.ErrPlayerNotFound
	}

	if that.game.HostConnectionID() != connectionID {
		return apperror.ErrNotHost
	}

	return nil
}

// closeGame resets the session. A registry failure is logged, the local reset always happens.
func (that *gameUseCase) closeGame(ctx context.Context) {
	log := that.logger.With("method", "closeGame")

	if err := that.game.Close(ctx); err != nil {
		log.Error("failed to reset character registry", "error", err)
		return
	}

	log.Info("game closed")
}

func (that *gameUseCase) release(ctx context.Context, log *slog.Logger, name string) {
	if err := that.characters.Release(ctx, name); err != nil {
		log.Error("failed to release character", "character", name, "error", err)
	}
}
