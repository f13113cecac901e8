package entity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
)

type State string

const (
	StateWaitingForPlayers State = "waiting_for_players"
	StateWaitingForHost    State = "waiting_for_host"
	StateStarted           State = "started"
	StatePaused            State = "paused"
	StateFinished          State = "finished"
)

func (that State) IsValid() bool {
	switch that {
	case StateWaitingForPlayers, StateWaitingForHost, StateStarted, StatePaused, StateFinished:
		return true
	default:
		return false
	}
}

const (
	DefaultMaxPlayers   = 6
	MinPlayers          = 3
	DefaultResetTimeout = 3 * time.Second
)

// CharacterResetter releases every character claim of the external registry.
type CharacterResetter interface {
	Reset(ctx context.Context) error
}

type Option func(*Game)

func WithMaxPlayers(maxPlayers int) Option {
	return func(game *Game) {
		if maxPlayers > 0 {
			game.maxPlayers = maxPlayers
		}
	}
}

func WithResetTimeout(timeout time.Duration) Option {
	return func(game *Game) {
		if timeout > 0 {
			game.resetTimeout = timeout
		}
	}
}

// Game is the state of the single game session. One instance lives for the whole process;
// Close resets it in place. All methods are safe for concurrent use, mutations are serialized.
type Game struct {
	mu sync.RWMutex

	characters   CharacterResetter
	maxPlayers   int
	resetTimeout time.Duration

	hostConnectionID          string
	players                   []*Player
	currentState              State
	currentKillerConnectionID string
	rotation                  *KillerRotation
	currentRotation           int
	rounds                    []*Round
}

func NewGame(characters CharacterResetter, opts ...Option) *Game {
	game := &Game{
		characters:   characters,
		maxPlayers:   DefaultMaxPlayers,
		resetTimeout: DefaultResetTimeout,
		currentState: StateWaitingForPlayers,
		rotation:     NewKillerRotation(),
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

func (that *Game) State() State {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.currentState
}

func (that *Game) HostConnectionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.hostConnectionID
}

func (that *Game) KillerConnectionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.currentKillerConnectionID
}

func (that *Game) CurrentRotation() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.currentRotation
}

func (that *Game) MaxPlayers() int {
	return that.maxPlayers
}

func (that *Game) Size() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.players)
}

// Players returns copies of the players in join order.
func (that *Game) Players() []Player {
	that.mu.RLock()
	defer that.mu.RUnlock()

	out := make([]Player, 0, len(that.players))
	for _, player := range that.players {
		out = append(out, *clonePlayer(player))
	}

	return out
}

// NotYetKiller returns the connection IDs that have not held the killer role this match.
func (that *Game) NotYetKiller() []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.rotation.Candidates()
}

// Rounds returns copies of the round history, oldest first.
func (that *Game) Rounds() []Round {
	that.mu.RLock()
	defer that.mu.RUnlock()

	out := make([]Round, 0, len(that.rounds))
	for _, round := range that.rounds {
		out = append(out, round.clone())
	}

	return out
}

// FindByName returns a copy of the player with exactly this name, or nil.
func (that *Game) FindByName(name string) *Player {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return clonePlayer(that.findByName(name))
}

// FindByConnectionID returns a copy of the player with this connection ID, or nil.
func (that *Game) FindByConnectionID(connectionID string) *Player {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return clonePlayer(that.findByConnectionID(connectionID))
}

func (that *Game) AllPlayersHaveCharacter() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.allPlayersHaveCharacter()
}

func (that *Game) AllPlayersWasKiller() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.allPlayersWasKiller()
}

// AddPlayer adds a new player. The first player to join an empty host slot becomes host;
// options.IsHost from the caller is ignored.
func (that *Game) AddPlayer(name, connectionID string, options PlayerOptions) error {
	if connectionID == "" {
		return apperror.ErrConnectionIDRequired
	}

	if name == "" {
		return apperror.ErrNameRequired
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.findByName(name) != nil || that.findByConnectionID(connectionID) != nil {
		return apperror.ErrPlayerAlreadyExists
	}

	if len(that.players) >= that.maxPlayers {
		return apperror.ErrGameFull
	}

	options.IsHost = that.hostConnectionID == ""
	if options.IsHost {
		that.hostConnectionID = connectionID
	}

	that.players = append(that.players, NewPlayer(name, connectionID, options))
	that.rotation.Add(connectionID)

	if that.currentState == StateWaitingForPlayers && len(that.players) >= MinPlayers {
		that.currentState = StateWaitingForHost
	}

	return nil
}

// DisconnectPlayer removes the player. It returns false when the player is nil or absent.
// Host and killer references to the player are cleared, never reassigned.
func (that *Game) DisconnectPlayer(player *Player) bool {
	if player == nil {
		return false
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	connectionID := player.ConnectionID
	if that.findByConnectionID(connectionID) == nil {
		return false
	}

	remaining := make([]*Player, 0, len(that.players))
	for _, p := range that.players {
		if p.ConnectionID != connectionID {
			remaining = append(remaining, p)
		}
	}
	that.players = remaining
	that.rotation.Remove(connectionID)

	if that.hostConnectionID == connectionID {
		that.hostConnectionID = ""
	}

	if that.currentKillerConnectionID == connectionID {
		that.currentKillerConnectionID = ""
	}

	if round := that.openRound(); round != nil {
		round.SkipAbsent(that.isPresent)
		if !round.IsOpen() {
			that.handBackToHost()
		}
	}

	if that.currentState == StateWaitingForHost && that.currentRotation == 0 && len(that.players) < MinPlayers {
		that.currentState = StateWaitingForPlayers
	}

	return true
}

// PromoteHost gives the host role to the earliest joined player when the host slot is empty.
// It returns the host after the call, or nil for an empty session.
func (that *Game) PromoteHost() *Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.hostConnectionID == "" && len(that.players) > 0 {
		that.players[0].IsHost = true
		that.hostConnectionID = that.players[0].ConnectionID
	}

	return clonePlayer(that.findByConnectionID(that.hostConnectionID))
}

// Start begins a new rotation. Checks run in a fixed order and nothing is mutated on failure.
func (that *Game) Start(connectionID string) error {
	if connectionID == "" {
		return apperror.ErrConnectionIDRequired
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case that.findByConnectionID(connectionID) == nil:
		return apperror.ErrPlayerNotFound
	case that.hostConnectionID != connectionID:
		return apperror.ErrNotHost
	case len(that.players) < MinPlayers:
		return apperror.ErrNotEnoughPlayers
	case !that.allPlayersHaveCharacter():
		return apperror.ErrCharactersMissing
	case that.currentState == StateStarted:
		return apperror.ErrGameAlreadyStarted
	case that.currentState == StateFinished:
		return apperror.ErrGameFinished
	case that.allPlayersWasKiller():
		return apperror.ErrAllKillers
	}

	if round := that.openRound(); round != nil {
		round.Close()
	}

	killer := that.rotation.Next(that.players)
	that.currentKillerConnectionID = killer.ConnectionID
	that.currentRotation++

	order := make([]string, 0, len(that.players))
	for _, player := range that.players {
		order = append(order, player.ConnectionID)
	}
	that.rounds = append(that.rounds, NewRound(that.currentRotation, order))
	that.currentState = StateStarted

	return nil
}

// UpdateState sets the state directly. Legality is the caller's concern; the only rule kept
// here is that a finished game can be left through Close alone.
func (that *Game) UpdateState(state State) error {
	if !state.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownState, state)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.currentState == StateFinished && state != StateFinished {
		return apperror.ErrGameFinished
	}

	that.currentState = state

	return nil
}

// Close resets the session to empty. The registry reset is awaited with the reset timeout;
// its error is returned but the local reset always completes.
func (that *Game) Close(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	var resetErr error
	if that.characters != nil {
		resetCtx, cancel := context.WithTimeout(ctx, that.resetTimeout)
		if err := that.characters.Reset(resetCtx); err != nil {
			resetErr = fmt.Errorf("failed to reset characters: %w", err)
		}
		cancel()
	}

	that.players = nil
	that.hostConnectionID = ""
	that.currentKillerConnectionID = ""
	that.currentState = StateWaitingForPlayers
	that.rotation.Reset()
	that.currentRotation = 0
	that.rounds = nil

	return resetErr
}

// AssignCharacter sets the player's character and returns the name of the one it replaced.
func (that *Game) AssignCharacter(connectionID string, character Character) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.findByConnectionID(connectionID)
	if player == nil {
		return "", apperror.ErrPlayerNotFound
	}

	previous := player.CharacterName()
	character.InUse = true
	character.OwnerConnectionID = connectionID
	player.Character = &character

	return previous, nil
}

func (that *Game) ToggleReady(connectionID string) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.findByConnectionID(connectionID)
	if player == nil {
		return false, apperror.ErrPlayerNotFound
	}

	player.IsReady = !player.IsReady

	return player.IsReady, nil
}

// AwardPoints adds non-negative points to the player's scores.
func (that *Game) AwardPoints(connectionID string, base, killer int) error {
	if base < 0 || killer < 0 {
		return apperror.ErrNegativePoints
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.findByConnectionID(connectionID)
	if player == nil {
		return apperror.ErrPlayerNotFound
	}

	player.BaseScore += base
	player.KillerScore += killer

	return nil
}

// RecordTurn appends a turn by the acting player to the open round. It reports whether the
// round closed because every player has acted, in which case the game waits for the host.
func (that *Game) RecordTurn(connectionID, action, outcome string) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.findByConnectionID(connectionID)
	if player == nil {
		return false, apperror.ErrPlayerNotFound
	}

	if that.currentState != StateStarted {
		return false, apperror.ErrGameIsNotStarted
	}

	round := that.openRound()
	if round == nil {
		return false, apperror.ErrNoOpenRound
	}

	if round.CurrentActor() != connectionID {
		return false, apperror.ErrNotYourTurn
	}

	round.Record(Turn{PlayerName: player.Name, Action: action, Outcome: outcome}, that.isPresent)

	if !round.IsOpen() {
		that.currentState = StateWaitingForHost
		return true, nil
	}

	return false, nil
}

// EndRound closes the open round before every player has acted.
func (that *Game) EndRound() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	round := that.openRound()
	if round == nil {
		return apperror.ErrNoOpenRound
	}

	round.Close()
	that.handBackToHost()

	return nil
}

// handBackToHost runs after the open round closes: a running or paused match waits for the
// host to start the next rotation.
func (that *Game) handBackToHost() {
	if that.currentState == StateStarted || that.currentState == StatePaused {
		that.currentState = StateWaitingForHost
	}
}

func (that *Game) openRound() *Round {
	if len(that.rounds) == 0 {
		return nil
	}

	last := that.rounds[len(that.rounds)-1]
	if !last.IsOpen() {
		return nil
	}

	return last
}

func (that *Game) isPresent(connectionID string) bool {
	return that.findByConnectionID(connectionID) != nil
}

func (that *Game) findByName(name string) *Player {
	for _, player := range that.players {
		if player.Name == name {
			return player
		}
	}

	return nil
}

func (that *Game) findByConnectionID(connectionID string) *Player {
	for _, player := range that.players {
		if player.ConnectionID == connectionID {
			return player
		}
	}

	return nil
}

func (that *Game) allPlayersHaveCharacter() bool {
	for _, player := range that.players {
		if !player.HasCharacter() {
			return false
		}
	}

	return true
}

func (that *Game) allPlayersWasKiller() bool {
	for _, player := range that.players {
		if !player.WasKiller {
			return false
		}
	}

	return true
}

func clonePlayer(player *Player) *Player {
	if player == nil {
		return nil
	}

	out := *player
	if player.Character != nil {
		character := *player.Character
		out.Character = &character
	}

	return &out
}
