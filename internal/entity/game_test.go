package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
)

var errRegistryDown = errors.New("registry down")

type resetterFunc func(ctx context.Context) error

func (f resetterFunc) Reset(ctx context.Context) error {
	return f(ctx)
}

func okResetter() CharacterResetter {
	return resetterFunc(func(context.Context) error { return nil })
}

// newLobby returns a game with n players p1..pn, each with a character when withCharacters.
func newLobby(t *testing.T, n int, withCharacters bool) *Game {
	t.Helper()

	game := NewGame(okResetter())
	for i := 1; i <= n; i++ {
		require.NoError(t, game.AddPlayer(fmt.Sprintf("player%d", i), fmt.Sprintf("p%d", i), PlayerOptions{}))

		if withCharacters {
			_, err := game.AssignCharacter(fmt.Sprintf("p%d", i), Character{Name: fmt.Sprintf("char%d", i)})
			require.NoError(t, err)
		}
	}

	return game
}

func TestGame_AddPlayer(t *testing.T) {
	t.Run("First player becomes host", func(t *testing.T) {
		// Given: an empty game
		game := NewGame(okResetter())

		// When: two players join, the second one asking to be host
		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))
		require.NoError(t, game.AddPlayer("bob", "c2", PlayerOptions{IsHost: true}))

		// Then: only the first one is host
		assert.Equal(t, "c1", game.HostConnectionID())
		assert.True(t, game.FindByConnectionID("c1").IsHost)
		assert.False(t, game.FindByConnectionID("c2").IsHost)
		assert.Equal(t, []string{"c1", "c2"}, game.NotYetKiller())
	})

	t.Run("Rejects duplicate name", func(t *testing.T) {
		// Given: a game with alice
		game := NewGame(okResetter())
		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))

		// When: another connection joins as alice
		err := game.AddPlayer("alice", "c2", PlayerOptions{})

		// Then: the join is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrPlayerAlreadyExists)
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Equal(t, 1, game.Size())
		assert.Equal(t, []string{"c1"}, game.NotYetKiller())
	})

	t.Run("Rejects duplicate connection", func(t *testing.T) {
		game := NewGame(okResetter())
		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))

		err := game.AddPlayer("bob", "c1", PlayerOptions{})

		require.ErrorIs(t, err, apperror.ErrPlayerAlreadyExists)
		assert.Nil(t, game.FindByName("bob"))
	})

	t.Run("Names are case sensitive", func(t *testing.T) {
		game := NewGame(okResetter())
		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))

		require.NoError(t, game.AddPlayer("Alice", "c2", PlayerOptions{}))
		assert.Equal(t, 2, game.Size())
	})

	t.Run("Rejects joins beyond capacity", func(t *testing.T) {
		// Given: a full game
		game := newLobby(t, DefaultMaxPlayers, false)

		// When: one more player joins
		err := game.AddPlayer("late", "late", PlayerOptions{})

		// Then: capacity conflict, size unchanged
		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Equal(t, DefaultMaxPlayers, game.Size())
	})

	t.Run("Custom capacity", func(t *testing.T) {
		game := NewGame(okResetter(), WithMaxPlayers(3))
		for i := 1; i <= 3; i++ {
			require.NoError(t, game.AddPlayer(fmt.Sprintf("n%d", i), fmt.Sprintf("c%d", i), PlayerOptions{}))
		}

		assert.ErrorIs(t, game.AddPlayer("n4", "c4", PlayerOptions{}), apperror.ErrGameFull)
	})

	t.Run("Requires connection and name", func(t *testing.T) {
		game := NewGame(okResetter())

		assert.ErrorIs(t, game.AddPlayer("alice", "", PlayerOptions{}), apperror.ErrConnectionIDRequired)
		assert.ErrorIs(t, game.AddPlayer("", "c1", PlayerOptions{}), apperror.ErrNameRequired)
		assert.Equal(t, 0, game.Size())
	})

	t.Run("Enough players moves the lobby to waiting for host", func(t *testing.T) {
		game := newLobby(t, 2, false)
		assert.Equal(t, StateWaitingForPlayers, game.State())

		require.NoError(t, game.AddPlayer("third", "p3", PlayerOptions{}))
		assert.Equal(t, StateWaitingForHost, game.State())
	})
}

func TestGame_DisconnectPlayer(t *testing.T) {
	t.Run("Removes the player from every collection", func(t *testing.T) {
		// Given: a lobby of three
		game := newLobby(t, 3, false)

		// When: the second player disconnects
		ok := game.DisconnectPlayer(game.FindByConnectionID("p2"))

		// Then: players and rotation candidates no longer contain it
		assert.True(t, ok)
		assert.Nil(t, game.FindByConnectionID("p2"))
		assert.Equal(t, []string{"p1", "p3"}, game.NotYetKiller())
		assert.Equal(t, StateWaitingForPlayers, game.State())
	})

	t.Run("Absent player is a no-op", func(t *testing.T) {
		// Given: a lobby where p2 already left
		game := newLobby(t, 3, false)
		gone := game.FindByConnectionID("p2")
		require.True(t, game.DisconnectPlayer(gone))

		// When: disconnecting p2 again, and a nil player
		second := game.DisconnectPlayer(gone)
		nilPlayer := game.DisconnectPlayer(nil)

		// Then: both report failure and nothing changes
		assert.False(t, second)
		assert.False(t, nilPlayer)
		assert.Equal(t, 2, game.Size())
		assert.Equal(t, []string{"p1", "p3"}, game.NotYetKiller())
	})

	t.Run("Host leaving clears the host slot without reassigning", func(t *testing.T) {
		game := newLobby(t, 3, false)

		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p1")))

		assert.Empty(t, game.HostConnectionID())
		for _, player := range game.Players() {
			assert.False(t, player.IsHost)
		}
	})

	t.Run("Next joiner takes an empty host slot", func(t *testing.T) {
		game := newLobby(t, 2, false)
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p1")))

		require.NoError(t, game.AddPlayer("newcomer", "p9", PlayerOptions{}))

		assert.Equal(t, "p9", game.HostConnectionID())
	})

	t.Run("Killer leaving clears the killer", func(t *testing.T) {
		// Given: a started game where p1 is killer
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		require.Equal(t, "p1", game.KillerConnectionID())

		// When: the killer leaves
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p1")))

		// Then: no dangling killer reference
		assert.Empty(t, game.KillerConnectionID())
		assert.Empty(t, game.Snapshot().Killer)
		assert.Equal(t, []string{"p2", "p3"}, game.NotYetKiller())
	})

	t.Run("Round closes when nobody is left to act", func(t *testing.T) {
		// Given: a started game where p1 already acted
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		_, err := game.RecordTurn("p1", "look", "nothing")
		require.NoError(t, err)

		// When: the two remaining actors leave
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p2")))
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p3")))

		// Then: the round is closed and the game waits for the host
		rounds := game.Rounds()
		require.Len(t, rounds, 1)
		assert.True(t, rounds[0].Closed)
		assert.Equal(t, StateWaitingForHost, game.State())
	})

	t.Run("Round closing while paused hands the game back to the host", func(t *testing.T) {
		// Given: a paused game where only p4 still has to act
		game := newLobby(t, 4, true)
		require.NoError(t, game.Start("p1"))
		for _, id := range []string{"p1", "p2", "p3"} {
			_, err := game.RecordTurn(id, "look", "nothing")
			require.NoError(t, err)
		}
		require.NoError(t, game.UpdateState(StatePaused))

		// When: p4 leaves
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p4")))

		// Then: the round is closed, the pause is dropped and the host can start the next rotation
		require.Len(t, game.Rounds(), 1)
		assert.True(t, game.Rounds()[0].Closed)
		assert.Equal(t, StateWaitingForHost, game.State())

		require.NoError(t, game.Start("p1"))
		assert.Equal(t, 2, game.CurrentRotation())
		assert.Equal(t, StateStarted, game.State())
	})
}

func TestGame_PromoteHost(t *testing.T) {
	t.Run("Promotes the earliest joined player", func(t *testing.T) {
		game := newLobby(t, 3, false)
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p1")))

		host := game.PromoteHost()

		require.NotNil(t, host)
		assert.Equal(t, "p2", host.ConnectionID)
		assert.True(t, game.FindByConnectionID("p2").IsHost)
	})

	t.Run("Keeps a present host", func(t *testing.T) {
		game := newLobby(t, 3, false)

		host := game.PromoteHost()

		assert.Equal(t, "p1", host.ConnectionID)
		assert.False(t, game.FindByConnectionID("p2").IsHost)
	})

	t.Run("Empty session has no host", func(t *testing.T) {
		assert.Nil(t, NewGame(okResetter()).PromoteHost())
	})
}

func TestGame_Start(t *testing.T) {
	t.Run("Preconditions scenario", func(t *testing.T) {
		// Given: two players with characters
		game := newLobby(t, 2, true)

		// When: the host starts
		err := game.Start("p1")

		// Then: not enough players
		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
		assert.ErrorIs(t, err, apperror.ErrBadRequest)

		// When: a third player without character joins and the host starts
		require.NoError(t, game.AddPlayer("player3", "p3", PlayerOptions{}))
		err = game.Start("p1")

		// Then: characters are missing
		require.ErrorIs(t, err, apperror.ErrCharactersMissing)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)

		// When: the third player picks a character
		_, err = game.AssignCharacter("p3", Character{Name: "char3"})
		require.NoError(t, err)

		// Then: the game starts
		require.NoError(t, game.Start("p1"))
		assert.Equal(t, StateStarted, game.State())
	})

	t.Run("Checks run in priority order", func(t *testing.T) {
		game := newLobby(t, 2, false)

		assert.ErrorIs(t, game.Start(""), apperror.ErrConnectionIDRequired)
		assert.ErrorIs(t, game.Start("stranger"), apperror.ErrPlayerNotFound)
		assert.ErrorIs(t, game.Start("p2"), apperror.ErrNotHost)
		assert.ErrorIs(t, game.Start("p1"), apperror.ErrNotEnoughPlayers)
	})

	t.Run("Already started", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		err := game.Start("p1")

		require.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, 1, game.CurrentRotation())
	})

	t.Run("Finished game cannot start", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.UpdateState(StateFinished))

		assert.ErrorIs(t, game.Start("p1"), apperror.ErrGameFinished)
	})

	t.Run("Assigns the killer and opens a round", func(t *testing.T) {
		game := newLobby(t, 3, true)

		require.NoError(t, game.Start("p1"))

		assert.Equal(t, "p1", game.KillerConnectionID())
		assert.True(t, game.FindByConnectionID("p1").WasKiller)
		assert.Equal(t, []string{"p2", "p3"}, game.NotYetKiller())

		rounds := game.Rounds()
		require.Len(t, rounds, 1)
		assert.Equal(t, 1, rounds[0].Index)
		assert.True(t, rounds[0].IsOpen())
	})

	t.Run("Rotation is fair and ends exhausted", func(t *testing.T) {
		// Given: three players
		game := newLobby(t, 3, true)
		var killers []string

		// When: three rotations are played
		for i := 0; i < 3; i++ {
			require.NoError(t, game.Start("p1"))
			killers = append(killers, game.KillerConnectionID())
			require.NoError(t, game.EndRound())
		}

		// Then: every player was killer exactly once, in join order
		assert.Equal(t, []string{"p1", "p2", "p3"}, killers)
		assert.True(t, game.AllPlayersWasKiller())
		assert.Empty(t, game.NotYetKiller())

		// And: the next start reports the exhausted rotation
		err := game.Start("p1")
		require.ErrorIs(t, err, apperror.ErrAllKillers)
		assert.ErrorIs(t, err, apperror.ErrRotationExhausted)
		assert.Equal(t, StateWaitingForHost, game.State())
	})

	t.Run("Late joiner gets a killer slot", func(t *testing.T) {
		game := newLobby(t, 3, true)
		for i := 0; i < 3; i++ {
			require.NoError(t, game.Start("p1"))
			require.NoError(t, game.EndRound())
		}

		require.NoError(t, game.AddPlayer("late", "p4", PlayerOptions{}))
		_, err := game.AssignCharacter("p4", Character{Name: "char4"})
		require.NoError(t, err)

		require.NoError(t, game.Start("p1"))
		assert.Equal(t, "p4", game.KillerConnectionID())
	})

	t.Run("Starting from pause closes the previous round", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		require.NoError(t, game.UpdateState(StatePaused))

		require.NoError(t, game.Start("p1"))

		rounds := game.Rounds()
		require.Len(t, rounds, 2)
		assert.True(t, rounds[0].Closed)
		assert.True(t, rounds[1].IsOpen())
		assert.Equal(t, "p2", game.KillerConnectionID())
	})
}

func TestGame_UpdateState(t *testing.T) {
	t.Run("Sets any defined state", func(t *testing.T) {
		game := NewGame(okResetter())

		require.NoError(t, game.UpdateState(StatePaused))
		assert.Equal(t, StatePaused, game.State())
	})

	t.Run("Rejects unknown state", func(t *testing.T) {
		game := NewGame(okResetter())

		err := game.UpdateState(State("dancing"))

		require.ErrorIs(t, err, apperror.ErrUnknownState)
		assert.Equal(t, StateWaitingForPlayers, game.State())
	})

	t.Run("Finished is terminal", func(t *testing.T) {
		game := NewGame(okResetter())
		require.NoError(t, game.UpdateState(StateFinished))

		assert.ErrorIs(t, game.UpdateState(StateStarted), apperror.ErrGameFinished)
		assert.Equal(t, StateFinished, game.State())
	})
}

func TestGame_Close(t *testing.T) {
	t.Run("Resets everything", func(t *testing.T) {
		// Given: a started game
		game := newLobby(t, 4, true)
		require.NoError(t, game.Start("p1"))

		// When: closing
		err := game.Close(context.Background())

		// Then: the session is empty
		require.NoError(t, err)
		assert.Equal(t, 0, game.Size())
		assert.Empty(t, game.HostConnectionID())
		assert.Empty(t, game.KillerConnectionID())
		assert.Equal(t, StateWaitingForPlayers, game.State())
		assert.Empty(t, game.NotYetKiller())
		assert.Empty(t, game.Rounds())
		assert.Equal(t, 0, game.CurrentRotation())
	})

	t.Run("Registry failure does not block the reset", func(t *testing.T) {
		// Given: a finished game whose registry fails
		game := NewGame(resetterFunc(func(context.Context) error { return errRegistryDown }))
		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))
		require.NoError(t, game.UpdateState(StateFinished))

		// When: closing
		err := game.Close(context.Background())

		// Then: the failure is reported and the local state is reset anyway
		require.ErrorIs(t, err, errRegistryDown)
		assert.Equal(t, 0, game.Size())
		assert.Empty(t, game.HostConnectionID())
		assert.Equal(t, StateWaitingForPlayers, game.State())
	})

	t.Run("Registry reset gets a deadline", func(t *testing.T) {
		var hasDeadline bool
		game := NewGame(resetterFunc(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}))

		require.NoError(t, game.Close(context.Background()))
		assert.True(t, hasDeadline)
	})

	t.Run("Same instance is reusable", func(t *testing.T) {
		game := newLobby(t, 3, false)
		require.NoError(t, game.Close(context.Background()))

		require.NoError(t, game.AddPlayer("alice", "c1", PlayerOptions{}))
		assert.Equal(t, "c1", game.HostConnectionID())
	})
}

func TestGame_RecordTurn(t *testing.T) {
	t.Run("Players act in join order and the round closes", func(t *testing.T) {
		// Given: a started game of three
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		// When: everybody acts in order
		closed1, err := game.RecordTurn("p1", "hide", "safe")
		require.NoError(t, err)
		closed2, err := game.RecordTurn("p2", "search", "found clue")
		require.NoError(t, err)
		closed3, err := game.RecordTurn("p3", "run", "escaped")
		require.NoError(t, err)

		// Then: the last turn closes the round and the game waits for the host
		assert.False(t, closed1)
		assert.False(t, closed2)
		assert.True(t, closed3)
		assert.Equal(t, StateWaitingForHost, game.State())

		round := game.Rounds()[0]
		assert.True(t, round.Closed)
		assert.Equal(t, 3, round.CurrentTurn)
		assert.Equal(t, []Turn{
			{PlayerName: "player1", Action: "hide", Outcome: "safe"},
			{PlayerName: "player2", Action: "search", Outcome: "found clue"},
			{PlayerName: "player3", Action: "run", Outcome: "escaped"},
		}, round.TurnHistory)
	})

	t.Run("Out of turn is rejected", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		_, err := game.RecordTurn("p2", "search", "")

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, game.Rounds()[0].TurnHistory)
	})

	t.Run("Not started", func(t *testing.T) {
		game := newLobby(t, 3, true)

		_, err := game.RecordTurn("p1", "hide", "")

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Unknown player", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		_, err := game.RecordTurn("ghost", "hide", "")

		assert.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})

	t.Run("Absent players are skipped", func(t *testing.T) {
		game := newLobby(t, 4, true)
		require.NoError(t, game.Start("p1"))
		require.True(t, game.DisconnectPlayer(game.FindByConnectionID("p2")))

		_, err := game.RecordTurn("p1", "hide", "")
		require.NoError(t, err)

		_, err = game.RecordTurn("p3", "search", "")
		assert.NoError(t, err)
	})

	t.Run("Closed round is immutable", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		require.NoError(t, game.EndRound())
		require.NoError(t, game.UpdateState(StateStarted))

		_, err := game.RecordTurn("p1", "hide", "")

		assert.ErrorIs(t, err, apperror.ErrNoOpenRound)
	})
}

func TestGame_EndRound(t *testing.T) {
	t.Run("No open round", func(t *testing.T) {
		game := newLobby(t, 3, true)

		assert.ErrorIs(t, game.EndRound(), apperror.ErrNoOpenRound)
	})

	t.Run("Closes the round and waits for the host", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		require.NoError(t, game.EndRound())

		assert.True(t, game.Rounds()[0].Closed)
		assert.Equal(t, StateWaitingForHost, game.State())
	})

	t.Run("Ending a paused round waits for the host", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		require.NoError(t, game.UpdateState(StatePaused))

		require.NoError(t, game.EndRound())

		assert.True(t, game.Rounds()[0].Closed)
		assert.Equal(t, StateWaitingForHost, game.State())
	})
}

func TestGame_PlayerAttributes(t *testing.T) {
	t.Run("AssignCharacter returns the replaced character", func(t *testing.T) {
		game := newLobby(t, 1, false)

		previous, err := game.AssignCharacter("p1", Character{Name: "ghost"})
		require.NoError(t, err)
		assert.Empty(t, previous)

		previous, err = game.AssignCharacter("p1", Character{Name: "witch"})
		require.NoError(t, err)
		assert.Equal(t, "ghost", previous)

		character := game.FindByConnectionID("p1").Character
		require.NotNil(t, character)
		assert.Equal(t, Character{Name: "witch", InUse: true, OwnerConnectionID: "p1"}, *character)
	})

	t.Run("AssignCharacter unknown player", func(t *testing.T) {
		game := NewGame(okResetter())

		_, err := game.AssignCharacter("nobody", Character{Name: "ghost"})

		assert.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})

	t.Run("ToggleReady flips readiness", func(t *testing.T) {
		game := newLobby(t, 1, false)

		ready, err := game.ToggleReady("p1")
		require.NoError(t, err)
		assert.True(t, ready)

		ready, err = game.ToggleReady("p1")
		require.NoError(t, err)
		assert.False(t, ready)
	})

	t.Run("AwardPoints adds to scores", func(t *testing.T) {
		game := newLobby(t, 1, false)

		require.NoError(t, game.AwardPoints("p1", 2, 1))
		require.NoError(t, game.AwardPoints("p1", 3, 0))

		player := game.FindByConnectionID("p1")
		assert.Equal(t, 5, player.BaseScore)
		assert.Equal(t, 1, player.KillerScore)
	})

	t.Run("AwardPoints rejects negative points", func(t *testing.T) {
		game := newLobby(t, 1, false)

		assert.ErrorIs(t, game.AwardPoints("p1", -1, 0), apperror.ErrNegativePoints)
		assert.Equal(t, 0, game.FindByConnectionID("p1").BaseScore)
	})

	t.Run("Returned players are copies", func(t *testing.T) {
		game := newLobby(t, 1, true)

		player := game.FindByConnectionID("p1")
		player.BaseScore = 100
		player.Character.Name = "changed"

		assert.Equal(t, 0, game.FindByConnectionID("p1").BaseScore)
		assert.Equal(t, "char1", game.FindByConnectionID("p1").CharacterName())
	})
}

func TestGame_Snapshot(t *testing.T) {
	t.Run("Projects public state", func(t *testing.T) {
		// Given: a started game with one turn played
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))
		_, err := game.RecordTurn("p1", "hide", "safe")
		require.NoError(t, err)

		// When: taking a snapshot
		snapshot := game.Snapshot()

		// Then: names identify host and killer
		assert.Equal(t, "player1", snapshot.Host)
		assert.Equal(t, "player1", snapshot.Killer)
		assert.Equal(t, StateStarted, snapshot.State)
		assert.Equal(t, 1, snapshot.Rotation)
		require.Len(t, snapshot.Players, 3)
		assert.Equal(t, PlayerView{Name: "player1", IsHost: true, Character: "char1", IsKiller: true}, snapshot.Players[0])
		require.Len(t, snapshot.Rounds, 1)
		assert.Equal(t, 1, snapshot.Rounds[0].CurrentTurn)
	})

	t.Run("Encoding is deterministic and hides connection IDs", func(t *testing.T) {
		game := newLobby(t, 3, true)
		require.NoError(t, game.Start("p1"))

		first, err := json.Marshal(game.Snapshot())
		require.NoError(t, err)
		second, err := json.Marshal(game.Snapshot())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotContains(t, string(first), `"p2"`)
		assert.NotContains(t, string(first), "not_yet")
	})
}
