package entity

// KillerRotation tracks which connected players have not yet held the killer role in the
// current match. Candidates are kept in join order; the earliest joined candidate is picked.
type KillerRotation struct {
	notYetKiller []string
}

func NewKillerRotation() *KillerRotation {
	return &KillerRotation{}
}

func (that *KillerRotation) Add(connectionID string) {
	if that.Contains(connectionID) {
		return
	}

	that.notYetKiller = append(that.notYetKiller, connectionID)
}

func (that *KillerRotation) Remove(connectionID string) {
	for i, id := range that.notYetKiller {
		if id == connectionID {
			that.notYetKiller = append(that.notYetKiller[:i], that.notYetKiller[i+1:]...)
			return
		}
	}
}

func (that *KillerRotation) Contains(connectionID string) bool {
	for _, id := range that.notYetKiller {
		if id == connectionID {
			return true
		}
	}

	return false
}

func (that *KillerRotation) Len() int {
	return len(that.notYetKiller)
}

// Candidates returns a copy of the connection IDs that have not been killer yet.
func (that *KillerRotation) Candidates() []string {
	out := make([]string, len(that.notYetKiller))
	copy(out, that.notYetKiller)

	return out
}

func (that *KillerRotation) Reset() {
	that.notYetKiller = nil
}

// Next selects the next killer among players (given in join order). Players that were never
// killer win; with none left, the whole connected set is eligible. The lowest join order wins
// in both cases. The selected player is marked and removed from the candidates.
func (that *KillerRotation) Next(players []*Player) *Player {
	var selected *Player

	if that.Len() > 0 {
		for _, player := range players {
			if that.Contains(player.ConnectionID) {
				selected = player
				break
			}
		}
	}

	if selected == nil && len(players) > 0 {
		selected = players[0]
	}

	if selected == nil {
		return nil
	}

	selected.WasKiller = true
	that.Remove(selected.ConnectionID)

	return selected
}
