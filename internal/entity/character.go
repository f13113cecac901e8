package entity

// Character is an entry of the character catalog. It is exclusive: one owner at a time.
type Character struct {
	Name              string `json:"name"`
	InUse             bool   `json:"in_use"`
	OwnerConnectionID string `json:"-"`
}
