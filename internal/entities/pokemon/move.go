package pokemon

import "strings"

// Damage classes
const (
	DamageClassPhysical = "physical"
	DamageClassSpecial  = "special"
	DamageClassStatus   = "status"
)

// Move is the detail record for a single move. Power and Accuracy are nil
// for moves that have none.
type Move struct {
	Name        string `json:"name"`
	Power       *int   `json:"power,omitempty"`
	Accuracy    *int   `json:"accuracy,omitempty"`
	Type        string `json:"type"`
	DamageClass string `json:"damage_class"`
}

// IsStatus reports whether the move deals no damage
func (m *Move) IsStatus() bool {
	return m.DamageClass == DamageClassStatus
}

// DisplayName turns a PokeAPI slug into the name shown to the game master,
// e.g. "thunder-shock" becomes "thunder shock".
func DisplayName(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
