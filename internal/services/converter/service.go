// Package converter defines the interface for creature conversion operations
package converter

//go:generate mockgen -destination=mock/mock_service.go -package=convertermock github.com/KirkDiggler/pokemon-5e/internal/services/converter Service

import (
	"context"

	"github.com/KirkDiggler/pokemon-5e/internal/clients/external"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/session"
)

// Level bounds accepted by Generate
const (
	MinLevel = 1
	MaxLevel = 100
)

// Reasons a move selection is rejected
const (
	RejectReasonDuplicate = "already selected"
	RejectReasonFull      = "move set is full"
)

// Service defines the interface for converting a creature into a stat block
type Service interface {
	// Session lifecycle
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	SelectMoves(ctx context.Context, input *SelectMovesInput) (*SelectMovesOutput, error)
	DeselectMove(ctx context.Context, input *DeselectMoveInput) (*DeselectMoveOutput, error)

	// Results
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// Reference lookups against the official 5e data
	CompareMonsters(ctx context.Context, input *CompareMonstersInput) (*CompareMonstersOutput, error)
	DescribeDamageTypes(ctx context.Context, input *DescribeDamageTypesInput) (*DescribeDamageTypesOutput, error)
}

// GenerateInput defines the request for starting a session
type GenerateInput struct {
	Name  string
	Level int
	Shiny bool
}

// GenerateOutput defines the response for starting a session
type GenerateOutput struct {
	Session  *session.Session
	Learnset []pokemon.LearnsetEntry
	Sprite   string // shiny or default front sprite, per the input
}

// SelectMovesInput defines the request for selecting moves. Refs may be move
// names or PokeAPI move URLs.
type SelectMovesInput struct {
	Session *session.Session
	Refs    []string
}

// RejectedMove is a selection that left the session unchanged
type RejectedMove struct {
	Name   string
	Reason string
}

// SelectMovesOutput defines the response for selecting moves
type SelectMovesOutput struct {
	Session  *session.Session
	Selected []*dnd5e.ConvertedMove
	Rejected []RejectedMove
}

// DeselectMoveInput defines the request for removing a move
type DeselectMoveInput struct {
	Session *session.Session
	Name    string
}

// DeselectMoveOutput defines the response for removing a move
type DeselectMoveOutput struct {
	Session *session.Session
	Removed bool
}

// EvaluateInput defines the request for evaluating a session
type EvaluateInput struct {
	Session *session.Session
}

// EvaluateOutput defines the response for evaluating a session
type EvaluateOutput struct {
	Evaluation *session.Evaluation
}

// CompareMonstersInput defines the request for finding comparable monsters
type CompareMonstersInput struct {
	Session *session.Session
}

// CompareMonstersOutput defines the response for finding comparable monsters
type CompareMonstersOutput struct {
	ChallengeRating int
	Monsters        []*external.MonsterData
}

// DescribeDamageTypesInput defines the request for annotating descriptors
type DescribeDamageTypesInput struct {
	Session *session.Session
}

// DescriptorPart is one "/" separated component of a damage descriptor
type DescriptorPart struct {
	Name  string
	Known bool
}

// MoveDamageTypes annotates one selected move's descriptor
type MoveDamageTypes struct {
	Move       string
	Descriptor string
	Parts      []DescriptorPart
}

// DescribeDamageTypesOutput defines the response for annotating descriptors
type DescribeDamageTypesOutput struct {
	Moves []MoveDamageTypes
}
