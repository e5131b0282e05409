package events

import (
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

// EventType represents the type of roll event
type EventType string

// Event is the base interface for all roll events
type Event interface {
	GetType() EventType
}

// RollEvent describes one transition of a roll session after it happened
type RollEvent struct {
	Type EventType
	Kind roll.Kind

	// Before is the initial roll for a follow-up, empty for a new roll
	Before []int
	Dice   []int
	Rights roll.Rights
}

func (e *RollEvent) GetType() EventType { return e.Type }
