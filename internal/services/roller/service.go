package roller

//go:generate mockgen -destination=mock/mock_service.go -package=mockroller -source=service.go

import (
	"errors"
	"log"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
)

// Service is the only component that changes a roll history
type Service interface {
	// Roll starts a session by throwing count dice
	Roll(count int) (*roll.History, error)

	// Apply performs a follow-up; it fails with an illegal transition when
	// the right is gone or the session is already terminal
	Apply(h *roll.History, kind roll.Kind) error

	Reroll(h *roll.History) error
	FreeReroll(h *roll.History) error
	AllIn(h *roll.History) error
}

// ServiceConfig holds the dependencies of the roller
type ServiceConfig struct {
	DiceRoller  dice.Roller      // Required
	Eligibility roll.Eligibility // Optional, every right is granted if nil
	Keep        roll.KeepPolicy  // Optional, every die is rerolled if nil
	Events      *events.Bus      // Optional, transitions are not announced if nil
}

func (c *ServiceConfig) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if c.DiceRoller == nil {
		return errors.New("dice roller is required")
	}
	return nil
}

type service struct {
	diceRoller  dice.Roller
	eligibility roll.Eligibility
	keep        roll.KeepPolicy
	events      *events.Bus
}

// NewService creates a roller service
func NewService(cfg *ServiceConfig) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	svc := &service{
		diceRoller:  cfg.DiceRoller,
		eligibility: cfg.Eligibility,
		keep:        cfg.Keep,
		events:      cfg.Events,
	}
	if svc.eligibility == nil {
		svc.eligibility = roll.AllRights
	}
	if svc.keep == nil {
		svc.keep = roll.KeepNone
	}

	return svc, nil
}

func (s *service) Roll(count int) (*roll.History, error) {
	if count < 1 || count > roll.MaxDice {
		return nil, boterr.InvalidArgumentf("you can roll between 1 and %d dice", roll.MaxDice).
			WithMeta("count", count)
	}

	values, err := dice.RollD6(s.diceRoller, count)
	if err != nil {
		return nil, err
	}

	h := roll.New()
	if err := h.RecordInitial(values, s.eligibility(values)); err != nil {
		return nil, err
	}

	s.emit(&events.RollEvent{
		Type:   events.EventTypeRolled,
		Kind:   roll.KindRoll,
		Dice:   values,
		Rights: h.Rights(),
	})
	return h, nil
}

func (s *service) Apply(h *roll.History, kind roll.Kind) error {
	if h == nil {
		return boterr.InvalidArgument("history is required")
	}
	if !kind.IsFollowUp() {
		return boterr.InvalidArgumentf("%q is not a follow-up action", kind)
	}
	if !h.Can(kind) {
		return boterr.IllegalTransitionf("%s is no longer available", kind.Label()).
			WithMeta("kind", kind.String())
	}

	initial, _ := h.Initial()
	keep := s.keep(initial.Dice)
	if len(keep) != len(initial.Dice) {
		return boterr.Internalf("keep policy marked %d dice, roll has %d", len(keep), len(initial.Dice))
	}

	next := append([]int(nil), initial.Dice...)
	var reroll []int
	for i, kept := range keep {
		if !kept {
			reroll = append(reroll, i)
		}
	}

	if len(reroll) > 0 {
		values, err := dice.RollD6(s.diceRoller, len(reroll))
		if err != nil {
			return err
		}
		for j, idx := range reroll {
			next[idx] = values[j]
		}
	}

	if err := h.RecordFollowUp(kind, next); err != nil {
		return err
	}

	s.emit(&events.RollEvent{
		Type:   events.EventTypeFollowUpApplied,
		Kind:   kind,
		Before: initial.Dice,
		Dice:   next,
		Rights: h.Rights(),
	})
	return nil
}

// emit announces a transition that already happened; a failing listener
// cannot undo it
func (s *service) emit(event *events.RollEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(event); err != nil {
		log.Printf("[Roll] Event %s not fully handled: %v", event.Type, err)
	}
}

func (s *service) Reroll(h *roll.History) error {
	return s.Apply(h, roll.KindReroll)
}

func (s *service) FreeReroll(h *roll.History) error {
	return s.Apply(h, roll.KindFreeReroll)
}

func (s *service) AllIn(h *roll.History) error {
	return s.Apply(h, roll.KindAllIn)
}
