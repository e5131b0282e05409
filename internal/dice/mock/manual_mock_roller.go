package mockdice

import (
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller with scripted results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a roller that returns rolls in order
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues one more result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append([]int{}, rolls...)
	m.rollIndex = 0
}

// Remaining reports how many queued results have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) next(size int) (int, error) {
	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, size)
	}
	m.rollIndex++
	return roll, nil
}

// Roll returns the next scripted result
func (m *ManualMockRoller) Roll(size int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next(size)
}

// RollN returns the next count scripted results
func (m *ManualMockRoller) RollN(count, size int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		roll, err := m.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}
