// Package outgunned scores dice pools the way the Outgunned RPG does:
// every group of matching dice is a success, and bigger groups are better.
package outgunned

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

// Tier is the quality of a single success
type Tier string

const (
	TierBasic      Tier = "basic"
	TierCritical   Tier = "critical"
	TierExtreme    Tier = "extreme"
	TierImpossible Tier = "impossible"
	TierJackpot    Tier = "jackpot"
)

var tierOrder = []Tier{TierBasic, TierCritical, TierExtreme, TierImpossible, TierJackpot}

var tierNames = map[Tier]string{
	TierBasic:      "Basic",
	TierCritical:   "Critical",
	TierExtreme:    "Extreme",
	TierImpossible: "Impossible",
	TierJackpot:    "Jackpot!",
}

func (t Tier) rank() int {
	for i, o := range tierOrder {
		if o == t {
			return i
		}
	}
	return -1
}

func (t Tier) Name() string {
	return tierNames[t]
}

// TierFor maps a group size to its tier; groups smaller than two are not successes
func TierFor(size int) (Tier, bool) {
	switch {
	case size < 2:
		return "", false
	case size == 2:
		return TierBasic, true
	case size == 3:
		return TierCritical, true
	case size == 4:
		return TierExtreme, true
	case size == 5:
		return TierImpossible, true
	default:
		return TierJackpot, true
	}
}

// Combo is one group of matching dice
type Combo struct {
	Face  int
	Count int
	Tier  Tier
}

// Result is the scored form of a dice pool
type Result struct {
	Combos []Combo
}

// Evaluate scores a pool. Combos are ordered best first, then by face.
func Evaluate(dice []int) Result {
	counts := make(map[int]int)
	for _, d := range dice {
		counts[d]++
	}

	var combos []Combo
	for face, count := range counts {
		if tier, ok := TierFor(count); ok {
			combos = append(combos, Combo{Face: face, Count: count, Tier: tier})
		}
	}

	sort.Slice(combos, func(i, j int) bool {
		if combos[i].Count != combos[j].Count {
			return combos[i].Count > combos[j].Count
		}
		return combos[i].Face > combos[j].Face
	})

	return Result{Combos: combos}
}

// Successes is the number of combos
func (r Result) Successes() int {
	return len(r.Combos)
}

func (r Result) IsFailure() bool {
	return len(r.Combos) == 0
}

// Count returns how many combos reach exactly tier
func (r Result) Count(tier Tier) int {
	n := 0
	for _, c := range r.Combos {
		if c.Tier == tier {
			n++
		}
	}
	return n
}

// Better reports whether r beats other, comparing from the highest tier down
func (r Result) Better(other Result) bool {
	for i := len(tierOrder) - 1; i >= 0; i-- {
		a, b := r.Count(tierOrder[i]), other.Count(tierOrder[i])
		if a != b {
			return a > b
		}
	}
	return false
}

// withoutWorst drops the lowest combo
func (r Result) withoutWorst() Result {
	if len(r.Combos) == 0 {
		return r
	}
	worst := 0
	for i, c := range r.Combos {
		if c.Tier.rank() < r.Combos[worst].Tier.rank() {
			worst = i
		}
	}

	combos := make([]Combo, 0, len(r.Combos)-1)
	combos = append(combos, r.Combos[:worst]...)
	combos = append(combos, r.Combos[worst+1:]...)
	return Result{Combos: combos}
}

// String summarizes the result, e.g. "1 Critical, 1 Basic"
func (r Result) String() string {
	if r.IsFailure() {
		return "No successes"
	}

	var parts []string
	for i := len(tierOrder) - 1; i >= 0; i-- {
		if n := r.Count(tierOrder[i]); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, tierOrder[i].Name()))
		}
	}
	return strings.Join(parts, ", ")
}

// Keep marks dice that belong to a combo. Follow-ups reroll the rest.
func Keep(dice []int) []bool {
	counts := make(map[int]int)
	for _, d := range dice {
		counts[d]++
	}

	keep := make([]bool, len(dice))
	for i, d := range dice {
		keep[i] = counts[d] >= 2
	}
	return keep
}

// Eligibility is the default rights policy: re-roll and free re-roll are
// always offered; going all in needs a success to risk and a die to throw.
func Eligibility(dice []int) roll.Rights {
	rights := roll.Rights{Reroll: true, FreeReroll: true}

	if !Evaluate(dice).IsFailure() {
		for _, kept := range Keep(dice) {
			if !kept {
				rights.AllIn = true
				break
			}
		}
	}

	return rights
}

// Resolution is the outcome of a follow-up after penalties
type Resolution struct {
	Before   Result
	After    Result
	Final    Result
	Improved bool
	Penalty  string
}

// Resolve applies the follow-up penalty rules:
// a re-roll that does not improve costs one success, going all in without
// improving loses everything, and a free re-roll keeps the better result.
func Resolve(kind roll.Kind, before, after []int) Resolution {
	res := Resolution{
		Before: Evaluate(before),
		After:  Evaluate(after),
	}
	res.Improved = res.After.Better(res.Before)

	if res.Improved {
		res.Final = res.After
		return res
	}

	switch kind {
	case roll.KindReroll:
		res.Final = res.Before.withoutWorst()
		if !res.Before.IsFailure() {
			res.Penalty = "No improvement, you lose one success."
		}
	case roll.KindAllIn:
		res.Final = Result{}
		res.Penalty = "No improvement, you lose everything!"
	default:
		res.Final = res.Before
	}

	return res
}
