package roll

// Eligibility decides which rights an initial roll grants
type Eligibility func(dice []int) Rights

// KeepPolicy marks the dice a follow-up keeps; unmarked dice are rolled again
type KeepPolicy func(dice []int) []bool

// AllRights grants every right regardless of the dice
func AllRights(_ []int) Rights {
	return Rights{Reroll: true, FreeReroll: true, AllIn: true}
}

// KeepNone rerolls every die
func KeepNone(dice []int) []bool {
	return make([]bool, len(dice))
}
