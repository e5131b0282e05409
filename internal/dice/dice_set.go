package dice

import (
	"regexp"
	"strings"
	"unicode"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Sides is the number of faces on every die the bot rolls
const Sides = 6

// MaxNameLength keeps dice set names short enough for button custom IDs
const MaxNameLength = 16

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// DiceSet describes how die values are drawn in a channel.
// The zero value is not usable; obtain sets from a Catalog.
type DiceSet struct {
	name        string
	label       string
	description string
	faces       [Sides]string
}

// String returns the canonical short form used in storage and custom IDs
func (d DiceSet) String() string {
	return d.name
}

func (d DiceSet) Name() string {
	return d.name
}

func (d DiceSet) Label() string {
	return d.label
}

func (d DiceSet) Description() string {
	return d.description
}

// Faces returns a copy of the glyphs for values 1..6
func (d DiceSet) Faces() []string {
	out := make([]string, Sides)
	copy(out, d.faces[:])
	return out
}

// Face returns the glyph for a die value
func (d DiceSet) Face(value int) (string, error) {
	if value < 1 || value > Sides {
		return "", boterr.InvalidArgumentf("die value %d out of range", value)
	}
	return d.faces[value-1], nil
}

// Value returns the die value drawn by glyph
func (d DiceSet) Value(glyph string) (int, error) {
	for i, face := range d.faces {
		if face == glyph {
			return i + 1, nil
		}
	}
	return 0, boterr.InvalidArgumentf("%q is not a face of dice set %s", glyph, d.name)
}

// Render draws dice values as glyphs separated by single spaces
func (d DiceSet) Render(values []int) (string, error) {
	glyphs := make([]string, len(values))
	for i, v := range values {
		face, err := d.Face(v)
		if err != nil {
			return "", err
		}
		glyphs[i] = face
	}
	return strings.Join(glyphs, " "), nil
}

// Read is the inverse of Render
func (d DiceSet) Read(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, boterr.InvalidArgument("no dice to read")
	}

	values := make([]int, len(fields))
	for i, glyph := range fields {
		v, err := d.Value(glyph)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func newDiceSet(def setDefinition) (DiceSet, error) {
	if err := validateName(def.Name); err != nil {
		return DiceSet{}, err
	}
	if len(def.Faces) != Sides {
		return DiceSet{}, boterr.InvalidArgumentf("dice set %s needs %d faces, got %d", def.Name, Sides, len(def.Faces))
	}

	set := DiceSet{
		name:        def.Name,
		label:       def.Label,
		description: def.Description,
	}
	if set.label == "" {
		set.label = def.Name
	}

	seen := make(map[string]bool, Sides)
	for i, face := range def.Faces {
		if face == "" || strings.IndexFunc(face, unicode.IsSpace) >= 0 {
			return DiceSet{}, boterr.InvalidArgumentf("dice set %s: face %d must be a non-empty glyph without spaces", def.Name, i+1)
		}
		if seen[face] {
			return DiceSet{}, boterr.InvalidArgumentf("dice set %s: face %q is used twice", def.Name, face)
		}
		seen[face] = true
		set.faces[i] = face
	}

	return set, nil
}

func validateName(name string) error {
	if len(name) == 0 || len(name) > MaxNameLength || !namePattern.MatchString(name) {
		return boterr.InvalidArgumentf("invalid dice set name %q", name)
	}
	return nil
}
