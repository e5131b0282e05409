package dice

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

//go:embed dicesets.yaml
var builtinSets []byte

type setDefinition struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Faces       []string `yaml:"faces"`
}

type catalogDocument struct {
	Default string          `yaml:"default"`
	Sets    []setDefinition `yaml:"sets"`
}

// Catalog is the set of dice sets a channel may choose from.
// It is built once at startup and read-only afterwards.
type Catalog struct {
	sets        map[string]DiceSet
	order       []string
	defaultName string
}

// BuiltinCatalog returns the catalog of dice sets shipped with the bot
func BuiltinCatalog() *Catalog {
	c, err := LoadCatalog(builtinSets)
	if err != nil {
		panic(fmt.Sprintf("builtin dice sets: %v", err))
	}
	return c
}

// LoadCatalog builds a catalog from one or more YAML documents.
// Later documents may add sets and override the default; redefining a name is an error.
func LoadCatalog(docs ...[]byte) (*Catalog, error) {
	c := &Catalog{
		sets: make(map[string]DiceSet),
	}

	for i, data := range docs {
		var doc catalogDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, boterr.WrapWithCode(err, boterr.CodeInvalidArgument, fmt.Sprintf("dice set document %d", i))
		}

		for _, def := range doc.Sets {
			set, err := newDiceSet(def)
			if err != nil {
				return nil, err
			}
			if _, exists := c.sets[set.name]; exists {
				return nil, boterr.InvalidArgumentf("dice set %s defined twice", set.name)
			}
			c.sets[set.name] = set
			c.order = append(c.order, set.name)
		}

		if doc.Default != "" {
			c.defaultName = doc.Default
		}
	}

	if len(c.order) == 0 {
		return nil, boterr.InvalidArgument("no dice sets defined")
	}
	if c.defaultName == "" {
		c.defaultName = c.order[0]
	}
	if _, ok := c.sets[c.defaultName]; !ok {
		return nil, boterr.InvalidArgumentf("default dice set %s is not defined", c.defaultName)
	}

	return c, nil
}

// LoadCatalogFile loads the builtin sets plus any sets defined in path
func LoadCatalogFile(path string) (*Catalog, error) {
	if path == "" {
		return BuiltinCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to read dice sets from %s", path)
	}

	return LoadCatalog(builtinSets, data)
}

// Parse resolves a canonical dice set string. Unknown names are rejected.
func (c *Catalog) Parse(s string) (DiceSet, error) {
	if err := validateName(s); err != nil {
		return DiceSet{}, err
	}

	set, ok := c.sets[s]
	if !ok {
		return DiceSet{}, boterr.InvalidArgumentf("unknown dice set %q", s).
			WithMeta("valid", c.Names())
	}
	return set, nil
}

// Default is the set used by channels with no configuration
func (c *Catalog) Default() DiceSet {
	return c.sets[c.defaultName]
}

// WithDefault returns a copy of the catalog whose default is name
func (c *Catalog) WithDefault(name string) (*Catalog, error) {
	if _, err := c.Parse(name); err != nil {
		return nil, err
	}

	return &Catalog{
		sets:        c.sets,
		order:       c.order,
		defaultName: name,
	}, nil
}

// Names lists the canonical names in definition order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Sets lists the dice sets in definition order
func (c *Catalog) Sets() []DiceSet {
	out := make([]DiceSet, len(c.order))
	for i, name := range c.order {
		out[i] = c.sets[name]
	}
	return out
}
