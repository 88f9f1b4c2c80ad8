package pattern

import (
	_ "embed"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"sparselife/src/life"
)

//go:embed patterns.yaml
var catalogYAML []byte

//Pattern is a named seed shape from the built-in catalog
//identity is the ID; Cells is the decoded RLE body
type Pattern struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	RLE         string `yaml:"rle"`

	Cells life.CellSet `yaml:"-"`
}

//Catalog maps pattern identifiers to their live cell sets and generates
//random seed patterns for unknown or absent identifiers
type Catalog struct {
	byID  map[string]*Pattern
	order []*Pattern
	rng   *rand.Rand
}

//randomRegionDiv and randomFillDiv shape the random seed: cells are confined
//to a gridSize/5 sub-region and roughly a third of that area is filled,
//which concentrates the initial activity once the set is centered
const (
	randomRegionDiv = 5
	randomFillDiv   = 3
)

//NewCatalog builds the catalog from the embedded pattern file, decoding
//every entry's RLE body up front
//rng drives random pattern generation; pass a seeded generator for
//reproducible output or nil for a time-seeded one
func NewCatalog(rng *rand.Rand) (*Catalog, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var file struct {
		Patterns []*Pattern `yaml:"patterns"`
	}
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, errors.Wrap(err, "parsing pattern catalog")
	}

	c := &Catalog{
		byID:  make(map[string]*Pattern, len(file.Patterns)),
		order: file.Patterns,
		rng:   rng,
	}
	for _, p := range file.Patterns {
		cells, err := DecodeRLE(p.RLE)
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %q", p.ID)
		}
		p.Cells = cells
		c.byID[p.ID] = p
	}
	return c, nil
}

//Lookup finds a pattern by ID, or by name ignoring case
func (c *Catalog) Lookup(idOrName string) (Pattern, bool) {
	if p, ok := c.byID[idOrName]; ok {
		return *p, true
	}
	for _, p := range c.order {
		if strings.EqualFold(p.Name, idOrName) {
			return *p, true
		}
	}
	return Pattern{}, false
}

//Patterns lists the catalog entries in file order
func (c *Catalog) Patterns() []Pattern {
	list := make([]Pattern, len(c.order))
	for i, p := range c.order {
		list[i] = *p
	}
	return list
}

//Get returns the cells of the identified pattern
//an empty or unknown identifier falls back to random generation instead of
//failing: a stale pattern name in a hand-edited invocation still seeds a grid
func (c *Catalog) Get(idOrName string, gridSize int) life.CellSet {
	if idOrName == "" {
		return c.Random(gridSize)
	}
	if p, ok := c.Lookup(idOrName); ok {
		return p.Cells.Clone()
	}
	return c.Random(gridSize)
}

//Random generates a seed confined to a gridSize/5 sub-region per axis,
//drawing size*size/3 independent uniform coordinates
//duplicate draws collapse in the set, so the realized count may be lower
func (c *Catalog) Random(gridSize int) life.CellSet {
	cells := life.NewCellSet()
	size := gridSize / randomRegionDiv
	if size <= 0 {
		return cells
	}
	target := size * size / randomFillDiv
	for i := 0; i < target; i++ {
		cells.Add(life.Point{X: c.rng.Intn(size), Y: c.rng.Intn(size)})
	}
	return cells
}
