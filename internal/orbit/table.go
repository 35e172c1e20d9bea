package orbit

// Multiplier scales the base reference distance for one body.
type Multiplier struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
}

// Entry is one resolved orbital radius.
type Entry struct {
	Name   string
	Radius float64
}

// Table maps body names to orbital radii in insertion order. It is read-only once built.
type Table struct {
	entries []Entry
	index   map[string]int
}

// DefaultMultipliers are the orbit factors relative to Earth. The outer planets are pulled
// in from their true ratios to keep the system on screen.
func DefaultMultipliers() []Multiplier {
	return []Multiplier{
		{"Mercury", 0.57},
		{"Venus", 0.72},
		{"Earth", 1.0},
		{"Mars", 1.52},
		{"Jupiter", 3.5},
		{"Saturn", 6.5},
		{"Uranus", 13.0},
		{"Neptune", 20.0},
		{"Pluto", 25.0},
	}
}

// NewTable resolves each multiplier against base. A repeated name overwrites the earlier
// radius and keeps its original position.
func NewTable(base float64, multipliers []Multiplier) *Table {
	t := &Table{index: make(map[string]int, len(multipliers))}
	for _, m := range multipliers {
		r := base * m.Factor
		if i, ok := t.index[m.Name]; ok {
			t.entries[i].Radius = r
			continue
		}
		t.index[m.Name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: m.Name, Radius: r})
	}
	return t
}

// Radius returns the orbital radius for name.
func (t *Table) Radius(name string) (float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.entries[i].Radius, true
}

// Entries returns a copy of the table in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
