package argv

import (
	"slices"
)

// ValueMap holds the resolved values of one Parse call, keyed by canonical
// identifier. Scalars and sequences are stored separately; a key lives in
// exactly one of the two maps.
type ValueMap struct {
	scalars map[string]Value
	lists   map[string][]Value
	kinds   map[string]Kind
	set     map[string]bool // keys supplied on the command line or from the environment
}

func newValueMap(size int) *ValueMap {
	return &ValueMap{
		scalars: make(map[string]Value, size),
		lists:   make(map[string][]Value),
		kinds:   make(map[string]Kind, size),
		set:     make(map[string]bool, size),
	}
}

// Has reports whether name resolved to a value (explicit, default or empty sequence).
func (m *ValueMap) Has(name string) bool {
	if _, ok := m.scalars[name]; ok {
		return true
	}
	_, ok := m.lists[name]
	return ok
}

// IsSet reports whether name was supplied explicitly rather than defaulted.
func (m *ValueMap) IsSet(name string) bool { return m.set[name] }

// Get returns the scalar stored under name.
func (m *ValueMap) Get(name string) (Value, bool) {
	v, ok := m.scalars[name]
	return v, ok
}

// List returns the sequence stored under name.
func (m *ValueMap) List(name string) ([]Value, bool) {
	l, ok := m.lists[name]
	return l, ok
}

// Bool returns the boolean stored under name, or false.
func (m *ValueMap) Bool(name string) bool { return m.scalars[name].Bool() }

// Number returns the number stored under name, or 0.
func (m *ValueMap) Number(name string) float64 { return m.scalars[name].Number() }

// Int returns the number stored under name truncated to int.
func (m *ValueMap) Int(name string) int { return int(m.scalars[name].Number()) }

// Text returns the string stored under name, or "".
func (m *ValueMap) Text(name string) string { return m.scalars[name].Text() }

// Strings returns the string sequence stored under name.
func (m *ValueMap) Strings(name string) []string {
	l := m.lists[name]
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = v.Text()
	}
	return out
}

// Numbers returns the numeric sequence stored under name.
func (m *ValueMap) Numbers(name string) []float64 {
	l := m.lists[name]
	out := make([]float64, len(l))
	for i, v := range l {
		out[i] = v.Number()
	}
	return out
}

// Bools returns the boolean sequence stored under name.
func (m *ValueMap) Bools(name string) []bool {
	l := m.lists[name]
	out := make([]bool, len(l))
	for i, v := range l {
		out[i] = v.Bool()
	}
	return out
}

// Keys returns every resolved key in sorted order.
func (m *ValueMap) Keys() []string {
	keys := make([]string, 0, len(m.scalars)+len(m.lists))
	for k := range m.scalars {
		keys = append(keys, k)
	}
	for k := range m.lists {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Map returns the values as plain Go data: bool, float64 and string for
// scalars, []bool, []float64 and []string for sequences.
func (m *ValueMap) Map() map[string]any {
	out := make(map[string]any, len(m.scalars)+len(m.lists))
	for k, v := range m.scalars {
		out[k] = v.Any()
	}
	for k := range m.lists {
		switch m.kinds[k] {
		case KindBool:
			out[k] = m.Bools(k)
		case KindNumber:
			out[k] = m.Numbers(k)
		default:
			out[k] = m.Strings(k)
		}
	}
	return out
}

// accumulator builds a ValueMap while tokens are processed.
type accumulator struct {
	values *ValueMap
}

func newAccumulator(size int) *accumulator {
	return &accumulator{values: newValueMap(size)}
}

// add records one occurrence. Multi-valued keys append; scalars overwrite.
func (a *accumulator) add(name string, kind Kind, multiple bool, v Value) {
	m := a.values
	m.kinds[name] = kind
	m.set[name] = true
	if multiple {
		m.lists[name] = append(m.lists[name], v)
		return
	}
	m.scalars[name] = v
}

// present reports whether name already received a value.
func (a *accumulator) present(name string) bool {
	return a.values.set[name]
}

// fill resolves an unset key: multi-valued keys become an empty sequence,
// scalars take their default when one is declared.
func (a *accumulator) fill(name string, kind Kind, multiple, hasDefault bool, def Value) {
	m := a.values
	if m.set[name] {
		return
	}
	m.kinds[name] = kind
	if multiple {
		if _, ok := m.lists[name]; !ok {
			m.lists[name] = []Value{}
		}
		return
	}
	if hasDefault {
		m.scalars[name] = def
	}
}
