package argv

// checkConditions runs the predicates in declaration order and reports the
// first one that fails. Condition i fails with code ConditionCodeBase+i.
func checkConditions(conds []Condition, values *ValueMap) *ParseError {
	for i, c := range conds {
		if c.Check(values) {
			continue
		}
		err := newParseError(ErrorTypeConditionFailed, c.Name, "", "condition failed: "+c.Name)
		err.Code = ConditionCodeBase + i
		return err
	}
	return nil
}

// Ready-made predicates for common cross-option constraints. Each counts a
// name as present when it was supplied explicitly (see ValueMap.IsSet).

func countSet(m *ValueMap, names []string) int {
	n := 0
	for _, name := range names {
		if m.IsSet(name) {
			n++
		}
	}
	return n
}

// MutuallyExclusive holds when at most one of names was supplied.
func MutuallyExclusive(names ...string) func(*ValueMap) bool {
	return func(m *ValueMap) bool { return countSet(m, names) <= 1 }
}

// ExactlyOne holds when exactly one of names was supplied.
func ExactlyOne(names ...string) func(*ValueMap) bool {
	return func(m *ValueMap) bool { return countSet(m, names) == 1 }
}

// AtLeastOne holds when one or more of names was supplied.
func AtLeastOne(names ...string) func(*ValueMap) bool {
	return func(m *ValueMap) bool { return countSet(m, names) >= 1 }
}

// AllOrNone holds when either every name or none of them was supplied.
func AllOrNone(names ...string) func(*ValueMap) bool {
	return func(m *ValueMap) bool {
		n := countSet(m, names)
		return n == 0 || n == len(names)
	}
}

// Requires holds when name is absent or every one of deps was supplied too.
func Requires(name string, deps ...string) func(*ValueMap) bool {
	return func(m *ValueMap) bool {
		if !m.IsSet(name) {
			return true
		}
		return countSet(m, deps) == len(deps)
	}
}

// InRange holds when every numeric value under name lies in [lo, hi].
// An unresolved name satisfies the predicate.
func InRange(name string, lo, hi float64) func(*ValueMap) bool {
	return func(m *ValueMap) bool {
		if v, ok := m.Get(name); ok {
			return v.Kind() == KindNumber && v.Number() >= lo && v.Number() <= hi
		}
		l, _ := m.List(name)
		for _, v := range l {
			if v.Number() < lo || v.Number() > hi {
				return false
			}
		}
		return true
	}
}

// OneOf holds when every value under name, in its textual form, is one of allowed.
func OneOf(name string, allowed ...string) func(*ValueMap) bool {
	ok := func(v Value) bool {
		s := v.String()
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}
	return func(m *ValueMap) bool {
		if v, found := m.Get(name); found {
			return ok(v)
		}
		l, _ := m.List(name)
		for _, v := range l {
			if !ok(v) {
				return false
			}
		}
		return true
	}
}
