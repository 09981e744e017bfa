package colorgen

// Property is a single CSS property/value pair.
type Property struct {
	Name  string
	Value string
}

// Declaration is an ordered declaration block.
type Declaration []Property

// Get returns the value of the named property.
func (d Declaration) Get(name string) (string, bool) {
	for _, p := range d {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Map returns the declaration as a property -> value map.
func (d Declaration) Map() map[string]string {
	m := make(map[string]string, len(d))
	for _, p := range d {
		m[p.Name] = p.Value
	}
	return m
}

// Rule is one generated utility.
type Rule struct {
	Selector    string      // `.bg-primary-500\/50`
	ClassName   string      // "bg-primary-500/50"
	Declaration Declaration // { background-color: rgb(... / 0.5) }
}

// Utilities maps selectors to declarations, remembering insertion order.
// Setting an existing selector replaces its rule in place.
type Utilities struct {
	order []string
	rules map[string]Rule
}

// NewUtilities returns an empty mapping.
func NewUtilities() *Utilities {
	return &Utilities{rules: make(map[string]Rule)}
}

// Set inserts or overwrites the rule for r.Selector.
func (u *Utilities) Set(r Rule) {
	if _, exists := u.rules[r.Selector]; !exists {
		u.order = append(u.order, r.Selector)
	}
	u.rules[r.Selector] = r
}

// Get returns the rule for selector.
func (u *Utilities) Get(selector string) (Rule, bool) {
	r, ok := u.rules[selector]
	return r, ok
}

// Len returns the number of distinct selectors.
func (u *Utilities) Len() int {
	return len(u.order)
}

// Rules returns the rules in insertion order.
func (u *Utilities) Rules() []Rule {
	rules := make([]Rule, 0, len(u.order))
	for _, sel := range u.order {
		rules = append(rules, u.rules[sel])
	}
	return rules
}

// Merge copies every rule of other into u, later rules winning.
func (u *Utilities) Merge(other *Utilities) {
	for _, r := range other.Rules() {
		u.Set(r)
	}
}

// Filter returns a new mapping holding only the rules keep accepts.
func (u *Utilities) Filter(keep func(Rule) bool) *Utilities {
	out := NewUtilities()
	for _, r := range u.Rules() {
		if keep(r) {
			out.Set(r)
		}
	}
	return out
}

// Map returns the plain selector -> property -> value form handed to hosts
// that do not care about ordering.
func (u *Utilities) Map() map[string]map[string]string {
	m := make(map[string]map[string]string, len(u.order))
	for sel, r := range u.rules {
		m[sel] = r.Declaration.Map()
	}
	return m
}

// OpacitySteps returns the modifier steps 5, 10, ..., 100.
func OpacitySteps() []int {
	steps := make([]int, 0, 20)
	for o := 5; o <= 100; o += 5 {
		steps = append(steps, o)
	}
	return steps
}

// BuildUtilities generates every kind at full opacity and at each opacity
// step for every shade of the palette.
func BuildUtilities(color string, palette Palette) *Utilities {
	u := NewUtilities()
	steps := OpacitySteps()

	for _, shade := range palette {
		for _, kind := range Kinds {
			u.Set(buildRule(kind, color, shade, 0))
			for _, opacity := range steps {
				u.Set(buildRule(kind, color, shade, opacity))
			}
		}
	}
	return u
}

func buildRule(kind Kind, color string, shade Shade, opacity int) Rule {
	return Rule{
		Selector:    kind.Selector(color, shade.Label, opacity),
		ClassName:   kind.ClassName(color, shade.Label, opacity),
		Declaration: kind.Declaration(shade, opacity),
	}
}
