package catalog

import "slices"

// Option is one selectable card in the interests or domains grid.
type Option struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// Group holds the option lists for a single field of study. Any list
// may be empty, in which case lookups fall back to the default group.
type Group struct {
	Interests []Option `yaml:"interests"`
	Domains   []Option `yaml:"domains"`
	Skills    []string `yaml:"skills"`
}

// Catalog maps field-of-study names to option groups, with one required
// default group for unrecognized fields. A Catalog is read-only once built.
type Catalog struct {
	interests map[string][]Option
	domains   map[string][]Option
	skills    map[string][]string
	fallback  Group
}

// InterestOptions returns the interest options for field, or the default
// list when field is empty or unknown.
func (c *Catalog) InterestOptions(field string) []Option {
	if opts, ok := c.interests[field]; ok && len(opts) > 0 {
		return slices.Clone(opts)
	}
	return slices.Clone(c.fallback.Interests)
}

// DomainOptions returns the domain options for field, or the default list.
func (c *Catalog) DomainOptions(field string) []Option {
	if opts, ok := c.domains[field]; ok && len(opts) > 0 {
		return slices.Clone(opts)
	}
	return slices.Clone(c.fallback.Domains)
}

// Skills returns the skill names rated in the Skills section for field.
func (c *Catalog) Skills(field string) []string {
	if s, ok := c.skills[field]; ok && len(s) > 0 {
		return slices.Clone(s)
	}
	return slices.Clone(c.fallback.Skills)
}

// Fields returns every field name with at least one dedicated list, sorted.
func (c *Catalog) Fields() []string {
	seen := make(map[string]bool)
	for f := range c.interests {
		seen[f] = true
	}
	for f := range c.domains {
		seen[f] = true
	}
	for f := range c.skills {
		seen[f] = true
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// HasInterest reports whether id is a valid interest option for field.
func (c *Catalog) HasInterest(field, id string) bool {
	return containsID(c.InterestOptions(field), id)
}

// HasDomain reports whether id is a valid domain option for field.
func (c *Catalog) HasDomain(field, id string) bool {
	return containsID(c.DomainOptions(field), id)
}

func containsID(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

var builtin = newBuiltin()

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

// InterestOptions looks up field in the builtin catalog.
func InterestOptions(field string) []Option {
	return builtin.InterestOptions(field)
}

// DomainOptions looks up field in the builtin catalog.
func DomainOptions(field string) []Option {
	return builtin.DomainOptions(field)
}

// Skills looks up field in the builtin catalog.
func Skills(field string) []string {
	return builtin.Skills(field)
}

func newBuiltin() *Catalog {
	return &Catalog{
		interests: builtinInterests,
		domains:   builtinDomains,
		skills:    builtinSkills,
		fallback: Group{
			Interests: defaultInterests,
			Domains:   defaultDomains,
			Skills:    defaultSkills,
		},
	}
}
