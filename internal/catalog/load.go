package catalog

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog override.
//
//	default:
//	  interests: [{id: problem, label: Problem Solving, icon: "🧩"}]
//	fields:
//	  Nursing:
//	    skills: [Patient Care, Pharmacology]
type File struct {
	Default *Group           `yaml:"default"`
	Fields  map[string]Group `yaml:"fields"`
}

// Load reads a YAML override file and merges it over the builtin catalog.
// Lists present in the file replace the builtin list for that field; absent
// lists keep the builtin data.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML override data merged over the builtin one.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		interests: maps.Clone(builtinInterests),
		domains:   maps.Clone(builtinDomains),
		skills:    maps.Clone(builtinSkills),
		fallback:  builtin.fallback,
	}

	if f.Default != nil {
		if len(f.Default.Interests) > 0 {
			c.fallback.Interests = f.Default.Interests
		}
		if len(f.Default.Domains) > 0 {
			c.fallback.Domains = f.Default.Domains
		}
		if len(f.Default.Skills) > 0 {
			c.fallback.Skills = f.Default.Skills
		}
	}

	for field, g := range f.Fields {
		if field == "" {
			return nil, fmt.Errorf("catalog field name must not be empty")
		}
		if len(g.Interests) > 0 {
			c.interests[field] = g.Interests
		}
		if len(g.Domains) > 0 {
			c.domains[field] = g.Domains
		}
		if len(g.Skills) > 0 {
			c.skills[field] = g.Skills
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.fallback.Interests) == 0 || len(c.fallback.Domains) == 0 || len(c.fallback.Skills) == 0 {
		return fmt.Errorf("catalog default group must define interests, domains and skills")
	}
	check := func(kind, field string, opts []Option) error {
		seen := make(map[string]bool, len(opts))
		for _, o := range opts {
			if o.ID == "" {
				return fmt.Errorf("%s option for %q has empty id", kind, field)
			}
			if seen[o.ID] {
				return fmt.Errorf("duplicate %s option %q for %q", kind, o.ID, field)
			}
			seen[o.ID] = true
		}
		return nil
	}
	for field, opts := range c.interests {
		if err := check("interest", field, opts); err != nil {
			return err
		}
	}
	for field, opts := range c.domains {
		if err := check("domain", field, opts); err != nil {
			return err
		}
	}
	if err := check("interest", "default", c.fallback.Interests); err != nil {
		return err
	}
	return check("domain", "default", c.fallback.Domains)
}
