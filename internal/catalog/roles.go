package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Role is one named target job profile. Required skills are grouped (e.g.
// "languages", "tools"); each skill carries an integer importance weight
// (1 = recommended, 2 = important, 3 = core).
type Role struct {
	Name        string                    `json:"-" validate:"required"`
	Description string                    `json:"description"`
	Required    map[string]map[string]int `json:"required_skills" validate:"required,min=1,dive,min=1,dive,gte=1"`
	NiceToHave  []string                  `json:"nice_to_have"`
	MinCGPA     float64                   `json:"min_cgpa" validate:"gte=0,lte=10"`
	DSAWeight   float64                   `json:"dsa_weight" validate:"gt=0,lte=1"`
}

// RequiredSkill is one flattened requirement of a role.
type RequiredSkill struct {
	Skill  string
	Weight int
}

// FlattenedRequirements collapses the grouped requirement map into a single
// ordered list. When a skill appears in multiple groups the maximum weight
// wins. The order (groups sorted by name, skills sorted within each group,
// first occurrence kept) is deterministic across runs.
func (r *Role) FlattenedRequirements() []RequiredSkill {
	weights := make(map[string]int)
	var order []string

	groups := make([]string, 0, len(r.Required))
	for g := range r.Required {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		skills := make([]string, 0, len(r.Required[g]))
		for s := range r.Required[g] {
			skills = append(skills, s)
		}
		sort.Strings(skills)
		for _, s := range skills {
			skill := strings.ToLower(strings.TrimSpace(s))
			w := r.Required[g][s]
			if existing, ok := weights[skill]; ok {
				if w > existing {
					weights[skill] = w
				}
				continue
			}
			weights[skill] = w
			order = append(order, skill)
		}
	}

	flat := make([]RequiredSkill, 0, len(order))
	for _, skill := range order {
		flat = append(flat, RequiredSkill{Skill: skill, Weight: weights[skill]})
	}
	return flat
}

// NiceToHaveSkills returns the role's nice-to-have list, lowercased.
func (r *Role) NiceToHaveSkills() []string {
	out := make([]string, 0, len(r.NiceToHave))
	for _, s := range r.NiceToHave {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

// Catalog is the ordered role catalogue. Iteration order is the order roles
// appear in the source document, which makes tie-breaking in role matching
// deterministic for a given catalogue file.
type Catalog struct {
	roles []Role
	index map[string]int
}

// LoadCatalog parses and validates a role catalogue document. The top-level
// JSON object maps role name to role definition; declaration order is
// preserved.
func LoadCatalog(data []byte) (*Catalog, error) {
	names, err := orderedKeys(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role catalogue JSON: %w", err)
	}
	var raw map[string]Role
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse role catalogue JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("role catalogue has no roles")
	}

	validate := validator.New()
	cat := &Catalog{index: make(map[string]int, len(raw))}
	for _, name := range names {
		role := raw[name]
		role.Name = name
		if role.DSAWeight == 0 {
			role.DSAWeight = defaultDSAWeight
		}
		if role.MinCGPA == 0 {
			role.MinCGPA = defaultMinCGPA
		}
		if err := validate.Struct(&role); err != nil {
			return nil, fmt.Errorf("invalid role %q: %w", name, err)
		}
		if _, dup := cat.index[strings.ToLower(name)]; dup {
			return nil, fmt.Errorf("duplicate role name %q", name)
		}
		cat.index[strings.ToLower(name)] = len(cat.roles)
		cat.roles = append(cat.roles, role)
	}
	return cat, nil
}

const (
	defaultMinCGPA   = 6.0
	defaultDSAWeight = 0.2
)

// LoadCatalogFile loads a role catalogue from a JSON file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role catalogue file %s: %w", path, err)
	}
	return LoadCatalog(data)
}

// Roles returns all roles in catalogue order.
func (c *Catalog) Roles() []Role {
	return c.roles
}

// Resolve looks up a role by name, case-insensitively. The returned role
// carries its canonical catalogue name.
func (c *Catalog) Resolve(name string) (Role, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Role{}, false
	}
	return c.roles[i], true
}

// Len returns the number of roles in the catalogue.
func (c *Catalog) Len() int {
	return len(c.roles)
}

// Names returns role names in catalogue order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.roles))
	for _, r := range c.roles {
		names = append(names, r.Name)
	}
	return names
}

// orderedKeys extracts the top-level object keys of a JSON document in
// declaration order, which encoding/json maps do not preserve.
func orderedKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object at the top level")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string key")
		}
		keys = append(keys, key)

		// Skip the value.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
