// Package catalog loads the static diet plan templates from TOML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

//go:embed catalog.toml
var defaultCatalog string

type file struct {
	Plans []*domain.DietPlanTemplate `toml:"plan"`
}

// LoadDefault decodes the catalog compiled into the binary.
func LoadDefault() (domain.DietCatalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile decodes a catalog from disk, replacing the built-in one.
func LoadFile(path string) (domain.DietCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read diet catalog: %w", err)
	}
	return Parse(string(raw))
}

func Parse(raw string) (domain.DietCatalog, error) {
	var f file
	md, err := toml.Decode(raw, &f)
	if err != nil {
		return nil, fmt.Errorf("decode diet catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode diet catalog: unknown keys %v", undecoded)
	}

	c := make(domain.DietCatalog, len(f.Plans))
	for _, p := range f.Plans {
		if p.Goal == "" {
			return nil, fmt.Errorf("diet catalog: plan without goal")
		}
		if !domain.IsDietGoal(p.Goal) {
			return nil, fmt.Errorf("diet catalog: unknown goal %q", p.Goal)
		}
		if _, dup := c[p.Goal]; dup {
			return nil, fmt.Errorf("diet catalog: duplicate goal %q", p.Goal)
		}
		if len(p.Meals) == 0 {
			return nil, fmt.Errorf("diet catalog: %q has no meals", p.Goal)
		}
		c[p.Goal] = p
	}

	for _, goal := range domain.DietGoals {
		if _, ok := c[goal]; !ok {
			return nil, fmt.Errorf("diet catalog: missing plan for %q", goal)
		}
	}

	return c, nil
}
