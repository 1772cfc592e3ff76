package report

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is one dashboard report: a mode plus the bounds of its N slider.
// The bounds are UI metadata; they do not restrict the N a caller may request.
type Definition struct {
	Name        string `json:"name"`
	Mode        Mode   `json:"mode"`
	Title       string `json:"title"`
	DefaultN    int    `json:"default_n"`
	MinN        int    `json:"min_n"`
	MaxN        int    `json:"max_n"`
	Fingerprint string `json:"fingerprint,omitempty"` // SHA-256 of the YAML file; empty for built-ins
}

// rawDefinition is the on-disk YAML shape.
type rawDefinition struct {
	Name     string `yaml:"name"`
	Mode     string `yaml:"mode"`
	Title    string `yaml:"title"`
	DefaultN int    `yaml:"default_n"`
	MinN     int    `yaml:"min_n"`
	MaxN     int    `yaml:"max_n"`
}

// ResolveN applies the default when n is nil. Any n >= 1 is accepted:
// MinN and MaxN only describe the UI slider, and ranking fewer rows than n
// is not an error.
func (d Definition) ResolveN(n *int) (int, error) {
	if n == nil {
		return d.DefaultN, nil
	}
	if *n <= 0 {
		return 0, invalidArgumentf("n must be >= 1, got %d", *n)
	}
	return *n, nil
}

func (d Definition) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("report name must not be empty")
	}
	if !d.Mode.Valid() {
		return fmt.Errorf("report %q: unsupported mode %q", d.Name, d.Mode)
	}
	if d.MinN < 1 {
		return fmt.Errorf("report %q: min_n must be >= 1", d.Name)
	}
	if d.DefaultN < d.MinN || d.DefaultN > d.MaxN {
		return fmt.Errorf("report %q: default_n %d outside [%d, %d]", d.Name, d.DefaultN, d.MinN, d.MaxN)
	}
	return nil
}

// builtinDefinitions mirror the sliders of the original dashboard views.
var builtinDefinitions = []Definition{
	{
		Name:     "top_peak_ccu",
		Mode:     ModeHighestPeakCCU,
		Title:    "Top Games by Highest Peak CCU",
		DefaultN: 5, MinN: 5, MaxN: 20,
	},
	{
		Name:     "top_playtime",
		Mode:     ModeAverageMedianPlaytime,
		Title:    "Top Games by Average and Median Playtime",
		DefaultN: 5, MinN: 5, MaxN: 20,
	},
	{
		Name:     "required_age",
		Mode:     ModeRequiredAgeHistogram,
		Title:    "Count of Games Grouped by Age Requirement",
		DefaultN: 5, MinN: 1, MaxN: 30,
	},
	{
		Name:     "publishers_by_genre",
		Mode:     ModeTotalGamesByPublisher,
		Title:    "Total Games by Publisher",
		DefaultN: 5, MinN: 1, MaxN: 20,
	},
}

// Catalog holds the report definitions, keyed by name.
type Catalog struct {
	defs map[string]Definition
}

// DefaultCatalog returns the built-in reports.
func DefaultCatalog() *Catalog {
	c := &Catalog{defs: make(map[string]Definition, len(builtinDefinitions))}
	for _, d := range builtinDefinitions {
		c.defs[d.Name] = d
	}
	return c
}

// LoadCatalog starts from the built-in reports and applies every *.yaml /
// *.yml file in dir on top; a file whose name matches a built-in replaces it.
// A missing dir yields the built-ins only.
func LoadCatalog(dir string) (*Catalog, error) {
	c := DefaultCatalog()
	if dir == "" {
		return c, nil
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("report catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report catalog path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading report catalog dir: %w", err)
	}

	fromFiles := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading report file %s: %w", path, err)
		}

		var raw rawDefinition
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing report file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // comment-only file
		}

		if prev, exists := fromFiles[raw.Name]; exists {
			return nil, fmt.Errorf("report %q: defined in both %s and %s", raw.Name, prev, path)
		}
		fromFiles[raw.Name] = path

		def := Definition{
			Name:        raw.Name,
			Mode:        Mode(strings.ToLower(strings.TrimSpace(raw.Mode))),
			Title:       raw.Title,
			DefaultN:    raw.DefaultN,
			MinN:        raw.MinN,
			MaxN:        raw.MaxN,
			Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
		}
		if def.MinN == 0 {
			def.MinN = 1
		}
		if def.MaxN == 0 {
			def.MaxN = 20
		}
		if def.DefaultN == 0 {
			def.DefaultN = def.MinN
		}
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("report file %s: %w", path, err)
		}

		c.defs[def.Name] = def
	}

	return c, nil
}

// Get returns the definition with the given name.
func (c *Catalog) Get(name string) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// List returns all definitions sorted by name.
func (c *Catalog) List() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
