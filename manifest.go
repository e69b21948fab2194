package teachta

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestEntry is one declared delegation. Either Method (optionally with
// Alias) or Methods must be set.
type ManifestEntry struct {
	Accessor string   `toml:"accessor"`
	Method   string   `toml:"method"`
	Alias    string   `toml:"alias"`
	Methods  []string `toml:"methods"`
}

// manifestFile is the TOML document layout.
type manifestFile struct {
	Delegators []ManifestEntry `toml:"delegator"`
}

// Manifest is a declarative list of delegation specs loaded from TOML. It
// implements Provider, so it can be applied through RegisterProviders or
// directly with Register.
//
// Manifest layout:
//
//	[[delegator]]
//	accessor = "Items"
//	methods = ["Push", "Size"]
//
//	[[delegator]]
//	accessor = "@Store"
//	method = "Get"
//	alias = "Fetch"
type Manifest struct {
	Path       string
	Delegators []ManifestEntry
}

// LoadManifest reads a delegation manifest from a TOML file.
func LoadManifest(path string) (*Manifest, error) {
	var raw manifestFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}

	m := &Manifest{Path: path, Delegators: raw.Delegators}
	if err := m.validate(); err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	return m, nil
}

// ParseManifest reads a delegation manifest from TOML source text.
func ParseManifest(data string) (*Manifest, error) {
	var raw manifestFile
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, &ManifestError{Err: err}
	}

	m := &Manifest{Delegators: raw.Delegators}
	if err := m.validate(); err != nil {
		return nil, &ManifestError{Err: err}
	}
	return m, nil
}

func (m *Manifest) validate() error {
	for i, entry := range m.Delegators {
		if strings.TrimSpace(entry.Accessor) == "" {
			return fmt.Errorf("delegator %d: accessor is required", i)
		}
		if entry.Method == "" && len(entry.Methods) == 0 {
			return fmt.Errorf("delegator %d: method or methods is required", i)
		}
		if entry.Method != "" && len(entry.Methods) > 0 {
			return fmt.Errorf("delegator %d: method and methods are mutually exclusive", i)
		}
		if entry.Alias != "" && entry.Method == "" {
			return fmt.Errorf("delegator %d: alias requires a single method", i)
		}
	}
	return nil
}

// Register applies every declared delegation to the delegation scope.
// Manifest implements Provider through this method.
func (m *Manifest) Register(d Delegator) error {
	for _, entry := range m.Delegators {
		var err error
		switch {
		case entry.Method != "" && entry.Alias != "":
			_, err = d.DefineDelegator(entry.Accessor, entry.Method, entry.Alias)
		case entry.Method != "":
			_, err = d.DefineDelegator(entry.Accessor, entry.Method)
		default:
			err = d.DefineDelegators(entry.Accessor, entry.Methods...)
		}
		if err != nil {
			return &ManifestError{Path: m.Path, Err: err}
		}
	}
	return nil
}
