package manifest

import (
	"encoding/json"
)

// FileName is the manifest file name at the project root.
const FileName = "package.json"

// defaultVersion is the version stamped into freshly synthesized manifests.
const defaultVersion = "1.0.0"

// Manifest is the project descriptor. Any field may be absent from the
// on-disk file. Top-level fields this tool does not interpret are carried
// through load/save untouched via extra.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Version         string            `json:"version,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`

	extra map[string]json.RawMessage
}

// knownFields are the top-level keys the Manifest struct interprets.
var knownFields = map[string]bool{
	"name":            true,
	"version":         true,
	"scripts":         true,
	"dependencies":    true,
	"devDependencies": true,
}

// Default synthesizes a manifest for a new project. It is a pure function:
// every call returns a fresh value with its own maps, so no two manifests
// ever alias each other's state.
func Default(name string) *Manifest {
	return &Manifest{
		Name:            name,
		Version:         defaultVersion,
		Scripts:         map[string]string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
}

// UnmarshalJSON decodes the known fields and stashes everything else so a
// later save does not drop fields written by other tools.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type plain Manifest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Manifest(p)

	for key, val := range raw {
		if knownFields[key] {
			continue
		}
		if m.extra == nil {
			m.extra = make(map[string]json.RawMessage)
		}
		m.extra[key] = val
	}
	return nil
}

// MarshalJSON merges the known fields back over the preserved unknown ones.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.extra)+5)
	for key, val := range m.extra {
		out[key] = val
	}

	set := func(key string, val interface{}) error {
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}
		out[key] = data
		return nil
	}

	if m.Name != "" {
		if err := set("name", m.Name); err != nil {
			return nil, err
		}
	}
	if m.Version != "" {
		if err := set("version", m.Version); err != nil {
			return nil, err
		}
	}
	if m.Scripts != nil {
		if err := set("scripts", m.Scripts); err != nil {
			return nil, err
		}
	}
	if m.Dependencies != nil {
		if err := set("dependencies", m.Dependencies); err != nil {
			return nil, err
		}
	}
	if m.DevDependencies != nil {
		if err := set("devDependencies", m.DevDependencies); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}
