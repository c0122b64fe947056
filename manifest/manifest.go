package manifest

import (
	"errors"
	"fmt"

	"github.com/milk9111/keystone/ecs/component"
	"gopkg.in/yaml.v3"
)

type EntrySpec struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

type GroupSpec struct {
	Name   string      `yaml:"name"`
	Images []EntrySpec `yaml:"images"`
	Fonts  []EntrySpec `yaml:"fonts"`
	Audio  []EntrySpec `yaml:"audio"`
}

// Manifest lists which assets belong to which loading group.
type Manifest struct {
	Groups []GroupSpec `yaml:"groups"`
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: unmarshal: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func LoadManifest(name string) (*Manifest, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("manifest: load %s: %w", cleanManifestPath(name), err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, cleanManifestPath(name))
	}
	return m, nil
}

// Validate reports every problem found, joined into one error.
func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("manifest: nil manifest")
	}
	var errs []error
	seen := make(map[component.AssetGroup]bool)
	for i, g := range m.Groups {
		group, err := component.ParseAssetGroup(g.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("manifest: groups[%d]: %w", i, err))
			continue
		}
		if seen[group] {
			errs = append(errs, fmt.Errorf("manifest: group %s declared twice", group))
		}
		seen[group] = true
		errs = append(errs, validateEntries(group, "images", g.Images)...)
		errs = append(errs, validateEntries(group, "fonts", g.Fonts)...)
		errs = append(errs, validateEntries(group, "audio", g.Audio)...)
	}
	return errors.Join(errs...)
}

func validateEntries(group component.AssetGroup, kind string, entries []EntrySpec) []error {
	var errs []error
	keys := make(map[string]bool, len(entries))
	for i, e := range entries {
		switch {
		case e.Key == "":
			errs = append(errs, fmt.Errorf("manifest: %s.%s[%d]: empty key", group, kind, i))
		case keys[e.Key]:
			errs = append(errs, fmt.Errorf("manifest: %s.%s: duplicate key %q", group, kind, e.Key))
		}
		keys[e.Key] = true
		if e.Path == "" {
			errs = append(errs, fmt.Errorf("manifest: %s.%s[%d]: empty path", group, kind, i))
		}
	}
	return errs
}

// Requests converts the manifest into one load request per group.
func (m *Manifest) Requests() (map[component.AssetGroup]component.LoadAssetGroupRequest, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := make(map[component.AssetGroup]component.LoadAssetGroupRequest, len(m.Groups))
	for _, g := range m.Groups {
		group, _ := component.ParseAssetGroup(g.Name)
		out[group] = component.LoadAssetGroupRequest{
			Group:  group,
			Images: toEntries(g.Images),
			Fonts:  toEntries(g.Fonts),
			Audio:  toEntries(g.Audio),
		}
	}
	return out, nil
}

func toEntries(specs []EntrySpec) []component.AssetEntry {
	if len(specs) == 0 {
		return nil
	}
	out := make([]component.AssetEntry, 0, len(specs))
	for _, s := range specs {
		out = append(out, component.AssetEntry{Key: s.Key, Path: s.Path})
	}
	return out
}
