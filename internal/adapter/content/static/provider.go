package staticcontent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
)

// Provider serves the static generation dataset: the built-in content
// pack, optionally overlaid with YAML files from a content directory.
type Provider struct {
	items     catalog.ItemRegistry
	templates catalog.TemplateRegistry
	creatures catalog.CreatureRegistry
	terrains  catalog.TerrainConfig
}

func NewProvider() *Provider {
	return &Provider{
		items:     defaultItems(),
		templates: defaultTemplates(),
		creatures: defaultCreatures(),
		terrains:  defaultTerrains(),
	}
}

// Load builds a provider from the built-in pack plus any overlay files
// found under dir. Missing files are fine; a malformed one is an error.
// An empty dir returns the built-in pack unchanged.
func Load(dir string) (*Provider, error) {
	p := NewProvider()
	if dir == "" {
		return p, nil
	}

	if err := overlayFile(filepath.Join(dir, "items.yaml"), &p.items); err != nil {
		return nil, err
	}
	var templates catalog.TemplateRegistry
	if err := overlayFile(filepath.Join(dir, "templates.yaml"), &templates); err != nil {
		return nil, err
	}
	for terrain, tpl := range templates {
		if tpl.Terrain == "" {
			tpl.Terrain = terrain
		}
		p.templates[terrain] = tpl
	}
	if err := overlayFile(filepath.Join(dir, "creatures.yaml"), &p.creatures); err != nil {
		return nil, err
	}
	if err := overlayFile(filepath.Join(dir, "terrains.yaml"), &p.terrains); err != nil {
		return nil, err
	}

	for id, def := range p.items {
		if def.ID == "" {
			def.ID = id
			p.items[id] = def
		}
	}
	return p, nil
}

func overlayFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

func (p *Provider) Items() catalog.ItemRegistry { return p.items }

func (p *Provider) Templates() catalog.TemplateRegistry { return p.templates }

func (p *Provider) Creatures() catalog.CreatureRegistry { return p.creatures }

func (p *Provider) Terrains() catalog.TerrainConfig { return p.terrains }

var _ ports.ContentProvider = (*Provider)(nil)
