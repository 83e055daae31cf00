package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EntityTemplate is the instantiable blueprint for one entity kind, loaded
// from YAML. Networked marks the template as carrying a network identity;
// only networked templates may be pooled.
type EntityTemplate struct {
	TemplateID   int32  `yaml:"template_id"`
	Name         string `yaml:"name"`
	GfxID        int32  `yaml:"gfx_id"`
	Networked    bool   `yaml:"networked"`
	Level        int16  `yaml:"level"`
	HP           int32  `yaml:"hp"`
	RespawnDelay int    `yaml:"respawn_delay"` // ticks until auto-respawn after despawn; 0 = none
}

type templateListFile struct {
	Templates []EntityTemplate `yaml:"templates"`
}

// TemplateTable holds all entity templates indexed by TemplateID.
type TemplateTable struct {
	templates map[int32]*EntityTemplate
}

// NewTemplateTable builds a table from templates already in memory.
func NewTemplateTable(templates []EntityTemplate) *TemplateTable {
	t := &TemplateTable{templates: make(map[int32]*EntityTemplate, len(templates))}
	for i := range templates {
		tpl := &templates[i]
		t.templates[tpl.TemplateID] = tpl
	}
	return t
}

// LoadTemplateTable loads entity templates from a YAML file.
func LoadTemplateTable(path string) (*TemplateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template_list: %w", err)
	}
	var f templateListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse template_list: %w", err)
	}
	return NewTemplateTable(f.Templates), nil
}

// Get returns a template by ID, or nil if not found.
func (t *TemplateTable) Get(templateID int32) *EntityTemplate {
	return t.templates[templateID]
}

// Count returns the number of loaded templates.
func (t *TemplateTable) Count() int {
	return len(t.templates)
}

// PoolEntry is one authored pool configuration: which template to pool,
// under which name, and how many instances to pre-create. PoolID may be
// empty (defaulted to the template name) and Prewarm may be negative
// (corrected to its absolute value); both are fixed by the validation pass
// before initialization consumes the list.
type PoolEntry struct {
	TemplateID int32  `yaml:"template_id"`
	PoolID     string `yaml:"pool_id"`
	Prewarm    int    `yaml:"prewarm"`
}

type poolListFile struct {
	Pools []PoolEntry `yaml:"pools"`
}

// LoadPoolList loads authored pool entries from a YAML file, preserving order.
func LoadPoolList(path string) ([]PoolEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool_list: %w", err)
	}
	var f poolListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse pool_list: %w", err)
	}
	return f.Pools, nil
}
