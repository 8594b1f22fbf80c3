package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
)

// encounterPackFile is the on-disk shape of one YAML encounter pack.
type encounterPackFile struct {
	Encounters []catalog.EncounterDefinition `yaml:"encounters"`
}

// Encounter pack operations (filesystem-backed)

func (r *RedisStorage) ListEncounterPacks(ctx context.Context) ([]string, error) {
	packsDir := filepath.Join(r.dataDir, "encounters")

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read encounters directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}

	return names, nil
}

func (r *RedisStorage) GetEncounterPack(ctx context.Context, name string) ([]catalog.EncounterDefinition, error) {
	path := r.packPath(name)
	if path == "" {
		return nil, fmt.Errorf("encounter pack not found: %s", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encounter pack %s: %w", name, err)
	}

	var pack encounterPackFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse encounter pack %s: %w", name, err)
	}

	return pack.Encounters, nil
}

// packPath resolves a pack name to an existing .yaml or .yml file, or "".
func (r *RedisStorage) packPath(name string) string {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(r.dataDir, "encounters", name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Item and status effect definitions (filesystem-backed)

func (r *RedisStorage) GetItems(ctx context.Context) (map[string]catalog.ItemDefinition, error) {
	path := filepath.Join(r.dataDir, "items.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]catalog.ItemDefinition{}, nil
		}
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var defs []catalog.ItemDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	items := make(map[string]catalog.ItemDefinition, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			r.logger.Warn("Item definition missing id, skipped", "name", def.Name)
			continue
		}
		items[def.ID] = def
	}
	return items, nil
}

func (r *RedisStorage) GetStatusEffects(ctx context.Context) (map[string]catalog.StatusEffectDefinition, error) {
	path := filepath.Join(r.dataDir, "status_effects.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]catalog.StatusEffectDefinition{}, nil
		}
		return nil, fmt.Errorf("failed to read status effects file: %w", err)
	}

	var defs []catalog.StatusEffectDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status effects: %w", err)
	}

	statuses := make(map[string]catalog.StatusEffectDefinition, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			r.logger.Warn("Status effect definition missing id, skipped", "name", def.Name)
			continue
		}
		statuses[def.ID] = def
	}
	return statuses, nil
}
