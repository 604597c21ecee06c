// Package runfile loads declarative run descriptions and solves them.
package runfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/anneal/annealing"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownProblem is returned for a problem name no solver handles.
	ErrUnknownProblem = errors.New("runfile: unknown problem")
	// ErrUnknownFormat is returned for file extensions other than yaml, yml and json.
	ErrUnknownFormat = errors.New("runfile: unknown format")
	// ErrBadCities is returned when a city is not an (x, y) pair.
	ErrBadCities = errors.New("runfile: cities must be (x, y) pairs")
)

// File describes one run.
type File struct {
	Problem    string         `yaml:"problem" json:"problem"`
	Seed       int64          `yaml:"seed" json:"seed"`
	Cooler     string         `yaml:"cooler" json:"cooler"`
	Terminator string         `yaml:"terminator" json:"terminator"`
	Threshold  float64        `yaml:"threshold" json:"threshold"`
	Options    map[string]any `yaml:"options" json:"options"`
	Cities     [][]float64    `yaml:"cities" json:"cities"`
	Dimensions int            `yaml:"dimensions" json:"dimensions"`
}

// Load reads and parses the file at path; the extension selects the format.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read run file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data as YAML (".yaml", ".yml") or JSON (".json").
func Parse(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse yaml run file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse json run file: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// OptionMap returns the file's option map with the named cooler and
// terminator resolved into strategy values. Named strategies win over
// entries of Options under the same key. f.Options is not modified.
//
// Errors:
//   - annealing.ErrUnknownStrategy — Cooler or Terminator is not registered.
func OptionMap[S any](f File) (map[string]any, error) {
	m := make(map[string]any, len(f.Options)+2)
	maps.Copy(m, f.Options)

	if f.Cooler != "" {
		cooler, err := annealing.CoolerByName(f.Cooler)
		if err != nil {
			return nil, err
		}
		m[annealing.KeyCoolDown] = cooler
	}
	if f.Terminator != "" {
		terminator, err := annealing.TerminatorByName[S](f.Terminator, f.Threshold)
		if err != nil {
			return nil, err
		}
		m[annealing.KeyTerminationCondition] = terminator
	}
	return m, nil
}

// points converts Cities into coordinate pairs.
func (f File) points() ([][2]float64, error) {
	out := make([][2]float64, len(f.Cities))
	for i, c := range f.Cities {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: city %d has %d coordinates", ErrBadCities, i, len(c))
		}
		out[i] = [2]float64{c[0], c[1]}
	}
	return out, nil
}

// temperature returns the numeric temperature option, or 0 when absent.
func (f File) temperature() float64 {
	switch v := f.Options[annealing.KeyTemperature].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
