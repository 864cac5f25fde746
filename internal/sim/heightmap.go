package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Heightmap is a hand-authored 3D terrain definition loaded from YAML.
// Heights is a row-major grid indexed [z][x]; Pads lists rectangular cell
// ranges that count as landing pads.
type Heightmap struct {
	Name    string      `yaml:"name"`
	Heights [][]float64 `yaml:"heights"`
	Pads    []PadRect   `yaml:"pads"`
}

// PadRect marks a rectangular cell range as a landing pad. Bounds are
// inclusive cell indices.
type PadRect struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinZ int `yaml:"min_z"`
	MaxZ int `yaml:"max_z"`
}

// LoadHeightmap reads and validates a heightmap YAML file.
func LoadHeightmap(path string) (*Heightmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot read heightmap %s: %w", path, err)
	}

	var hm Heightmap
	if err := yaml.Unmarshal(data, &hm); err != nil {
		return nil, fmt.Errorf("sim: cannot parse heightmap %s: %w", path, err)
	}
	if err := hm.validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid heightmap %s: %w", path, err)
	}
	return &hm, nil
}

func (hm *Heightmap) validate() error {
	if len(hm.Heights) < 2 {
		return fmt.Errorf("needs at least 2 rows, got %d", len(hm.Heights))
	}
	cols := len(hm.Heights[0])
	if cols < 2 {
		return fmt.Errorf("needs at least 2 columns, got %d", cols)
	}
	for i, row := range hm.Heights {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	return nil
}

// padCell reports whether cell (xi, zi) lies inside any pad rectangle.
func (hm *Heightmap) padCell(xi, zi int) bool {
	for _, p := range hm.Pads {
		if xi >= p.MinX && xi <= p.MaxX && zi >= p.MinZ && zi <= p.MaxZ {
			return true
		}
	}
	return false
}

// Surface triangulates the heightmap across the given world extent.
func (hm *Heightmap) Surface(worldWidth, worldLength float64) *TriangleSurface {
	cellsZ := len(hm.Heights) - 1
	cellsX := len(hm.Heights[0]) - 1
	cellW := worldWidth / float64(cellsX)
	cellD := worldLength / float64(cellsZ)

	heightAt := func(xi, zi int) float64 { return hm.Heights[zi][xi] }
	return NewTriangleSurface(buildMesh(cellsX, cellsZ, cellW, cellD, heightAt, hm.padCell))
}
