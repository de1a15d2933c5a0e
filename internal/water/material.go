package water

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lowpoly-water/pkg/math"
)

// Uniform names understood by the water shader.
const (
	UniformCellSize      = "cellSize"
	UniformAmplitude     = "amplitude"
	UniformSpeed         = "speed"
	UniformLightPosition = "lightPosition"
)

// ErrInvalidMaterial is returned by Material.Validate.
var ErrInvalidMaterial = errors.New("invalid water material")

// Material holds the wave shader parameters. The mesh generator never reads
// them; they travel with the field to the renderer.
type Material struct {
	CellSize      float32   `yaml:"cell_size"`
	Amplitude     float32   `yaml:"amplitude"`
	Speed         float32   `yaml:"speed"`
	LightPosition math.Vec3 `yaml:"light_position"`
}

// DefaultMaterial returns the slider defaults of the demo scene.
func DefaultMaterial() Material {
	return Material{
		CellSize:      0.5,
		Amplitude:     0.5,
		Speed:         0.5,
		LightPosition: math.Vec3{X: 0, Y: -1, Z: 1},
	}
}

// Validate rejects negative or non-finite parameters.
func (m Material) Validate() error {
	params := []struct {
		name  string
		value float32
	}{
		{UniformCellSize, m.CellSize},
		{UniformAmplitude, m.Amplitude},
		{UniformSpeed, m.Speed},
	}
	for _, p := range params {
		if !math.IsFinite(p.value) || p.value < 0 {
			return fmt.Errorf("%w: %s = %g", ErrInvalidMaterial, p.name, p.value)
		}
	}
	l := m.LightPosition
	if !math.IsFinite(l.X) || !math.IsFinite(l.Y) || !math.IsFinite(l.Z) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidMaterial, UniformLightPosition, l)
	}
	return nil
}

// Uniforms returns the parameters keyed by uniform name.
func (m Material) Uniforms() map[string]any {
	return map[string]any{
		UniformCellSize:      m.CellSize,
		UniformAmplitude:     m.Amplitude,
		UniformSpeed:         m.Speed,
		UniformLightPosition: m.LightPosition.Array(),
	}
}
