package paint

// Dynamics maps pointer input to per-dab paint parameters.
// Results are in [0,1].
type Dynamics interface {
	Opacity(c Coords, fade float64) float64
	Hardness(c Coords, fade float64) float64
}

// FixedDynamics ignores input and paints at full opacity and hardness.
type FixedDynamics struct{}

// Opacity returns 1.
func (FixedDynamics) Opacity(Coords, float64) float64 { return 1 }

// Hardness returns 1.
func (FixedDynamics) Hardness(Coords, float64) float64 { return 1 }

// PressureDynamics drives the selected outputs from pen pressure.
// Outputs that are not selected stay at 1.
type PressureDynamics struct {
	PressureOpacity  bool
	PressureHardness bool
}

// Opacity returns the pressure when PressureOpacity is set.
func (d PressureDynamics) Opacity(c Coords, _ float64) float64 {
	if d.PressureOpacity {
		return clamp01(c.Pressure)
	}
	return 1
}

// Hardness returns the pressure when PressureHardness is set.
func (d PressureDynamics) Hardness(c Coords, _ float64) float64 {
	if d.PressureHardness {
		return clamp01(c.Pressure)
	}
	return 1
}

// FadeDynamics tapers opacity along the stroke: it paints at 1 − fade.
type FadeDynamics struct{}

// Opacity returns 1 − fade.
func (FadeDynamics) Opacity(_ Coords, fade float64) float64 { return clamp01(1 - fade) }

// Hardness returns 1.
func (FadeDynamics) Hardness(Coords, float64) float64 { return 1 }

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
