package game

import "image/color"

// HazardKind defines the different kinds of falling trash
type HazardKind int

const (
	HazardKindBottle HazardKind = iota // Large and slow
	HazardKindCan                      // Small and fast
)

// HazardKindConfig holds configuration for each hazard kind
type HazardKindConfig struct {
	Kind      HazardKind
	Name      string
	Width     float64
	Height    float64
	MinSpeed  float64 // pixels per tick
	SpeedSpan float64 // random extra speed on top of MinSpeed
	Color     color.RGBA
}

// GetHazardKindConfig returns configuration for a hazard kind
func GetHazardKindConfig(kind HazardKind) HazardKindConfig {
	switch kind {
	case HazardKindBottle:
		return HazardKindConfig{
			Kind:      HazardKindBottle,
			Name:      "plastic bottle",
			Width:     15,
			Height:    35,
			MinSpeed:  1.5,
			SpeedSpan: 1.0,
			Color:     color.RGBA{0x2E, 0xCC, 0x40, 0xFF}, // Green plastic
		}
	case HazardKindCan:
		return HazardKindConfig{
			Kind:      HazardKindCan,
			Name:      "metal can",
			Width:     20,
			Height:    25,
			MinSpeed:  2.5,
			SpeedSpan: 1.5,
			Color:     color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}, // Silver
		}
	default:
		return GetHazardKindConfig(HazardKindBottle)
	}
}

// String returns the display name of the kind
func (k HazardKind) String() string {
	return GetHazardKindConfig(k).Name
}

// RandomHazardKind returns a weighted random hazard kind.
// weightA is the probability of a bottle; everything else is a can.
func RandomHazardKind(rng Rand, weightA float64) HazardKind {
	if rng.Float64() < weightA {
		return HazardKindBottle
	}
	return HazardKindCan
}
