package game

import "image/color"

// BuffKind defines the different kinds of power-ups
type BuffKind int

const (
	BuffKindShield BuffKind = iota // Absorbs one hazard hit
	BuffKindSpeed                  // Faster swimming
)

// BuffKindConfig holds configuration for each buff kind
type BuffKindConfig struct {
	Kind           BuffKind
	Name           string
	Symbol         string
	Color          color.RGBA
	SecondaryColor color.RGBA
}

// GetBuffKindConfig returns configuration for a buff kind
func GetBuffKindConfig(kind BuffKind) BuffKindConfig {
	switch kind {
	case BuffKindShield:
		return BuffKindConfig{
			Kind:           BuffKindShield,
			Name:           "shield",
			Symbol:         "S",
			Color:          color.RGBA{0x00, 0xC8, 0xFF, 0xFF},
			SecondaryColor: color.RGBA{0x39, 0xCC, 0xCC, 0xFF},
		}
	case BuffKindSpeed:
		return BuffKindConfig{
			Kind:           BuffKindSpeed,
			Name:           "speed",
			Symbol:         ">",
			Color:          color.RGBA{0xFF, 0xD7, 0x00, 0xFF},
			SecondaryColor: color.RGBA{0xFF, 0xDC, 0x00, 0xFF},
		}
	default:
		return GetBuffKindConfig(BuffKindShield)
	}
}

// String returns the display name of the kind
func (k BuffKind) String() string {
	return GetBuffKindConfig(k).Name
}

// RandomBuffKind picks a buff kind uniformly
func RandomBuffKind(rng Rand) BuffKind {
	if rng.Float64() < 0.5 {
		return BuffKindShield
	}
	return BuffKindSpeed
}
