package road

import "image/color"

// Palette holds the stripe colours for one segment
type Palette struct {
	Road   color.RGBA
	Grass  color.RGBA
	Rumble color.RGBA
	Lane   color.Color // nil when the palette has no lane markings
}

// HasLanes reports whether lane markers should be drawn with this palette
func (p Palette) HasLanes() bool {
	return p.Lane != nil
}

var (
	// Light is used for even stripes
	Light = Palette{
		Road:   color.RGBA{0x8F, 0x8F, 0x8F, 255},
		Grass:  color.RGBA{0x10, 0xAA, 0x10, 255},
		Rumble: color.RGBA{0xBB, 0xBB, 0xBB, 255},
		Lane:   color.RGBA{0xFF, 0xFF, 0xFF, 255},
	}

	// Dark is used for odd stripes
	Dark = Palette{
		Road:   color.RGBA{0x69, 0x69, 0x69, 255},
		Grass:  color.RGBA{0x00, 0x9A, 0x00, 255},
		Rumble: color.RGBA{0xFF, 0x45, 0x00, 255},
		Lane:   color.RGBA{0xCC, 0xCC, 0xCC, 255},
	}
)

// PaletteFor returns the stripe palette for the segment at index.
// The palette alternates every RumbleLength segments, which is what makes the
// stripes appear to move as the road scrolls.
func PaletteFor(index int) Palette {
	if (index/RumbleLength)%2 == 1 {
		return Dark
	}
	return Light
}
