package colors

import (
	"fmt"

	"github.com/color-picker/api/models"
)

// DefaultHSV is white.
var DefaultHSV = models.HSV{H: 0, S: 0, V: 100}

// Model holds one canonical HSV color. Every other representation is
// derived on read. A Model is not safe for concurrent use.
type Model struct {
	hsv models.HSV
}

func NewModel(hsv models.HSV) *Model {
	return &Model{hsv: hsv}
}

func (m *Model) HSV() models.HSV {
	return m.hsv
}

// GetAll returns every representation of the current color.
func (m *Model) GetAll() models.ColorSet {
	return Describe(m.hsv)
}

// HueRGB returns the backdrop color for the current hue.
func (m *Model) HueRGB() models.RGB {
	return HueRGB(m.hsv.H)
}

// Update replaces the canonical color. Callers pass values that are
// already in range.
func (m *Model) Update(hsv models.HSV) {
	m.hsv = hsv
}

// UpdateFrom parses text as rep and, only if that succeeds, makes the
// result the canonical color.
func (m *Model) UpdateFrom(rep models.Representation, text string) error {
	hsv, err := ToHSV(rep, text)
	if err != nil {
		return err
	}
	m.hsv = hsv
	return nil
}

// ToHSV parses text as rep and converts it to canonical HSV.
func ToHSV(rep models.Representation, text string) (models.HSV, error) {
	switch rep {
	case models.RepHex:
		rgb, err := ParseHex(text)
		if err != nil {
			return models.HSV{}, err
		}
		return RGBToHSV(rgb), nil
	case models.RepRGB:
		rgb, err := ParseRGB(text)
		if err != nil {
			return models.HSV{}, err
		}
		return RGBToHSV(rgb), nil
	case models.RepHSL:
		hsl, err := ParseHSL(text)
		if err != nil {
			return models.HSV{}, err
		}
		return HSLToHSV(hsl), nil
	case models.RepHSV:
		hsv, err := ParseHSV(text)
		if err != nil {
			return models.HSV{}, err
		}
		return ClampHSV(hsv), nil
	case models.RepCMYK:
		cmyk, err := ParseCMYK(text)
		if err != nil {
			return models.HSV{}, err
		}
		return RGBToHSV(CMYKToRGB(cmyk)), nil
	}
	return models.HSV{}, fmt.Errorf("%w: %q", ErrUnknownRepresentation, rep)
}

// Convert describes text in every representation without touching any
// Model.
func Convert(rep models.Representation, text string) (models.ColorSet, error) {
	hsv, err := ToHSV(rep, text)
	if err != nil {
		return models.ColorSet{}, err
	}
	return Describe(hsv), nil
}
