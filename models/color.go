package models

import (
	"fmt"
	"strings"
)

// Representation names one of the five textual color forms a picker
// field can hold.
type Representation string

const (
	RepHex  Representation = "hex"
	RepRGB  Representation = "rgb"
	RepHSL  Representation = "hsl"
	RepHSV  Representation = "hsv"
	RepCMYK Representation = "cmyk"
)

// Representations lists every representation in display order.
var Representations = []Representation{RepHex, RepRGB, RepHSL, RepHSV, RepCMYK}

var ErrUnknownRepresentation = fmt.Errorf("unknown color representation")

// ParseRepresentation maps a tag such as "HEX" or " rgb " to its Representation.
func ParseRepresentation(tag string) (Representation, error) {
	rep := Representation(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range Representations {
		if rep == known {
			return rep, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRepresentation, tag)
}

// HSV is the canonical representation. H is in degrees [0,360),
// S and V are percentages.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Hex is a color written as "#rrggbb".
type Hex string

// ColorValue pairs a structured color with its canonical text.
type ColorValue struct {
	Object any    `json:"object"`
	Text   string `json:"text"`
}

// ColorSet holds a color in every representation.
type ColorSet struct {
	Hex  ColorValue `json:"hex"`
	RGB  ColorValue `json:"rgb"`
	HSL  ColorValue `json:"hsl"`
	HSV  ColorValue `json:"hsv"`
	CMYK ColorValue `json:"cmyk"`
}

// Get returns the entry for rep.
func (set ColorSet) Get(rep Representation) (ColorValue, error) {
	switch rep {
	case RepHex:
		return set.Hex, nil
	case RepRGB:
		return set.RGB, nil
	case RepHSL:
		return set.HSL, nil
	case RepHSV:
		return set.HSV, nil
	case RepCMYK:
		return set.CMYK, nil
	}
	return ColorValue{}, fmt.Errorf("%w: %q", ErrUnknownRepresentation, rep)
}

// ColorTextRequest is a representation-tagged color string as typed by a user.
type ColorTextRequest struct {
	Representation string `json:"representation"`
	Text           string `json:"text"`
}

// HSVUpdateRequest carries picker drag input. Missing fields keep their
// current value.
type HSVUpdateRequest struct {
	H *float64 `json:"h,omitempty"`
	S *float64 `json:"s,omitempty"`
	V *float64 `json:"v,omitempty"`
}

// Merge applies the present fields of req on top of current.
func (req HSVUpdateRequest) Merge(current HSV) HSV {
	if req.H != nil {
		current.H = *req.H
	}
	if req.S != nil {
		current.S = *req.S
	}
	if req.V != nil {
		current.V = *req.V
	}
	return current
}
