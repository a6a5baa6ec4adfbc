package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/color-picker/api/models"
)

var (
	integerPattern = regexp.MustCompile(`^([+-]?\d+)$`)
	huePattern     = regexp.MustCompile(`(?i)^([+-]?\d+(?:\.\d+)?)\s*(?:deg|°)?$`)
	percentPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s*%?$`)
)

// unwrap strips "name(" and ")" from text. The bare component list is
// accepted as well.
func unwrap(text, name string) (string, bool) {
	body := strings.TrimSpace(text)
	lower := strings.ToLower(body)
	if strings.HasPrefix(lower, name) {
		rest := strings.TrimSpace(body[len(name):])
		if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
			return "", false
		}
		body = rest[1 : len(rest)-1]
	} else if strings.ContainsAny(body, "()") {
		return "", false
	}
	// a trailing comma is tolerated
	body = strings.TrimSuffix(strings.TrimSpace(body), ",")
	return body, body != ""
}

// components splits text into exactly len(patterns) numbers.
func components(text, name string, patterns ...*regexp.Regexp) ([]float64, error) {
	body, ok := unwrap(text, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrParseMismatch, name, text)
	}
	parts := strings.Split(body, ",")
	if len(parts) != len(patterns) {
		return nil, fmt.Errorf("%w: %s %q needs %d components", ErrParseMismatch, name, text, len(patterns))
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		match := patterns[i].FindStringSubmatch(strings.TrimSpace(part))
		if match == nil {
			return nil, fmt.Errorf("%w: %s %q component %d", ErrParseMismatch, name, text, i+1)
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q component %d", ErrParseMismatch, name, text, i+1)
		}
		values[i] = value
	}
	return values, nil
}

// ParseRGB reads "rgb(R, G, B)". Components are clamped into [0,255].
func ParseRGB(text string) (models.RGB, error) {
	v, err := components(text, "rgb", integerPattern, integerPattern, integerPattern)
	if err != nil {
		return models.RGB{}, err
	}
	return models.RGB{
		R: int(clamp(v[0], 0, 255)),
		G: int(clamp(v[1], 0, 255)),
		B: int(clamp(v[2], 0, 255)),
	}, nil
}

// ParseHSL reads "hsl(Hdeg, S%, L%)". H is clamped into [0,360], S and L
// into [0,100].
func ParseHSL(text string) (models.HSL, error) {
	v, err := components(text, "hsl", huePattern, percentPattern, percentPattern)
	if err != nil {
		return models.HSL{}, err
	}
	return models.HSL{
		H: clamp(v[0], 0, 360),
		S: clamp(v[1], 0, 100),
		L: clamp(v[2], 0, 100),
	}, nil
}

// ParseHSV reads "hsv(Hdeg, S%, V%)" with the same clamping as ParseHSL.
func ParseHSV(text string) (models.HSV, error) {
	v, err := components(text, "hsv", huePattern, percentPattern, percentPattern)
	if err != nil {
		return models.HSV{}, err
	}
	return models.HSV{
		H: clamp(v[0], 0, 360),
		S: clamp(v[1], 0, 100),
		V: clamp(v[2], 0, 100),
	}, nil
}

// ParseCMYK reads "cmyk(C%, M%, Y%, K%)", each clamped into [0,100].
func ParseCMYK(text string) (models.CMYK, error) {
	v, err := components(text, "cmyk", percentPattern, percentPattern, percentPattern, percentPattern)
	if err != nil {
		return models.CMYK{}, err
	}
	return models.CMYK{
		C: clamp(v[0], 0, 100),
		M: clamp(v[1], 0, 100),
		Y: clamp(v[2], 0, 100),
		K: clamp(v[3], 0, 100),
	}, nil
}

// ParseHex reads a 3 or 6 digit hex color with an optional '#'.
func ParseHex(text string) (models.RGB, error) {
	return HexToRGB(text)
}
