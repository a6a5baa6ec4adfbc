package colors

import (
	"fmt"
	"strings"

	"github.com/color-picker/api/models"
	"golang.org/x/image/colornames"
)

var ErrUnknownColorName = fmt.Errorf("unknown color name")

// ParseNamed looks up an SVG 1.1 color keyword such as "steelblue"
// or "Light Sea Green".
func ParseNamed(name string) (models.RGB, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), ""))
	c, ok := colornames.Map[key]
	if !ok {
		return models.RGB{}, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return models.RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, nil
}
