package colors

import (
	"fmt"

	"github.com/color-picker/api/models"
)

// ErrParseMismatch reports text that does not fit the grammar of the
// representation it was tagged with. No color is produced.
var ErrParseMismatch = fmt.Errorf("text does not match color format")

// ErrUnknownRepresentation is re-exported so callers of this package need
// not import models to test for it.
var ErrUnknownRepresentation = models.ErrUnknownRepresentation
