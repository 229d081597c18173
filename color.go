package typstplot

import (
	"fmt"

	"github.com/typstplot/typstplot/backend"
)

// typstColor serializes a color as a Typst rgb() constructor. Opaque
// colors omit the alpha argument; translucent colors carry it as a
// truncated integer percentage. The exact formatting, including the
// comma-space separators, is part of the output contract.
func typstColor(c backend.Color) string {
	if c.A < 1 {
		return fmt.Sprintf("rgb(%d, %d, %d, %d%%)", c.R, c.G, c.B, uint32(c.A*100))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
