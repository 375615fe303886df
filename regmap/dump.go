package regmap

import (
	"fmt"
	"io"
)

// Format returns "NAME (0xOFFS) = 0xVALUE" for r. Write-only registers are
// not read and show "<write-only>" instead of a value.
func Format(b Bus, r Register) string {
	if r.Access == WriteOnly {
		return fmt.Sprintf("%-28s (0x%04X) = <write-only>", r.Name, r.Offset)
	}
	return fmt.Sprintf("%-28s (0x%04X) = 0x%08X", r.Name, r.Offset, b.Read32(r.Offset))
}

// Dump writes one Format line for every register in regs. Dump performs no
// bus writes.
func Dump(w io.Writer, b Bus, regs []Register) error {
	for _, r := range regs {
		if _, err := fmt.Fprintln(w, Format(b, r)); err != nil {
			return fmt.Errorf("dump %s: %w", r.Name, err)
		}
	}
	return nil
}
