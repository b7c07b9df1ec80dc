// hexfmt.go - small formatting helpers for diagnostics
package pseudodos

import "fmt"

func hex16(v uint16) string { return fmt.Sprintf("0x%04X", v) }
func hex8(v uint8) string   { return fmt.Sprintf("0x%02X", v) }
