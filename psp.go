// psp.go - Program Segment Prefix initialization
//
// The PSP is a 256-byte DOS structure placed at paragraph pspParagraph,
// immediately before the loaded program image. Only the fields an MVP DOS
// personality layer needs are populated.
package pseudodos

import "fmt"

const (
	// pspParagraph is the paragraph (0x100) where the PSP is placed; the
	// program image itself starts pspParagraphs further on.
	pspParagraph = 0x100
	pspParagraphs = 0x10

	pspOffSegmentAfterProgram = 0x02
	pspOffCommandTailLen      = 0x80
	pspOffCommandTail         = 0x81

	// pspSegmentAfterProgram is the fixed value this implementation writes
	// to the "first segment after program" field; a real DOS computes this
	// from available memory, but nothing in the covered scope reads it back:
	// none of the INT 21h functions implemented here reads it.
	pspSegmentAfterProgram = 0xA000

	pspCommandTailTerminator = 0x0D
	maxCommandTailLen        = 0xFF
)

// PSPBase is the flat physical address of the Program Segment Prefix.
func PSPBase() uint32 {
	return uint32(pspParagraph) * 16
}

// InitPSP writes the PSP fields used by the covered DOS surface: the
// segment-after-program word, and the command-tail length-prefixed,
// 0x0D-terminated byte string. It fails if the tail plus its terminator
// would overflow the single-byte length field.
func InitPSP(m Machine8086, commandTail []byte) error {
	tailLen := len(commandTail) + 1
	if tailLen > maxCommandTailLen {
		return fmt.Errorf("pseudodos: command tail too long: %d bytes", len(commandTail))
	}

	base := PSPBase()
	m.PokeU16(base+pspOffSegmentAfterProgram, pspSegmentAfterProgram)
	m.PokeU8(base+pspOffCommandTailLen, uint8(tailLen))

	pos := base + pspOffCommandTail
	for _, b := range commandTail {
		m.PokeU8(pos, b)
		pos++
	}
	m.PokeU8(pos, pspCommandTailTerminator)
	return nil
}
