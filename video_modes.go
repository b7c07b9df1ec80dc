// video_modes.go - static table of supported video mode descriptors
//
// Mirrors the per-chip constant table convention used elsewhere in this
// family of emulator code (vga_constants.go) and the original's
// EGA_MODES array: an immutable lookup table keyed by mode index rather
// than scattered literals at each call site.
package pseudodos

// VideoMode describes one BIOS text video mode.
type VideoMode struct {
	ModeIndex       uint8
	PixelWidth      int
	PixelHeight     int
	TextColumns     int
	TextRows        int
	CharPixelWidth  int
	CharPixelHeight int
	TextBufferBase  uint32
	TextPageCount   int
	TextPageBytes   int
}

// TextModeIndex is the only video mode this service supports: 80x25 color
// text. Graphics modes are not implemented.
const TextModeIndex = 3

var videoModeTable = []VideoMode{
	{
		ModeIndex:       TextModeIndex,
		PixelWidth:      640,
		PixelHeight:     480,
		TextColumns:     80,
		TextRows:        25,
		CharPixelWidth:  8,
		CharPixelHeight: 14,
		TextBufferBase:  0xB8000,
		TextPageCount:   8,
		TextPageBytes:   0x1000,
	},
}

// LookupVideoMode returns the descriptor for modeIndex, or false if
// unsupported (every supported mode is enumerated in videoModeTable).
func LookupVideoMode(modeIndex uint8) (VideoMode, bool) {
	for _, m := range videoModeTable {
		if m.ModeIndex == modeIndex {
			return m, true
		}
	}
	return VideoMode{}, false
}

// DefaultVideoMode returns the mode the MZ loader initializes the BDA with.
func DefaultVideoMode() VideoMode {
	m, _ := LookupVideoMode(TextModeIndex)
	return m
}

// bytesPerChar is the stride of one text-mode character cell: one code byte
// followed by one attribute byte (bg<<4 | fg, bg bit 3 = blink).
const bytesPerChar = 2

// pageOriginAddress returns the flat address of the start of the given
// video page within mode's text buffer.
func (m VideoMode) pageOriginAddress(page uint8) uint32 {
	return m.TextBufferBase + uint32(page)*uint32(m.TextPageBytes)
}

// charAddress returns the flat address of the character cell at (row, col)
// within the page starting at pageOrigin.
func (m VideoMode) charAddress(pageOrigin uint32, row, col uint8) uint32 {
	return pageOrigin + (uint32(row)*uint32(m.TextColumns)+uint32(col))*bytesPerChar
}
