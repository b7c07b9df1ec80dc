// bda.go - BIOS Data Area: named offsets into segment 0x40
//
// The BDA starts at physical 0x400 (segment 0x40, offset 0). Offsets below
// are a symbolic table rather than scattered magic numbers, matching the
// register-map convention of registers.go.
package pseudodos

const (
	// bdaBase is the physical address of the start of the BIOS Data Area.
	bdaBase = 0x40 << 4

	bdaOffEquipmentWord   = 0x10
	bdaOffMemoryKiB       = 0x13
	bdaOffVideoMode       = 0x49
	bdaOffTextColumns     = 0x4A
	bdaOffBytesPerPage    = 0x4C
	bdaOffCursorPosBase   = 0x50 // 8 words, one per video page
	bdaOffActivePage      = 0x62
	bdaOffVideoPortBase   = 0x63
	bdaOffTimerCounterLo  = 0x6C
	bdaOffTimerCounterHi  = 0x6E
	bdaOffTextRows        = 0x84 // byte: the char-height word starts at 0x85
	bdaOffCharHeightPixel = 0x85
)

const (
	bdaCursorPageCount = 8
	bdaCursorWordSize  = 2

	// Fixed boot-time initialization constants.
	bdaInitEquipmentWord = 0x0061
	bdaInitMemoryKiB     = 640
)

// BDA is a thin typed view over the BIOS Data Area cells of guest memory.
type BDA struct {
	m Machine8086
}

// NewBDA returns a view over the BDA backed by m.
func NewBDA(m Machine8086) *BDA {
	return &BDA{m: m}
}

func (b *BDA) u8(off uint32) uint8     { return b.m.PeekU8(bdaBase + off) }
func (b *BDA) setU8(off uint32, v uint8) { b.m.PokeU8(bdaBase+off, v) }
func (b *BDA) u16(off uint32) uint16    { return b.m.PeekU16(bdaBase + off) }
func (b *BDA) setU16(off uint32, v uint16) { b.m.PokeU16(bdaBase+off, v) }

// Init seeds the fixed BDA constants. mode describes the active
// text mode (only mode 3 is supported; see video_modes.go).
func (b *BDA) Init(mode VideoMode) {
	b.setU16(bdaOffEquipmentWord, bdaInitEquipmentWord)
	b.setU16(bdaOffMemoryKiB, bdaInitMemoryKiB)
	b.setU8(bdaOffVideoMode, mode.ModeIndex)
	b.setU16(bdaOffTextColumns, uint16(mode.TextColumns))
	b.setU16(bdaOffBytesPerPage, uint16(mode.TextPageBytes))
	b.setU16(bdaOffVideoPortBase, 0x3D4)
	b.setU8(bdaOffTextRows, uint8(mode.TextRows))
	b.setU16(bdaOffCharHeightPixel, uint16(mode.CharPixelHeight))
}

func (b *BDA) EquipmentWord() uint16     { return b.u16(bdaOffEquipmentWord) }
func (b *BDA) MemoryKiB() uint16         { return b.u16(bdaOffMemoryKiB) }
func (b *BDA) VideoMode() uint8          { return b.u8(bdaOffVideoMode) }
func (b *BDA) SetVideoMode(v uint8)      { b.setU8(bdaOffVideoMode, v) }
func (b *BDA) TextColumns() uint16       { return b.u16(bdaOffTextColumns) }
func (b *BDA) BytesPerPage() uint16      { return b.u16(bdaOffBytesPerPage) }
func (b *BDA) ActivePage() uint8         { return b.u8(bdaOffActivePage) }
func (b *BDA) SetActivePage(p uint8)     { b.setU8(bdaOffActivePage, p) }
func (b *BDA) VideoPortBase() uint16     { return b.u16(bdaOffVideoPortBase) }
func (b *BDA) TextRows() uint16          { return uint16(b.u8(bdaOffTextRows)) }
func (b *BDA) CharHeightPixels() uint16  { return b.u16(bdaOffCharHeightPixel) }

// CursorPos returns the packed (row<<8)|col cursor position for page.
func (b *BDA) CursorPos(page uint8) uint16 {
	return b.u16(bdaOffCursorPosBase + uint32(page)*bdaCursorWordSize)
}

// SetCursorPos writes the packed cursor position for page.
func (b *BDA) SetCursorPos(page uint8, packed uint16) {
	b.setU16(bdaOffCursorPosBase+uint32(page)*bdaCursorWordSize, packed)
}

// TimerCounter returns the 32-bit timer tick count (low word at 0x6C, high
// word at 0x6E), assembled as one value.
func (b *BDA) TimerCounter() uint32 {
	lo := b.u16(bdaOffTimerCounterLo)
	hi := b.u16(bdaOffTimerCounterHi)
	return uint32(lo) | (uint32(hi) << 16)
}

// SetTimerCounter writes back the split 32-bit timer tick count.
func (b *BDA) SetTimerCounter(v uint32) {
	b.setU16(bdaOffTimerCounterLo, uint16(v))
	b.setU16(bdaOffTimerCounterHi, uint16(v>>16))
}
