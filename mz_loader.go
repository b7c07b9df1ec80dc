// mz_loader.go - MZ executable loader
//
// Parses the 28-byte MZ header, extracts the program image, seeds CPU
// registers and the PSP. Ported in semantics from
// original_source/.../exe_loader.rs's MzHeader.
package pseudodos

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	mzHeaderBytes    = 28
	mzParagraphBytes = 16
	mzBlockBytes     = 512

	// exeOriginParagraph is the load origin: the PSP occupies its first
	// pspParagraphs paragraphs and the program image follows immediately.
	exeOriginParagraph = 0x100
)

// MzHeader is the parsed fixed-size MZ header. The wire format is exactly
// 28 bytes (14 little-endian words); "overlay" at offset 26 is the last of
// them - the original additionally names an "overlay-info" field
// separately from "overlay", but the 28-byte header leaves no room for a
// 15th word, so it is treated as an alias for Overlay rather than a
// distinct field (see DESIGN.md).
type MzHeader struct {
	Signature            uint16
	LastBlockBytes       uint16
	FileBlockCount       uint16
	RelocationItems      uint16
	HeaderParagraphCount uint16
	MinMemoryParagraphs  uint16
	MaxMemoryParagraphs  uint16
	InitialSS            uint16
	InitialSP            uint16
	Checksum             uint16
	InitialIP            uint16
	InitialCS            uint16
	RelocationTableOff   uint16
	Overlay              uint16
}

// OverlayInfo aliases Overlay; see the MzHeader doc comment.
func (h MzHeader) OverlayInfo() uint16 { return h.Overlay }

// ParseMzHeader reads the fixed 28-byte little-endian MZ header from r.
func ParseMzHeader(r io.Reader) (MzHeader, error) {
	var raw [mzHeaderBytes]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return MzHeader{}, fmt.Errorf("pseudodos: reading MZ header: %w", err)
	}

	read16 := func(off int) uint16 { return binary.LittleEndian.Uint16(raw[off:]) }
	return MzHeader{
		Signature:            read16(0),
		LastBlockBytes:       read16(2),
		FileBlockCount:       read16(4),
		RelocationItems:      read16(6),
		HeaderParagraphCount: read16(8),
		MinMemoryParagraphs:  read16(10),
		MaxMemoryParagraphs:  read16(12),
		InitialSS:            read16(14),
		InitialSP:            read16(16),
		Checksum:             read16(18),
		InitialIP:            read16(20),
		InitialCS:            read16(22),
		RelocationTableOff:   read16(24),
		Overlay:              read16(26),
	}, nil
}

// DataStart is the byte offset of the program image within the EXE file.
func (h MzHeader) DataStart() int {
	return int(h.HeaderParagraphCount) * mzParagraphBytes
}

// DataEnd is the byte offset one past the end of the program image.
func (h MzHeader) DataEnd() int {
	subtract := 0
	if h.LastBlockBytes > 0 {
		subtract = mzBlockBytes - int(h.LastBlockBytes)
	}
	return int(h.FileBlockCount)*mzBlockBytes - subtract
}

// ExtractData reads the program image bytes [DataStart, DataEnd) from a
// seekable stream.
func (h MzHeader) ExtractData(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(int64(h.DataStart()), io.SeekStart); err != nil {
		return nil, fmt.Errorf("pseudodos: seeking to MZ data start: %w", err)
	}
	data := make([]byte, h.DataEnd()-h.DataStart())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("pseudodos: reading MZ image data: %w", err)
	}
	return data, nil
}

// LoadMZ parses, extracts and installs an MZ executable into m: it copies
// the program image into guest memory, seeds segment/stack/instruction
// registers, initializes the BDA, and initializes the PSP with
// commandTail. Relocation is not implemented; a non-zero relocation
// item count is logged rather than processed.
func LoadMZ(r io.ReadSeeker, m Machine8086, commandTail []byte) error {
	header, err := ParseMzHeader(r)
	if err != nil {
		return err
	}
	if header.RelocationItems != 0 {
		logWarn("MZ relocation table present but unsupported", "items", header.RelocationItems)
	}

	data, err := header.ExtractData(r)
	if err != nil {
		return err
	}

	segmentOffset := uint16(exeOriginParagraph + pspParagraphs)
	loadBase := uint32(exeOriginParagraph+pspParagraphs) * mzParagraphBytes

	mem := m.Memory()
	if int(loadBase)+len(data) > len(mem) {
		return fmt.Errorf("pseudodos: MZ image of %d bytes overflows guest memory at 0x%05X", len(data), loadBase)
	}
	copy(mem[loadBase:], data)

	m.SetReg16(RegSP, header.InitialSP)
	m.SetReg16(RegIP, header.InitialIP)
	m.SetReg16(RegSS, header.InitialSS+segmentOffset)
	m.SetReg16(RegCS, header.InitialCS+segmentOffset)
	m.SetReg16(RegDS, exeOriginParagraph)
	m.SetReg16(RegES, exeOriginParagraph)

	NewBDA(m).Init(DefaultVideoMode())

	if err := InitPSP(m, commandTail); err != nil {
		return err
	}
	return nil
}
