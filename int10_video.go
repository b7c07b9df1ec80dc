// int10_video.go - INT 10h video services
package pseudodos

// handleInt10 implements INT 10h video services on the active text mode.
func (d *Dispatcher) handleInt10(m Machine8086) (DosInterruptResult, error) {
	bda := NewBDA(m)
	mode := d.videoMode

	switch m.GetReg8(GroupA, HalfHigh) {
	case 0x00: // set mode - accepted, no state change beyond the mode index (MVP)
		bda.SetVideoMode(m.GetReg8(GroupA, HalfLow))
	case 0x01: // set cursor shape - ignored
	case 0x02: // set cursor position
		page := m.GetReg8(GroupB, HalfHigh)
		if page == 0xFF {
			page = bda.ActivePage()
		}
		row := m.GetReg8(GroupD, HalfHigh)
		col := m.GetReg8(GroupD, HalfLow)
		bda.SetCursorPos(page, (uint16(row)<<8)|uint16(col))
	case 0x06:
		scrollUp(m, bda, mode)
	case 0x08: // read char/attr at (BL row, BH col) on page 0
		row := m.GetReg8(GroupB, HalfLow)
		col := m.GetReg8(GroupB, HalfHigh)
		addr := mode.TextBufferBase + (uint32(row)*80+uint32(col))*bytesPerChar
		m.SetReg8(GroupA, HalfLow, m.PeekU8(addr))
		m.SetReg8(GroupB, HalfHigh, m.PeekU8(addr+1))
	case 0x0F: // get video mode
		m.SetReg8(GroupA, HalfHigh, uint8(bda.TextColumns()))
		m.SetReg8(GroupA, HalfLow, TextModeIndex)
		m.SetReg8(GroupB, HalfHigh, bda.ActivePage())
	case 0x11:
		if m.GetReg8(GroupA, HalfLow) == 0x30 {
			m.SetFlag(FlagCarry, true) // font info: not implemented
		} else {
			return ShouldReturn, FatalError{Reason: "unknown video 0x11 func: " + hex8(m.GetReg8(GroupA, HalfLow))}
		}
	case 0x12:
		if m.GetReg8(GroupB, HalfLow) == 0x30 {
			// select vertical resolution - ignored
		} else {
			return ShouldReturn, FatalError{Reason: "unknown video 0x12 func: " + hex8(m.GetReg8(GroupB, HalfLow))}
		}
	default:
		return ShouldReturn, FatalError{Reason: "unknown video function: " + hex8(m.GetReg8(GroupA, HalfHigh))}
	}
	return ShouldReturn, nil
}

// scrollUp implements INT 10h/06h. AL=0 fills the rectangle with
// (char=0, attr=BH). Otherwise every row copies from y+1 regardless of the
// requested line count - this matches the original's observed (likely
// buggy) behavior rather than a corrected "shift by N lines"; pinned by
// TestScrollUpAlwaysShiftsByOneLine.
func scrollUp(m Machine8086, bda *BDA, mode VideoMode) {
	numLines := m.GetReg8(GroupA, HalfLow)
	blankAttr := m.GetReg8(GroupB, HalfHigh)
	top := m.GetReg8(GroupC, HalfHigh)
	left := m.GetReg8(GroupC, HalfLow)
	bottom := m.GetReg8(GroupD, HalfHigh)
	right := m.GetReg8(GroupD, HalfLow)

	pageOrigin := mode.pageOriginAddress(bda.ActivePage())

	blank := func(row, col uint8) {
		addr := mode.charAddress(pageOrigin, row, col)
		m.PokeU8(addr, 0)
		m.PokeU8(addr+1, blankAttr)
	}

	if numLines == 0 {
		for y := top; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				blank(y, x)
			}
		}
		return
	}

	for y := top; y <= bottom-numLines; y++ {
		for x := left; x <= right; x++ {
			from := mode.charAddress(pageOrigin, y+1, x)
			to := mode.charAddress(pageOrigin, y, x)
			m.PokeU16(to, m.PeekU16(from))
		}
	}
	for y := bottom - numLines + 1; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			blank(y, x)
		}
	}
}
