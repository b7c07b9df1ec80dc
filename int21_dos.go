// int21_dos.go - INT 21h DOS services
package pseudodos

const ivtEntryBytes = 4

// handleInt21 implements the subset of INT 21h DOS services this VM layer
// supports. Success clears carry and returns the handle/count/position in
// AX (or DX:AX for seek); failure sets carry and returns the numeric DOS
// error code in AX.
func (d *Dispatcher) handleInt21(m Machine8086) (DosInterruptResult, error) {
	switch m.GetReg8(GroupA, HalfHigh) {
	case 0x25:
		d.setInterruptVector(m, m.GetReg8(GroupA, HalfLow))
	case 0x2C:
		d.getSystemTime(m)
		return ShouldReturnAndWaitForEvents, nil
	case 0x33:
		m.SetReg8(GroupD, HalfLow, 0)
	case 0x35:
		d.getInterruptVector(m, m.GetReg8(GroupA, HalfLow))
	case 0x3C:
		d.dosCreate(m)
	case 0x3D:
		d.dosOpen(m)
	case 0x3F:
		d.dosRead(m)
	case 0x42:
		d.dosSeek(m)
	case 0x44:
		d.dosIoctl(m)
	default:
		return ShouldReturn, FatalError{Reason: "unknown DOS interrupt: " + hex8(m.GetReg8(GroupA, HalfHigh))}
	}
	return ShouldReturn, nil
}

// setInterruptVector implements INT 21h/25h: write DX:DS to IVT slot AL.
func (d *Dispatcher) setInterruptVector(m Machine8086, slot uint8) {
	entry := uint32(slot) * ivtEntryBytes
	m.PokeU16(entry, m.GetReg16(RegDX))
	m.PokeU16(entry+2, m.GetReg16(RegDS))
}

// getInterruptVector implements INT 21h/35h: read IVT slot AL into BX:ES.
func (d *Dispatcher) getInterruptVector(m Machine8086, slot uint8) {
	entry := uint32(slot) * ivtEntryBytes
	m.SetReg16(RegBX, m.PeekU16(entry))
	m.SetReg16(RegES, m.PeekU16(entry+2))
}

// getSystemTime implements INT 21h/2Ch from the dispatcher's elapsed-time
// clock.
func (d *Dispatcher) getSystemTime(m Machine8086) {
	seconds := d.secondsSinceStart()
	hundredths := uint8(int(seconds*100) % 100)
	second := uint8(int(seconds) % 60)
	minute := uint8(int(seconds/60) % 60)
	hour := uint8(int(seconds/60/60) % 24)

	m.SetReg8(GroupC, HalfHigh, hour)
	m.SetReg8(GroupC, HalfLow, minute)
	m.SetReg8(GroupD, HalfHigh, second)
	m.SetReg8(GroupD, HalfLow, hundredths)
}

func (d *Dispatcher) setDosResult(m Machine8086, value uint16, err error) {
	if err != nil {
		m.SetFlag(FlagCarry, true)
		m.SetReg16(RegAX, uint16(AsDosError(err)))
		return
	}
	m.SetFlag(FlagCarry, false)
	m.SetReg16(RegAX, value)
}

func (d *Dispatcher) dosCreate(m Machine8086) {
	name := readDosFilename(m, RegDS, RegDX)
	attrs := m.GetReg16(RegCX)
	handle, err := d.files.Create(name, attrs)
	d.setDosResult(m, handle, err)
}

func (d *Dispatcher) dosOpen(m Machine8086) {
	name := readDosFilename(m, RegDS, RegDX)
	mode, ok := parseAccessMode(m.GetReg8(GroupA, HalfLow))
	if !ok {
		d.setDosResult(m, 0, DosError{ErrInvalidFileAccessMode})
		return
	}
	handle, err := d.files.Open(name, mode)
	d.setDosResult(m, handle, err)
}

func (d *Dispatcher) dosRead(m Machine8086) {
	handle := m.GetReg16(RegBX)
	count := int(m.GetReg16(RegCX))
	destAddr := int(m.SegOff(RegDS, RegDX))

	mem := m.Memory()
	if destAddr+count > len(mem) {
		d.setDosResult(m, 0, DosError{ErrInsufficientMemory})
		return
	}
	n, err := d.files.Read(handle, mem[destAddr:destAddr+count])
	d.setDosResult(m, n, err)
}

func (d *Dispatcher) dosSeek(m Machine8086) {
	handle := m.GetReg16(RegBX)
	offset := (uint32(m.GetReg16(RegCX)) << 16) | uint32(m.GetReg16(RegDX))
	origin, ok := parseSeekOrigin(m.GetReg8(GroupA, HalfLow))
	if !ok {
		d.setDosResult(m, 0, DosError{ErrInvalidData})
		return
	}

	// TODO: offset is unsigned for SeekStart; the int32 cast is harmless
	// for any realistically-sized guest file but should be a uint32 seek
	// for SeekStart once DosFileSystem.Seek takes an unsigned offset.
	pos, err := d.files.Seek(handle, int32(offset), origin)
	if err != nil {
		m.SetFlag(FlagCarry, true)
		m.SetReg16(RegAX, uint16(AsDosError(err)))
		return
	}
	m.SetFlag(FlagCarry, false)
	m.SetReg16(RegAX, uint16(pos))
	m.SetReg16(RegDX, uint16(pos>>16))
}

func (d *Dispatcher) dosIoctl(m Machine8086) {
	if m.GetReg8(GroupA, HalfLow) == 0x00 {
		m.SetReg16(RegAX, 1)
		m.SetFlag(FlagCarry, true)
	}
}

func readDosFilename(m Machine8086, seg, off Reg16) string {
	addr := m.SegOff(seg, off)
	return string(m.ReadCString(addr))
}

func parseAccessMode(al uint8) (FileAccessMode, bool) {
	switch al {
	case 0:
		return AccessReadOnly, true
	case 1:
		return AccessWriteOnly, true
	case 2:
		return AccessReadWrite, true
	default:
		return 0, false
	}
}

func parseSeekOrigin(al uint8) (SeekOrigin, bool) {
	switch al {
	case 0:
		return SeekStart, true
	case 1:
		return SeekCurrent, true
	case 2:
		return SeekEnd, true
	default:
		return 0, false
	}
}
