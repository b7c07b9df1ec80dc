// interrupt.go - top-level interrupt dispatcher
//
// Dispatcher is the callback this service hands to the CPU core: it
// inspects registers, mutates guest memory/registers, and returns a
// DosInterruptResult telling the CPU how to proceed. Ported in semantics
// from original_source/.../dos_event_handler.rs's DosEventHandler.
package pseudodos

const (
	interruptFatalA       = 0x02
	interruptFatalB       = 0x04
	interruptTimer        = 0x08
	interruptVideo        = 0x10
	interruptSerial       = 0x14
	interruptKeyboard     = 0x16
	interruptUserTimerTick = 0x1C
	interruptDos          = 0x21
	interruptMouse        = 0x33
)

// Dispatcher holds all the mutable state of the DOS/BIOS service layer
// that is not guest memory: the file system, key queue, port state, video
// mode, and the elapsed-time clock INT 21h/2Ch reads from.
type Dispatcher struct {
	files            *DosFileSystem
	keys             *KeyQueue
	ports            *PortIODispatcher
	videoMode        VideoMode
	secondsSinceStart func() float64
}

// NewDispatcher constructs a Dispatcher backed by a DOS file system rooted
// at hostRootDir. secondsSinceStart supplies the elapsed wall-clock time
// INT 21h/2Ch reports; pass a closure over time.Since(start).Seconds() in
// production, or a fixed value in tests.
func NewDispatcher(hostRootDir string, secondsSinceStart func() float64) *Dispatcher {
	return &Dispatcher{
		files:             NewDosFileSystem(hostRootDir),
		keys:              NewKeyQueue(),
		ports:             NewPortIODispatcher(),
		videoMode:         DefaultVideoMode(),
		secondsSinceStart: secondsSinceStart,
	}
}

// Keys exposes the key-press queue so the host frontend can push key
// events between CPU step batches.
func (d *Dispatcher) Keys() *KeyQueue { return d.keys }

// Files exposes the DOS file system, e.g. for host-side introspection in
// tests.
func (d *Dispatcher) Files() *DosFileSystem { return d.files }

// Ports exposes the port-state store, e.g. to drive
// SetCgaVerticalRetrace from the host's video retrace timer.
func (d *Dispatcher) Ports() *PortIODispatcher { return d.ports }

// HandleInterrupt is the CPU-facing handle_interrupt callback. A non-nil
// error is always a FatalError: the guest cannot safely proceed and the
// host driver must decide how to surface the abort.
func (d *Dispatcher) HandleInterrupt(m Machine8086, interruptIndex uint8) (DosInterruptResult, error) {
	switch interruptIndex {
	case interruptFatalA:
		return ShouldReturn, FatalError{Reason: "non-maskable interrupt (memory corruption)"}
	case interruptFatalB:
		return ShouldReturn, FatalError{Reason: "overflow interrupt"}
	case interruptTimer:
		TickTimer(m)
		return ShouldReturn, nil
	case interruptVideo:
		return d.handleInt10(m)
	case interruptSerial:
		return ShouldReturn, nil // recorded, no action
	case interruptKeyboard:
		return d.handleInt16(m)
	case interruptUserTimerTick:
		return ShouldReturn, nil // placeholder; real programs hook this vector
	case interruptDos:
		return d.handleInt21(m)
	case interruptMouse:
		if m.GetReg16(RegAX) == 0 {
			return ShouldReturn, nil
		}
		return ShouldReturn, FatalError{Reason: "unknown mouse function: " + hex16(m.GetReg16(RegAX))}
	default:
		return ShouldReturn, FatalError{Reason: "unknown interrupt: " + hex8(interruptIndex)}
	}
}

// HandlePortInput is the CPU-facing handle_port_input callback.
func (d *Dispatcher) HandlePortInput(port uint16) (uint16, error) {
	return d.ports.HandlePortInput(port)
}

// HandlePortOutput is the CPU-facing handle_port_output callback.
func (d *Dispatcher) HandlePortOutput(port uint16, value uint16) error {
	return d.ports.HandlePortOutput(port, value)
}
