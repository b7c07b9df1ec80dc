// result.go - the interrupt dispatcher's contract back to the CPU driver
package pseudodos

// DosInterruptResult tells the CPU driver what to do once HandleInterrupt
// returns.
type DosInterruptResult int

const (
	// ShouldReturn resumes the CPU at the next instruction; this is the
	// default outcome for almost every interrupt.
	ShouldReturn DosInterruptResult = iota
	// ShouldReturnAndWaitForEvents resumes the CPU but asks the host driver
	// to yield to its event pump first (INT 21h/2Ch uses this to let
	// real-time pace advance).
	ShouldReturnAndWaitForEvents
	// ShouldBlockForKeypress tells the CPU driver NOT to advance past the
	// INT opcode; it must re-invoke the dispatcher once the host delivers a
	// key (INT 16h/00h with an empty key queue).
	ShouldBlockForKeypress
)

func (r DosInterruptResult) String() string {
	switch r {
	case ShouldReturn:
		return "ShouldReturn"
	case ShouldReturnAndWaitForEvents:
		return "ShouldReturnAndWaitForEvents"
	case ShouldBlockForKeypress:
		return "ShouldBlockForKeypress"
	default:
		return "DosInterruptResult(unknown)"
	}
}
