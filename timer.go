// timer.go - timer tick coordinator (INT 08h)
//
// Factored out of the interrupt dispatcher so the 32-bit wrap behavior can
// be unit-tested directly without driving the full INT 08h dispatch path
// each time.
package pseudodos

// TickTimer increments the BDA's 32-bit timer counter with wraparound and
// requests the CPU dispatch INT 1Ch before its next opcode. It is invoked
// by the interrupt dispatcher on every INT 08h.
func TickTimer(m Machine8086) {
	bda := NewBDA(m)
	bda.SetTimerCounter(bda.TimerCounter() + 1)
	m.RequestInterrupt(interruptUserTimerTick)
}
