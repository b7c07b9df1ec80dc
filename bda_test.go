package pseudodos

import "testing"

func TestBDAInitSeedsFixedConstants(t *testing.T) {
	m := newFakeMachine()
	bda := NewBDA(m)
	bda.Init(DefaultVideoMode())

	if got := bda.EquipmentWord(); got != bdaInitEquipmentWord {
		t.Errorf("EquipmentWord() = 0x%04X, want 0x%04X", got, bdaInitEquipmentWord)
	}
	if got := bda.MemoryKiB(); got != bdaInitMemoryKiB {
		t.Errorf("MemoryKiB() = %d, want %d", got, bdaInitMemoryKiB)
	}
	if got := bda.VideoMode(); got != TextModeIndex {
		t.Errorf("VideoMode() = %d, want %d", got, TextModeIndex)
	}
	if got := bda.TextColumns(); got != 80 {
		t.Errorf("TextColumns() = %d, want 80", got)
	}
	if got := bda.TextRows(); got != 25 {
		t.Errorf("TextRows() = %d, want 25", got)
	}
	if got := bda.BytesPerPage(); got != 0x1000 {
		t.Errorf("BytesPerPage() = 0x%X, want 0x1000", got)
	}
}

func TestBDACursorPositionRoundTrips(t *testing.T) {
	m := newFakeMachine()
	bda := NewBDA(m)

	bda.SetCursorPos(0, (10<<8)|20)
	bda.SetCursorPos(7, (1<<8)|2)

	if got := bda.CursorPos(0); got != (10<<8)|20 {
		t.Errorf("CursorPos(0) = 0x%04X, want 0x%04X", got, (10<<8)|20)
	}
	if got := bda.CursorPos(7); got != (1<<8)|2 {
		t.Errorf("CursorPos(7) = 0x%04X, want 0x%04X", got, (1<<8)|2)
	}
}

// TestBDATimerWraps pins the timer counter's wraparound behavior:
// incrementing across the 32-bit boundary wraps back to zero rather than
// overflowing.
func TestBDATimerWraps(t *testing.T) {
	m := newFakeMachine()
	bda := NewBDA(m)

	bda.SetTimerCounter(0xFFFFFFFE)
	TickTimer(m) // -> 0xFFFFFFFF
	TickTimer(m) // -> wraps to 0x00000000
	if got := bda.TimerCounter(); got != 0 {
		t.Errorf("TimerCounter() after wrap = 0x%08X, want 0", got)
	}
	TickTimer(m)
	if got := bda.TimerCounter(); got != 1 {
		t.Errorf("TimerCounter() after one more tick = 0x%08X, want 1", got)
	}
}

func TestTickTimerRequestsUserTimerInterrupt(t *testing.T) {
	m := newFakeMachine()
	TickTimer(m)
	if !m.hasPending || m.pendingInterrupt != interruptUserTimerTick {
		t.Errorf("expected INT 0x1C requested, got pending=%v index=0x%02X", m.hasPending, m.pendingInterrupt)
	}
}
