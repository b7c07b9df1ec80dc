package pseudodos

import "testing"

func TestLookupVideoModeFindsTextMode(t *testing.T) {
	mode, ok := LookupVideoMode(TextModeIndex)
	if !ok {
		t.Fatal("LookupVideoMode(TextModeIndex) not found")
	}
	if mode.TextColumns != 80 || mode.TextRows != 25 {
		t.Errorf("mode = %+v, want 80x25 text", mode)
	}
}

func TestLookupVideoModeRejectsUnsupportedIndex(t *testing.T) {
	if _, ok := LookupVideoMode(0x13); ok {
		t.Error("LookupVideoMode(0x13) = found, want not found (graphics modes are a non-goal)")
	}
}

func TestCharAddressAdvancesByStride(t *testing.T) {
	mode := DefaultVideoMode()
	origin := mode.pageOriginAddress(0)

	a := mode.charAddress(origin, 0, 0)
	b := mode.charAddress(origin, 0, 1)
	if b-a != bytesPerChar {
		t.Errorf("charAddress col stride = %d, want %d", b-a, bytesPerChar)
	}

	c := mode.charAddress(origin, 1, 0)
	wantRowStride := uint32(mode.TextColumns) * bytesPerChar
	if c-a != wantRowStride {
		t.Errorf("charAddress row stride = %d, want %d", c-a, wantRowStride)
	}
}

func TestPageOriginAddressAdvancesByPageBytes(t *testing.T) {
	mode := DefaultVideoMode()
	p0 := mode.pageOriginAddress(0)
	p1 := mode.pageOriginAddress(1)
	if p1-p0 != uint32(mode.TextPageBytes) {
		t.Errorf("page stride = %d, want %d", p1-p0, mode.TextPageBytes)
	}
}
