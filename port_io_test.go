package pseudodos

import "testing"

func TestCgaVerticalRetraceTogglesStatusBits(t *testing.T) {
	d := NewPortIODispatcher()

	d.SetCgaVerticalRetrace(true)
	status, err := d.HandlePortInput(portCgaStatus)
	if err != nil {
		t.Fatalf("HandlePortInput(status) = %v", err)
	}
	if status&cgaStatusVerticalRetraceBit == 0 {
		t.Errorf("status = 0x%02X, want vertical retrace bit set", status)
	}

	// Reading the status port clears vertical retrace and toggles the
	// horizontal bit (port_io.go HandlePortInput/SetCgaVerticalRetrace).
	status2, err := d.HandlePortInput(portCgaStatus)
	if err != nil {
		t.Fatalf("HandlePortInput(status) 2nd = %v", err)
	}
	if status2&cgaStatusVerticalRetraceBit != 0 {
		t.Errorf("status2 = 0x%02X, want vertical retrace bit cleared after read", status2)
	}
}

func TestCgaHorizontalBitTogglesOnEachClear(t *testing.T) {
	d := NewPortIODispatcher()

	d.SetCgaVerticalRetrace(false)
	first := d.state.cgaStatus & cgaStatusHorizontalToggleBit
	d.SetCgaVerticalRetrace(false)
	second := d.state.cgaStatus & cgaStatusHorizontalToggleBit

	if first == second {
		t.Errorf("horizontal toggle bit did not flip across two clears: 0x%X then 0x%X", first, second)
	}
}

func TestJoystickPortReportsUnpopulated(t *testing.T) {
	d := NewPortIODispatcher()
	v, err := d.HandlePortInput(portJoystick)
	if err != nil {
		t.Fatalf("HandlePortInput(joystick) = %v", err)
	}
	if v != joystickUnpopulated {
		t.Errorf("joystick value = 0x%02X, want 0x%02X", v, joystickUnpopulated)
	}
}

func TestKeyboardControllerPortRoundTrips(t *testing.T) {
	d := NewPortIODispatcher()
	if err := d.HandlePortOutput(portKeyboardController, 0x42); err != nil {
		t.Fatalf("HandlePortOutput = %v", err)
	}
	v, err := d.HandlePortInput(portKeyboardController)
	if err != nil {
		t.Fatalf("HandlePortInput = %v", err)
	}
	if v != 0x42 {
		t.Errorf("keyboard controller port = 0x%02X, want 0x42", v)
	}
}

func TestUnknownInputPortIsFatal(t *testing.T) {
	d := NewPortIODispatcher()
	_, err := d.HandlePortInput(0x9999)
	if _, ok := err.(FatalError); !ok {
		t.Errorf("err = %T (%v), want FatalError", err, err)
	}
}

func TestUnknownOutputPortIsFatal(t *testing.T) {
	d := NewPortIODispatcher()
	err := d.HandlePortOutput(0x9999, 0)
	if _, ok := err.(FatalError); !ok {
		t.Errorf("err = %T (%v), want FatalError", err, err)
	}
}
