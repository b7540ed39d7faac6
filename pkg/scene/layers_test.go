package scene

import "testing"

func TestLayersDefault(t *testing.T) {
	l := NewLayers()
	if !l.IsEnabled(0) {
		t.Error("channel 0 should be enabled by default")
	}
	for ch := uint(1); ch < LayerCount; ch++ {
		if l.IsEnabled(ch) {
			t.Fatalf("channel %d should be disabled by default", ch)
		}
	}
}

func TestLayersEnableDisable(t *testing.T) {
	l := NewLayers()
	l.Enable(5)

	var only5 Layers
	only5.Set(5)
	if !l.Test(only5) {
		t.Error("enable(5) then test against channel 5 should be true")
	}

	l.Disable(0)
	l.Disable(5)
	if l.Test(NewLayers()) {
		t.Error("disable(0) then test against default should be false")
	}
}

func TestLayersSetToggle(t *testing.T) {
	l := NewLayers()
	l.Set(63)
	if l.Mask != 1<<63 {
		t.Errorf("Set(63): mask = %#x", l.Mask)
	}
	l.Toggle(63)
	l.Toggle(2)
	if l.Mask != 1<<2 {
		t.Errorf("Toggle: mask = %#x", l.Mask)
	}
	l.EnableAll()
	if len(l.Channels()) != LayerCount {
		t.Errorf("EnableAll: %d channels", len(l.Channels()))
	}
	l.DisableAll()
	if l.Mask != 0 || l.Test(NewLayers()) {
		t.Error("DisableAll should clear the mask")
	}
}

func TestLayersString(t *testing.T) {
	l := NewLayers()
	l.Enable(5)
	if got := l.String(); got != "layers[0 5]" {
		t.Errorf("String() = %q", got)
	}
}

func TestLayersChannelOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Enable(64) should panic")
		}
	}()
	l := NewLayers()
	l.Enable(64)
}
