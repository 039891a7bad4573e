package landing

import (
	"slices"
	"testing"
	"time"
)

func TestFrameClockAfterFunc(t *testing.T) {
	c := NewFrameClock()
	fired := false
	c.AfterFunc(100*time.Millisecond, func() { fired = true })

	c.Advance(99 * time.Millisecond)
	if fired {
		t.Fatal("fired early")
	}
	c.Advance(time.Millisecond)
	if !fired {
		t.Fatal("did not fire at due time")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", c.Pending())
	}
}

func TestFrameClockNegativeAdvance(t *testing.T) {
	c := NewFrameClock()
	c.Advance(50 * time.Millisecond)
	fired := false
	c.AfterFunc(20*time.Millisecond, func() { fired = true })

	c.Advance(-time.Second)
	if c.Now() != 50*time.Millisecond {
		t.Errorf("Now = %v, want 50ms", c.Now())
	}
	c.Advance(20 * time.Millisecond)
	if !fired {
		t.Error("timer did not fire 20ms after scheduling")
	}
}

func TestFrameClockOrder(t *testing.T) {
	c := NewFrameClock()
	var got []string
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "d") })
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(time.Second)
	if want := []string{"a", "b", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFrameClockChainedWithinAdvance(t *testing.T) {
	c := NewFrameClock()
	var at []time.Duration
	c.AfterFunc(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.AfterFunc(200*time.Millisecond, func() { at = append(at, c.Now()) })
	})

	c.Advance(time.Second)
	want := []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}
	if !slices.Equal(at, want) {
		t.Errorf("fired at %v, want %v", at, want)
	}
	if c.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", c.Now())
	}
}

func TestFrameClockStop(t *testing.T) {
	c := NewFrameClock()
	fired := false
	tm := c.AfterFunc(time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("Stop = false for a pending timer")
	}
	if tm.Stop() {
		t.Error("second Stop = true")
	}
	c.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestFrameClockEvery(t *testing.T) {
	c := NewFrameClock()
	n := 0
	tm := c.Every(time.Second, func() { n++ })
	c.Advance(3500 * time.Millisecond)
	if n != 3 {
		t.Errorf("ticks = %d, want 3", n)
	}
	tm.Stop()
	c.Advance(5 * time.Second)
	if n != 3 {
		t.Errorf("ticks = %d after Stop, want 3", n)
	}
}

func TestFrameClockEveryZeroInterval(t *testing.T) {
	c := NewFrameClock()
	n := 0
	c.Every(0, func() { n++ })
	c.Advance(10 * time.Millisecond)
	if n != 11 {
		t.Errorf("ticks = %d, want 11 (at 0ms..10ms)", n)
	}
}
