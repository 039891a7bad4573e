package landing

type pointerEventKind uint8

const (
	pointerMove pointerEventKind = iota
	pointerLeave
)

// pointerEvent is a single injected pointer event in surface coordinates.
type pointerEvent struct {
	kind pointerEventKind
	x, y float64
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next frame's Update.
func (b *Backdrop) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, pointerEvent{kind: pointerMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the surface.
func (b *Backdrop) InjectLeave() {
	b.injectQueue = append(b.injectQueue, pointerEvent{kind: pointerLeave})
}

// InjectSweep queues moves linearly interpolated from (fromX, fromY) to
// (toX, toY) over the given number of frames. Minimum frames is 2.
func (b *Backdrop) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real cursor input is skipped).
func (b *Backdrop) processInjectedInput() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	switch evt.kind {
	case pointerMove:
		if b.bounds().Contains(evt.x, evt.y) {
			b.PointerMove(evt.x, evt.y)
		} else {
			b.PointerLeave()
		}
	case pointerLeave:
		b.PointerLeave()
	}
	return true
}
