package landing

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	W      int     `json:"w,omitempty"`
	H      int     `json:"h,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events, clicks, resizes and screenshots
// across frames, for demos and visual checks. Attach to a Backdrop via
// SetScript.
//
// Actions: "move" {x,y}, "leave", "sweep" {x,y,toX,toY,frames},
// "click" {target} (element id in the attached Document), "resize" {w,h},
// "wait" {frames}, "screenshot" {label}.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "leave", "sweep", "click", "resize", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its step method runs at the start of every
// Update.
func (b *Backdrop) SetScript(s *Script) {
	b.script = s
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(b *Backdrop) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		b.Screenshot(st.Label)
	case "move":
		b.InjectMove(st.X, st.Y)
	case "leave":
		b.InjectLeave()
	case "sweep":
		b.InjectSweep(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "click":
		if b.doc == nil {
			logf("script: click %q without a document", st.Target)
			break
		}
		if el := b.doc.ByID(st.Target); el != nil {
			el.Click()
		} else {
			logf("script: click: no element %q", st.Target)
		}
	case "resize":
		b.Resize(st.W, st.H)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(b.injectQueue) == 0 {
		s.done = true
	}
}
