package landing

import (
	"strconv"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SessionKeyIntroShown marks that the intro already ran in this session.
const SessionKeyIntroShown = "introAnimationShown"

// Element ids and classes the intro binds to.
const (
	IntroContainerID = "heroWordSequence"
	IntroVideoID     = "videoIntro"
	IntroWordClass   = "sequence-word"
	classWordExit    = "exit"
)

const (
	introStartDelay    = 300 * time.Millisecond
	wordOverlap        = 200 * time.Millisecond
	wordDuration       = 700 * time.Millisecond
	collapseDelay      = 300 * time.Millisecond
	containerHideDelay = 500 * time.Millisecond
	videoHold          = 1500 * time.Millisecond
	videoFade          = 800 * time.Millisecond

	videoFadeAnimation = "introFadeOut 0.8s ease forwards"
)

// IntroState is a state of the intro sequence.
type IntroState uint8

const (
	IntroPending    IntroState = iota // waiting for the first word
	IntroRevealing                    // revealing words; see Index
	IntroCollapsing                   // words done, video intro playing
	IntroDone                         // finished, skipped or suppressed
)

func (s IntroState) String() string {
	switch s {
	case IntroPending:
		return "pending"
	case IntroRevealing:
		return "revealing"
	case IntroCollapsing:
		return "collapsing"
	case IntroDone:
		return "done"
	default:
		return "IntroState(" + strconv.Itoa(int(s)) + ")"
	}
}

// IntroSequence is the once-per-session word reveal shown over the hero.
// Transitions are driven by a Scheduler; every scheduled step checks the
// state first, so steps left over after Skip do nothing.
type IntroSequence struct {
	container *Element
	video     *Element // optional
	words     []*Element
	sched     Scheduler

	state    IntroState
	revealed int

	fade         *gween.Tween
	videoOpacity float64
}

// StartIntro binds the intro to doc and starts it. When the session already
// shows the intro as seen, the container and video are hidden immediately
// and nothing is scheduled. It returns false when the container or the words
// are missing from the page.
func StartIntro(doc *Document, session SessionStore, sched Scheduler) (*IntroSequence, bool) {
	container := doc.ByID(IntroContainerID)
	words := doc.ByClass(IntroWordClass)
	if container == nil || len(words) == 0 {
		return nil, false
	}
	s := &IntroSequence{
		container: container,
		video:     doc.ByID(IntroVideoID),
		words:     words,
		sched:     sched,
	}

	if _, shown := session.Get(SessionKeyIntroShown); shown {
		container.AddClass(ClassHidden)
		if s.video != nil {
			s.video.AddClass(ClassHidden)
		}
		s.state = IntroDone
		return s, true
	}
	session.Set(SessionKeyIntroShown, "true")

	if s.video != nil {
		s.setVideoOpacity(0)
		s.video.SetStyle("visibility", "hidden")
	}
	container.OnClick(func(*Element) { s.Skip() })
	sched.AfterFunc(introStartDelay, s.showNext)
	return s, true
}

// State returns the current state.
func (s *IntroSequence) State() IntroState {
	return s.state
}

// Revealed returns how many words have been revealed so far.
func (s *IntroSequence) Revealed() int {
	return s.revealed
}

// VideoOpacity returns the video intro's current opacity.
func (s *IntroSequence) VideoOpacity() float64 {
	return s.videoOpacity
}

// Skip hides everything at once and ends the sequence.
func (s *IntroSequence) Skip() {
	s.container.AddClass(ClassCollapsed)
	s.container.AddClass(ClassHidden)
	if s.video != nil {
		s.video.AddClass(ClassHidden)
	}
	s.fade = nil
	s.state = IntroDone
}

// Update advances the video fade-out by dt seconds.
func (s *IntroSequence) Update(dt float32) {
	if s.fade == nil || s.state == IntroDone {
		return
	}
	v, _ := s.fade.Update(dt)
	s.setVideoOpacity(float64(v))
}

func (s *IntroSequence) showNext() {
	if s.state == IntroDone {
		return
	}
	s.state = IntroRevealing

	if s.revealed > 0 {
		prev := s.words[s.revealed-1]
		prev.RemoveClass(ClassActive)
		prev.AddClass(classWordExit)
	}

	if s.revealed < len(s.words) {
		s.sched.AfterFunc(wordOverlap, func() {
			if s.state == IntroDone {
				return
			}
			s.words[s.revealed].AddClass(ClassActive)
			s.revealed++
			s.sched.AfterFunc(wordDuration, s.showNext)
		})
		return
	}
	s.sched.AfterFunc(collapseDelay, s.collapse)
}

func (s *IntroSequence) collapse() {
	if s.state == IntroDone {
		return
	}
	s.state = IntroCollapsing
	s.container.AddClass(ClassCollapsed)

	if s.video != nil {
		s.setVideoOpacity(1)
		s.video.SetStyle("visibility", "visible")
		s.video.SetStyle("animation", "none")
		s.sched.AfterFunc(videoHold, s.fadeVideo)
	}
	s.sched.AfterFunc(containerHideDelay, func() {
		if s.state == IntroDone {
			return
		}
		s.container.AddClass(ClassHidden)
		if s.video == nil {
			s.state = IntroDone
		}
	})
}

func (s *IntroSequence) fadeVideo() {
	if s.state == IntroDone {
		return
	}
	s.video.SetStyle("animation", videoFadeAnimation)
	s.fade = gween.New(1, 0, float32(videoFade.Seconds()), ease.InOutSine)
	s.sched.AfterFunc(videoFade, func() {
		if s.state == IntroDone {
			return
		}
		s.fade = nil
		s.setVideoOpacity(0)
		s.video.AddClass(ClassHidden)
		s.state = IntroDone
	})
}

func (s *IntroSequence) setVideoOpacity(v float64) {
	s.videoOpacity = v
	s.video.SetStyle("opacity", strconv.FormatFloat(v, 'f', -1, 64))
}
