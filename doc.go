// Package landing is the interactive layer of a marketing landing page,
// built on [Ebitengine].
//
// It provides the animated hero backdrop (particles that drift, link up and
// react to the pointer, plus slowly spinning code symbols), a small page
// element model that features toggle classes on, a frame-driven scheduler,
// and the page features themselves: the once-per-session intro word
// sequence, the mobile menu, reveal-on-scroll, floating testimonials, FAQ
// items and the back-to-top button. The contact form lives in the contact
// subpackage.
//
// # Quick start
//
// The simplest way to show the backdrop is [Run], which creates a window and
// game loop for you:
//
//	b := landing.NewBackdrop(landing.ConfigForWidth(1280), nil)
//	landing.Run(b, landing.RunConfig{
//		Title: "Hero", Width: 1280, Height: 720,
//	})
//
// [Backdrop] implements [ebiten.Game], so it can also be embedded in a game
// of your own. For headless use, call [Backdrop.Resize] and
// [Backdrop.Step] with any [Canvas]; [RecordingCanvas] captures the drawing
// operations.
//
// # Scheduling
//
// Features never start goroutines or sleep. Deferred steps go through a
// [Scheduler]; [FrameClock] is the single-threaded implementation, advanced
// once per frame:
//
//	clock := landing.NewFrameClock()
//	b.SetClock(clock)
//	intro, _ := landing.StartIntro(doc, session, clock)
//
// [Ebitengine]: https://ebitengine.org
package landing
