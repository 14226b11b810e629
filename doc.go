// Package coolmode is a cursor-triggered particle effect for [Ebitengine]
// interfaces.
//
// Hold a pointer (mouse button or touch) on an [Element] and it sprays
// spinning particles that arc up and fall off the bottom of the viewport.
// The effect runs on its own frame loop, independent of how the host draws
// the rest of the UI.
//
// # Quick start
//
//	stage := coolmode.NewStage(800, 600)
//	button := stage.NewElement("hire-me", coolmode.Rect{X: 320, Y: 260, Width: 160, Height: 48})
//	detach := coolmode.Attach(button, coolmode.Config{})
//	defer detach()
//
//	coolmode.Run(stage, coolmode.RunConfig{Title: "Cool mode", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call [Stage.Update],
// [Stage.Draw] and [Stage.Layout] from it.
//
// # Stage, elements and the overlay
//
// A [Stage] plays the part of a document: it owns the [timing.EventLoop]
// every frame callback and timeout runs on, the viewport size, and the
// interactive elements pointer events are dispatched to. Particles from every
// attached engine render into one shared [Overlay] that the stage creates on
// the first [Attach] and destroys when the last engine detaches.
//
// # Particles
//
// Each attachment owns at most [Config.Limit] particles. While the pointer is
// held down, one particle is emitted per [Config.EmissionDelay]; particle
// physics run at a capped [Config.FrameRate] regardless of the display's
// refresh rate. Particles are procedural circles with a random hue
// ([Circle]) or a circular crop of an image ([Image], [ImageFile]).
//
// Stage methods are not safe for concurrent use; drive a stage from the
// goroutine that runs the game loop.
//
// [Ebitengine]: https://ebitengine.org
package coolmode
