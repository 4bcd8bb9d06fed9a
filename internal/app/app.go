// Package app owns the frame loop: it polls input, advances the camera,
// and asks the scene to draw. One thread owns all window, input, and
// render state; there is no background work.
package app

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"mug-scene/internal/camera"
	"mug-scene/internal/config"
	"mug-scene/internal/input"
	"mug-scene/internal/logger"
	"mug-scene/internal/scene"
)

// Scroll nudges movement speed alongside zoom, floored so the camera
// never stalls completely.
const (
	speedScaleStep  = 0.1
	speedScaleFloor = 0.1
)

// App ties the window, input, camera, and scene together and runs the
// frame loop.
type App struct {
	window *glfw.Window
	inputs *input.Manager
	cam    *camera.Camera
	scene  *scene.Scene

	speedScale float32
	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// New wires the app together. The window must already have a current GL
// context; the scene must already be built.
func New(window *glfw.Window, cfg *config.Config, cam *camera.Camera, sc *scene.Scene) *App {
	inputs := input.NewManager()
	inputs.Install(window)

	a := &App{
		window:     window,
		inputs:     inputs,
		cam:        cam,
		scene:      sc,
		speedScale: 1.0,
		fpsLimiter: NewFPSLimiter(cfg.Graphics.FPSLimit),
		lastTime:   time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		sc.Resize(width, height)
	})

	return a
}

// Run drives the frame loop until the window closes or the exit key is
// pressed.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()

	a.processInput(dt)
	a.render()

	a.window.SwapBuffers()

	// Flag frames that blew the 60 FPS budget.
	if d := time.Since(startTick); d > 16*time.Millisecond {
		logger.Warn("slow frame", zap.Duration("duration", d))
	}

	a.inputs.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()
}

func (a *App) processInput(dt float64) {
	if a.inputs.JustPressed(input.ActionExit) {
		a.window.SetShouldClose(true)
		return
	}

	if a.inputs.JustPressed(input.ActionToggleProjection) {
		a.scene.ToggleProjection()
		logger.Debug("projection toggled", zap.Int("mode", int(a.scene.ProjectionMode())))
	}

	// Look before move so the frame's movement uses the fresh basis.
	dx, dy := a.inputs.DrainCursorDelta()
	if dx != 0 || dy != 0 {
		a.cam.ProcessMouseMovement(float32(dx), float32(dy))
	}

	if scroll := a.inputs.DrainScrollDelta(); scroll != 0 {
		a.cam.ProcessMouseScroll(float32(scroll))

		a.speedScale += float32(scroll) * speedScaleStep
		if a.speedScale < speedScaleFloor {
			a.speedScale = speedScaleFloor
		}
	}

	distance := a.cam.MovementSpeed * float32(dt) * a.speedScale
	if a.inputs.IsActive(input.ActionMoveForward) {
		a.cam.ProcessKeyboard(camera.Forward, distance)
	}
	if a.inputs.IsActive(input.ActionMoveBackward) {
		a.cam.ProcessKeyboard(camera.Backward, distance)
	}
	if a.inputs.IsActive(input.ActionMoveLeft) {
		a.cam.ProcessKeyboard(camera.Left, distance)
	}
	if a.inputs.IsActive(input.ActionMoveRight) {
		a.cam.ProcessKeyboard(camera.Right, distance)
	}
	if a.inputs.IsActive(input.ActionMoveUp) {
		a.cam.ProcessKeyboard(camera.Up, distance)
	}
	if a.inputs.IsActive(input.ActionMoveDown) {
		a.cam.ProcessKeyboard(camera.Down, distance)
	}
}

func (a *App) render() {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.scene.Render(a.cam.ViewMatrix(), a.cam.Position, a.cam.Zoom)
}
