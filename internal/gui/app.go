package gui

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/engine"
	"github.com/san-kum/attractor/internal/render"
)

const (
	winWidth  = 1280
	winHeight = 720
	winTitle  = "Lorenz Attractor"

	// A frame longer than this lags the simulation instead of stepping
	// it forward in a burst.
	maxFrameSeconds = 0.25
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// App owns the window, the render pipelines and the simulation engine, and
// drives them with a fixed-timestep loop.
type App struct {
	cfg    *config.Config
	eng    *engine.Engine
	log    zerolog.Logger
	window *glfw.Window
	camera *render.Camera

	trails *render.TrailPipeline
	heads  *render.HeadPipeline

	dragging   bool
	lastX      float64
	lastY      float64
	titleTimer float32
	frames     int
}

func New(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		eng:    engine.New(cfg),
		log:    log,
		camera: render.NewCamera(),
	}
}

// Run opens the window and blocks until it closes.
func (a *App) Run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(winWidth, winHeight, winTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	a.window = window
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	a.log.Info().
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Msg("opengl context ready")

	a.trails, err = render.NewTrailPipeline()
	if err != nil {
		return err
	}
	defer a.trails.Close()

	a.heads, err = render.NewHeadPipeline()
	if err != nil {
		return err
	}
	defer a.heads.Close()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)

	window.SetKeyCallback(a.onKey)
	window.SetMouseButtonCallback(a.onMouseButton)
	window.SetCursorPosCallback(a.onCursorPos)
	window.SetScrollCallback(a.onScroll)

	a.loop()
	return nil
}

func (a *App) loop() {
	var accumulator float32
	previous := glfw.GetTime()

	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		frame := float32(now - previous)
		previous = now
		if frame > maxFrameSeconds {
			frame = maxFrameSeconds
		}

		accumulator += frame
		step := a.cfg.TickSeconds()
		for accumulator >= step {
			a.eng.Tick()
			accumulator -= step
			// Tick rate can change mid-frame via the keyboard.
			step = a.cfg.TickSeconds()
		}

		if a.cfg.RotateCamera {
			a.camera.AutoRotate(float32(a.cfg.CameraSpeed))
		}

		a.draw()
		a.updateTitle(frame)

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (a *App) draw() {
	width, height := a.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := a.camera.View()
	proj := a.camera.Projection(width, height)

	for _, p := range a.eng.Particles() {
		a.heads.Draw(p.Position, p.HeadColor, view, proj)
	}

	if err := a.trails.Draw(a.eng.Buffer(), view, proj, a.eng.Now()); err != nil {
		a.log.Warn().Err(err).Msg("skipping trail frame")
	}
}

func (a *App) updateTitle(frame float32) {
	a.frames++
	a.titleTimer += frame
	if a.titleTimer < 0.5 {
		return
	}
	if a.cfg.ShowDiagnostics {
		fps := float32(a.frames) / a.titleTimer
		a.window.SetTitle(fmt.Sprintf("%s | %.0f fps | %d segments", winTitle, fps, a.eng.SegmentCount()))
	} else {
		a.window.SetTitle(winTitle)
	}
	a.frames = 0
	a.titleTimer = 0
}

func (a *App) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyQ, glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyC:
		a.eng.Clear()
		a.log.Info().Msg("trails cleared")
	case glfw.KeyS, glfw.KeyEnter:
		a.eng.Start()
		a.log.Info().Int("particles", a.cfg.NumOfTrails).Msg("simulation restarted")
	case glfw.KeyR:
		a.cfg.RotateCamera = !a.cfg.RotateCamera
		a.cfg.Touch()
	case glfw.KeyD:
		a.cfg.ShowDiagnostics = !a.cfg.ShowDiagnostics
		a.cfg.Touch()
	case glfw.KeyUp:
		a.cfg.TrailLifetime += 10
		a.cfg.Touch()
	case glfw.KeyDown:
		if a.cfg.TrailLifetime > 10 {
			a.cfg.TrailLifetime -= 10
			a.cfg.Touch()
		}
	}
}

func (a *App) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		a.dragging = true
		a.lastX, a.lastY = a.window.GetCursorPos()
	case glfw.Release:
		a.dragging = false
	}
}

func (a *App) onCursorPos(_ *glfw.Window, x, y float64) {
	if !a.dragging {
		return
	}
	a.camera.Orbit(float32(x-a.lastX), float32(y-a.lastY))
	a.lastX, a.lastY = x, y
}

func (a *App) onScroll(_ *glfw.Window, _ float64, yoff float64) {
	a.camera.Zoom(float32(yoff))
}
