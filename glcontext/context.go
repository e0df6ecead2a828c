// Package glcontext is the desktop backend: a GLFW window implementing
// graphics.Context and a go-gl implementation of graphics.API.
package glcontext

import (
	"log/slog"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glkit/glscope/graphics"
	"github.com/glkit/glscope/options"
)

var _ graphics.Context = (*Context)(nil)

// Context wraps a GLFW window and tracks mouse state for GetMouseInput.
type Context struct {
	window          *glfw.Window
	lastMouseClickX float64
	lastMouseClickY float64
	mouseWasDown    bool
	// Functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

// New creates and initializes a GLFW window. share, if non-nil, must be a
// *glfw.Window whose context the new window shares objects with.
func New(opts *options.Options, visible bool, share interface{}) (*Context, error) {
	sharecontext, _ := share.(*glfw.Window)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, sharecontext)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// RegisterKeyCallback registers a function to be called when key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window for context-sharing cases.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// GetMouseInput retrieves and processes the current mouse state:
// x, y, clickX, clickY in framebuffer pixels, click coordinates negated
// while the button is up.
func (c *Context) GetMouseInput() [4]float32 {
	var mouseData [4]float32
	if c.window == nil {
		return mouseData
	}

	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}

	cursorX, cursorY := c.window.GetCursorPos()
	pixelX := cursorX * scaleX
	pixelY := cursorY * scaleY

	mouseX := float32(pixelX)
	mouseY := float32(fbHeight) - float32(pixelY)

	const mouseLeft = 0
	isMouseDown := c.window.GetMouseButton(mouseLeft) == glfw.Press
	if isMouseDown && !c.mouseWasDown {
		c.lastMouseClickX = pixelX
		c.lastMouseClickY = pixelY
	}
	c.mouseWasDown = isMouseDown

	clickX := float32(c.lastMouseClickX)
	clickY := float32(fbHeight) - float32(c.lastMouseClickY)
	if !isMouseDown {
		clickX = -clickX
		clickY = -clickY
	}

	mouseData = [4]float32{mouseX, mouseY, clickX, clickY}
	return mouseData
}

// Init initializes GLFW. Must be called from the main thread.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	slog.Info("glcontext: GLFW initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	slog.Info("glcontext: GLFW terminated")
}
