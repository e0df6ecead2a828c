package graphics

// Context is the windowing side of the backend: the surface the API draws to
// and the event loop around it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// GetMouseInput returns the current mouse state: x, y, clickX, clickY
	GetMouseInput() [4]float32
}
