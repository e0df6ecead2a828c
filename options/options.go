package options

// Options configures the viewer and its window.
type Options struct {
	Width  int
	Height int
	Title  string
	// FragmentPath optionally names a WebGL2-ES fragment shader file that is
	// run through shader.Translator at startup instead of the built-in one.
	FragmentPath string
}

// Default returns the options the demo viewer starts from.
func Default() *Options {
	return &Options{
		Width:  1280,
		Height: 720,
		Title:  "glscope",
	}
}
