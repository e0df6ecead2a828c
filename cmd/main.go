package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glkit/glscope/glcontext"
	"github.com/glkit/glscope/options"
	"github.com/glkit/glscope/renderer"
	"github.com/glkit/glscope/shader"
)

func init() {
	runtime.LockOSThread()
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// buildQuad uploads the fullscreen quad and returns its VAO.
func buildQuad() uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao
}

// set writes a uniform only when the program declares it; translated user
// shaders are free to omit the built-in ones.
func set(p *renderer.Program, name string, values ...float32) error {
	in, err := p.Input(name)
	if errors.Is(err, renderer.ErrUnknownInput) {
		return nil
	}
	if err != nil {
		return err
	}
	return in.Set(values...)
}

func main() {
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	title := flag.String("title", "glscope", "Window title")
	frag := flag.String("frag", "", "Optional WebGL2-ES fragment shader file (translated at startup)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts := options.Default()
	opts.Width = *width
	opts.Height = *height
	opts.Title = *title
	opts.FragmentPath = *frag

	if err := glcontext.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glcontext.Terminate()

	win, err := glcontext.New(opts, true, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Shutdown()
	win.MakeCurrent()

	api, err := glcontext.NewAPI()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	r := renderer.New(api)

	fragSrc := shader.FragmentSource(false)
	inputs := shader.Inputs()
	if opts.FragmentPath != "" {
		raw, err := os.ReadFile(opts.FragmentPath)
		if err != nil {
			log.Fatalf("Failed to read fragment shader: %v", err)
		}
		tr, err := shader.NewTranslator(context.Background())
		if err != nil {
			log.Fatalf("Failed to start shader translator: %v", err)
		}
		code, names, err := tr.Fragment(string(raw))
		if err != nil {
			log.Fatalf("Fragment shader translation failed: %v", err)
		}
		fragSrc = code
		inputs = []string{shader.UniformTransform}
		for _, mapped := range names {
			inputs = append(inputs, mapped)
		}
	}

	prog, err := r.NewProgram("quad", shader.VertexSource(false), fragSrc, inputs...)
	if err != nil {
		log.Fatalf("Failed to create shader program: %v", err)
	}
	defer prog.Release()

	quad := buildQuad()
	defer gl.DeleteVertexArrays(1, &quad)

	start := win.Time()
	for !win.ShouldClose() {
		now := float32(win.Time() - start)
		fbWidth, fbHeight := win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		err := r.Begin(prog, func(s *renderer.Session) error {
			if err := set(prog, shader.UniformTime, now); err != nil {
				return err
			}
			if err := set(prog, shader.UniformColor, 0.2, 0.6, 1.0, 1.0); err != nil {
				return err
			}

			st := s.Stack()
			driver, err := prog.Input(shader.UniformTransform)
			if err != nil {
				return err
			}
			if err := st.Use(driver); err != nil {
				return err
			}
			if err := st.RotateZ(now); err != nil {
				return err
			}
			return st.Scope(func() error {
				if err := st.Scale(0.5, 0.5, 1.0); err != nil {
					return err
				}
				gl.BindVertexArray(quad)
				gl.DrawArrays(gl.TRIANGLES, 0, 6)
				return nil
			})
		})
		if err != nil {
			log.Fatalf("Render session failed: %v", err)
		}

		win.EndFrame()
	}
}
