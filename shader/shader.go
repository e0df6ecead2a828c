// Package shader carries the built-in GLSL sources for the quad pipeline and
// the WebGL2 translation path for user-supplied fragment shaders.
package shader

// Shader-side names of the built-in pipeline's uniforms.
const (
	UniformTransform = "u_transform"
	UniformColor     = "u_color"
	UniformTime      = "u_time"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexSourceGL = `#version 410 core
layout (location = 0) in vec2 in_pos;
out vec2 frag_uv;
uniform mat4 u_transform;
void main() {
    frag_uv = in_pos * 0.5 + 0.5;
    gl_Position = u_transform * vec4(in_pos, 0.0, 1.0);
}
`

const fragmentSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform vec4  u_color;
uniform float u_time;
void main() {
    float pulse = 0.75 + 0.25 * sin(u_time * 2.0);
    fragColor = vec4(u_color.rgb * pulse, u_color.a);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexSourceGLES = `#version 300 es
layout (location = 0) in vec2 in_pos;
out vec2 frag_uv;
uniform mat4 u_transform;
void main() {
    frag_uv = in_pos * 0.5 + 0.5;
    gl_Position = u_transform * vec4(in_pos, 0.0, 1.0);
}
`

const fragmentSourceGLES = `#version 300 es
precision mediump float;
in vec2 frag_uv;
out vec4 fragColor;
uniform vec4  u_color;
uniform float u_time;
void main() {
    float pulse = 0.75 + 0.25 * sin(u_time * 2.0);
    fragColor = vec4(u_color.rgb * pulse, u_color.a);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

func VertexSource(isGLES bool) string {
	if isGLES {
		return vertexSourceGLES
	}
	return vertexSourceGL
}

func FragmentSource(isGLES bool) string {
	if isGLES {
		return fragmentSourceGLES
	}
	return fragmentSourceGL
}

// Inputs returns the built-in pipeline's declared uniform set.
func Inputs() []string {
	return []string{UniformTransform, UniformColor, UniformTime}
}
