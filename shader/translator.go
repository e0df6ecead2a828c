package shader

import (
	"context"
	"fmt"

	gst "github.com/richinsley/goshadertranslator"
)

// Translator converts WebGL2-flavored GLSL ES into desktop GLSL 330. The
// translation output includes the original-to-mapped uniform name table,
// which callers pass straight to renderer.NewProgram as the declared input
// set.
type Translator struct {
	t *gst.ShaderTranslator
}

func NewTranslator(ctx context.Context) (*Translator, error) {
	t, err := gst.NewShaderTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("shader: starting translator: %w", err)
	}
	return &Translator{t: t}, nil
}

// Fragment translates a fragment shader and returns the GLSL 330 source plus
// the mapping from each declared uniform's original name to the name the
// translated program actually exports.
func (tr *Translator) Fragment(source string) (string, map[string]string, error) {
	out, err := tr.t.TranslateShader(source, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", nil, fmt.Errorf("shader: fragment translation failed: %w", err)
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}
