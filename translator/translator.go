// Package translator converts WebGL2 shader sources to desktop GLSL.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	once       sync.Once
	translator *gst.ShaderTranslator
	initErr    error
)

// GetTranslator returns the process-wide translator, starting it on first
// use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr != nil {
			initErr = fmt.Errorf("starting shader translator: %w", initErr)
		}
	})
	return translator, initErr
}

// Translate converts an ESSL 3.00 source for stage ("vertex" or
// "fragment") to GLSL 4.10. names maps each declared variable to the name
// it carries in the output.
func Translate(source, stage string) (code string, names map[string]string, err error) {
	t, err := GetTranslator()
	if err != nil {
		return "", nil, err
	}
	sh, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	names = make(map[string]string, len(sh.Variables))
	for name, v := range sh.Variables {
		names[name] = v.MappedName
	}
	return sh.Code, names, nil
}
