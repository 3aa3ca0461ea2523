package pulse

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/gogpu/naga"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrShaderCompile = errors.New("compile shader")

// LoadShaderSource reads a side loaded shader file.
func LoadShaderSource(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}

	return string(buf), nil
}

// ValidateShader compiles the WGSL source with naga and checks that it declares
// the given vertex and fragment entry points. It catches shader errors before
// they reach the driver, which reports them asynchronously.
func ValidateShader(label, source, vertexEntry, fragmentEntry string) error {
	if _, err := naga.Compile(source); err != nil {
		return fmt.Errorf("%w %q: %w", ErrShaderCompile, label, err)
	}

	if !hasEntryPoint(source, "vertex", vertexEntry) {
		return fmt.Errorf("%w %q: no @vertex entry point %q", ErrShaderCompile, label, vertexEntry)
	}

	if !hasEntryPoint(source, "fragment", fragmentEntry) {
		return fmt.Errorf("%w %q: no @fragment entry point %q", ErrShaderCompile, label, fragmentEntry)
	}

	return nil
}

func hasEntryPoint(source, stage, name string) bool {
	if name == "" {
		return false
	}

	re := regexp.MustCompile(`@` + stage + `\s+fn\s+` + regexp.QuoteMeta(name) + `\s*\(`)
	return re.MatchString(source)
}

func compileShaderModule(ctx *Context, label, source string) (*wgpu.ShaderModule, error) {
	module, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      label,
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: source},
	})

	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrShaderCompile, label, err)
	}

	return module, nil
}
