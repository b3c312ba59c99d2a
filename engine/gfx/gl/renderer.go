// Package glbackend presents CPU-rendered frames through OpenGL 3.3.
package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
)

// RendererGL uploads an RGBA8 framebuffer into a texture and draws it over
// the whole viewport.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	tex     uint32
	texW    int
	texH    int
}

var _ core.Renderer = (*RendererGL)(nil)

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader("present.vert.glsl")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("present.frag.glsl")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("uFrame\x00")), 0)
	gl.UseProgram(0)

	// Core profile refuses draws without a bound VAO; positions come from
	// gl_VertexID.
	gl.GenVertexArrays(1, &r.vao)

	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Present uploads pixels, reallocating the texture when the size changes.
func (r *RendererGL) Present(pixels []byte, w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(pixels) < w*h*4 {
		return fmt.Errorf("glbackend: %d bytes for a %dx%d frame", len(pixels), w, h)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	if w != r.texW || h != r.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		r.texW, r.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glbackend: present: gl error 0x%x", code)
	}
	return nil
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("glbackend: shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("glbackend: program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
