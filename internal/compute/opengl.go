//go:build !nogl

package compute

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

// GLBackend dispatches one fragment-shader invocation per pixel into an
// offscreen framebuffer and reads the result back into the frame.
type GLBackend struct {
	Program uint32
	VAO     uint32
	VBO     uint32
	FBO     uint32
	Target  uint32

	width    int32
	height   int32
	readback []uint8
	loc      uniformLocations

	Initialized bool
}

type uniformLocations struct {
	resolution  int32
	position    int32
	zoom        int32
	iterations  int32
	periodicity int32
	bw          int32
}

func NewGLBackend() *GLBackend {
	return &GLBackend{}
}

func (c *GLBackend) Name() string    { return GPU }
func (c *GLBackend) Available() bool { return c.Initialized }

// Init loads the GL entry points and builds the program. An OpenGL 3.3
// context must be current on the calling thread.
func (c *GLBackend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to init opengl: %v", err)
	}

	program, err := createRenderProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	c.Program = program
	c.loc = uniformLocations{
		resolution:  gl.GetUniformLocation(program, gl.Str("resolution\x00")),
		position:    gl.GetUniformLocation(program, gl.Str("position\x00")),
		zoom:        gl.GetUniformLocation(program, gl.Str("zoom\x00")),
		iterations:  gl.GetUniformLocation(program, gl.Str("iterations\x00")),
		periodicity: gl.GetUniformLocation(program, gl.Str("periodicity\x00")),
		bw:          gl.GetUniformLocation(program, gl.Str("bw\x00")),
	}

	gl.GenVertexArrays(1, &c.VAO)
	gl.BindVertexArray(c.VAO)
	gl.GenBuffers(1, &c.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	attrib := uint32(gl.GetAttribLocation(program, gl.Str("vertex\x00")))
	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointerWithOffset(attrib, 2, gl.FLOAT, false, 0, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenFramebuffers(1, &c.FBO)
	gl.GenTextures(1, &c.Target)

	c.Initialized = true
	return nil
}

func (c *GLBackend) Render(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error {
	if !c.Initialized {
		return fmt.Errorf("%w: %s not initialized", ErrBackendUnavailable, GPU)
	}
	if err := prepare(frame, view, params); err != nil {
		return err
	}
	if err := c.ensureTarget(int32(frame.Width), int32(frame.Height)); err != nil {
		return err
	}

	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])
	blend := gl.IsEnabled(gl.BLEND)

	gl.BindFramebuffer(gl.FRAMEBUFFER, c.FBO)
	gl.Viewport(0, 0, c.width, c.height)
	gl.Disable(gl.BLEND)

	u := NewUniforms(view, params)
	gl.UseProgram(c.Program)
	gl.Uniform2f(c.loc.resolution, u.Resolution.X(), u.Resolution.Y())
	gl.Uniform2f(c.loc.position, u.Position.X(), u.Position.Y())
	gl.Uniform1f(c.loc.zoom, u.Zoom)
	gl.Uniform1i(c.loc.iterations, u.Iterations)
	gl.Uniform1i(c.loc.periodicity, u.Periodicity)
	gl.Uniform1i(c.loc.bw, u.Monochrome)

	gl.BindVertexArray(c.VAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, c.width, c.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.readback))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	if blend {
		gl.Enable(gl.BLEND)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gpu render: opengl error 0x%x", code)
	}

	// readback rows run bottom-up
	stride := frame.Width * 4
	for y := 0; y < frame.Height; y++ {
		src := c.readback[(frame.Height-1-y)*stride:]
		row := frame.Row(y)
		for x := range row {
			o := x * 4
			row[x] = color.RGBA{R: src[o], G: src[o+1], B: src[o+2], A: src[o+3]}
		}
	}
	return nil
}

func (c *GLBackend) ensureTarget(w, h int32) error {
	if w == c.width && h == c.height {
		return nil
	}

	gl.BindTexture(gl.TEXTURE_2D, c.Target)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.Target, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("gpu render: framebuffer incomplete (0x%x) at %dx%d", status, w, h)
	}

	c.width, c.height = w, h
	c.readback = make([]uint8, int(w)*int(h)*4)
	return nil
}

func (c *GLBackend) Cleanup() {
	if !c.Initialized {
		return
	}
	gl.DeleteTextures(1, &c.Target)
	gl.DeleteFramebuffers(1, &c.FBO)
	gl.DeleteBuffers(1, &c.VBO)
	gl.DeleteVertexArrays(1, &c.VAO)
	gl.DeleteProgram(c.Program)
	c.Initialized = false
}

func compileShader(source string, kind uint32, label string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", label, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func createRenderProgram(vSource, fSource string) (uint32, error) {
	vShader, err := compileShader(vSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	fShader, err := compileShader(fSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vShader)
	gl.DeleteShader(fShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link render program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}
