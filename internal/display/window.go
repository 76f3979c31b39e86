package display

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"sinecloud/internal/render"
)

// Window shows a Framebuffer in a desktop window through an OpenGL 4.1
// core context. It must be used from the goroutine that created it, locked
// to its OS thread.
type Window struct {
	*Framebuffer

	win   *glfw.Window
	title string
	log   *slog.Logger

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	frames      int
	lastFPSTime float64
}

var (
	_ render.Display     = (*Window)(nil)
	_ render.EventSource = (*Window)(nil)
)

// OpenWindow creates a non-resizable w x h window with a framebuffer of the
// same size. Any failure leaves glfw terminated.
func OpenWindow(w, h int, title string, log *slog.Logger) (*Window, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initialize gl: %w", err)
	}
	log.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// wait for vsync
	glfw.SwapInterval(1)

	d := &Window{
		Framebuffer: NewFramebuffer(w, h),
		win:         win,
		title:       title,
		log:         log,
		lastFPSTime: glfw.GetTime(),
	}
	if err := d.initGL(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Window) initGL() error {
	program, err := linkProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return fmt.Errorf("build quad program: %w", err)
	}
	d.program = program
	gl.UseProgram(program)

	// Image row 0 is the top of the window.
	mvp := mgl32.Ortho2D(0, 1, 1, 0)
	gl.UniformMatrix4fv(gl.GetUniformLocation(program, gl.Str("mvp\x00")), 1, false, &mvp[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vp := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vp)
	gl.VertexAttribPointer(vp, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	w, h := d.Size()
	gl.GenTextures(1, &d.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	return nil
}

// Poll processes pending window events. It reports Quit when the window was
// asked to close or Escape is held.
func (d *Window) Poll() []render.Event {
	glfw.PollEvents()
	if d.win.ShouldClose() || d.win.GetKey(glfw.KeyEscape) == glfw.Press {
		return []render.Event{render.Quit}
	}
	return nil
}

// Present uploads the framebuffer and swaps buffers.
func (d *Window) Present() error {
	fbw, fbh := d.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w, h := d.Size()
	gl.UseProgram(d.program)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(d.img.Pix))

	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	d.win.SwapBuffers()
	d.countFrame()
	return nil
}

// countFrame updates the FPS counter in the title once a second.
func (d *Window) countFrame() {
	d.frames++
	now := glfw.GetTime()
	if now-d.lastFPSTime < 1.0 {
		return
	}
	d.win.SetTitle(fmt.Sprintf("%s | FPS: %d", d.title, d.frames))
	d.log.Debug("fps", "fps", d.frames)
	d.frames = 0
	d.lastFPSTime = now
}

// Close releases GL objects, destroys the window, then shuts glfw down.
func (d *Window) Close() {
	if d.win == nil {
		return
	}
	if d.tex != 0 {
		gl.DeleteTextures(1, &d.tex)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	d.win.Destroy()
	d.win = nil
	glfw.Terminate()
}
