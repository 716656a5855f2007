package renderer

import (
	"fmt"
	"io"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/glcall"
	"github.com/richinsley/gomandel/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Offscreen is an RGBA8 framebuffer whose contents can be read back.
type Offscreen struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
	pixels    []byte
}

func NewOffscreen(width, height int) (*Offscreen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", width, height)
	}
	o := &Offscreen{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
	}

	gl.GenFramebuffers(1, &o.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.GenTextures(1, &o.textureID)
	gl.BindTexture(gl.TEXTURE_2D, o.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, o.textureID, 0)
	glcall.Check("FramebufferTexture2D")
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		o.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete: 0x%x", status)
	}
	return o, nil
}

func (o *Offscreen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, int32(o.width), int32(o.height))
	glcall.Check("BindFramebuffer")
}

func (o *Offscreen) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	glcall.Check("BindFramebuffer")
}

// ReadPixels returns the bound framebuffer's contents, bottom row first.
// The slice is reused by the next call.
func (o *Offscreen) ReadPixels() []byte {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(o.width), int32(o.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(o.pixels))
	glcall.Check("ReadPixels")
	return o.pixels
}

func (o *Offscreen) Destroy() {
	if o.textureID != 0 {
		gl.DeleteTextures(1, &o.textureID)
		o.textureID = 0
	}
	if o.fbo != 0 {
		gl.DeleteFramebuffers(1, &o.fbo)
		o.fbo = 0
	}
}

// encoderArgs returns the ffmpeg input and output arguments for raw RGBA
// frames read back bottom row first.
func encoderArgs(options *options.Options) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", *options.Width, *options.Height),
		"framerate": *options.FPS,
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// Record renders a zoom flight toward the configured center and encodes
// it with ffmpeg. Each frame is drawn, read back and then zoomed once.
func (r *Renderer) Record() error {
	opts := r.options
	if *opts.Frames <= 0 || *opts.FPS <= 0 {
		return fmt.Errorf("invalid recording: %d frames at %d fps", *opts.Frames, *opts.FPS)
	}
	width, height := *opts.Width, *opts.Height
	off, err := NewOffscreen(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer off.Destroy()

	// the hidden window's framebuffer may not match the requested size
	r.controller.OnFramebufferSize(width, height)
	screen := r.controller.ScreenSize()
	center := mgl32.Vec2{float32(*opts.CenterX), float32(*opts.CenterY)}
	r.engine.SetOrigin(center)
	zoom := float32(*opts.Zoom)

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := encoderArgs(opts)
	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.Record, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *opts.FFmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		pipeReader.CloseWithError(err)
		errc <- err
	}()

	slog.Info("recording", "file", *opts.Record, "frames", *opts.Frames, "fps", *opts.FPS, "size", fmt.Sprintf("%dx%d", width, height))
	var writeErr error
	for i := 0; i < *opts.Frames; i++ {
		off.Bind()
		r.draw()
		pixels := off.ReadPixels()
		off.Unbind()

		if _, writeErr = pipeWriter.Write(pixels); writeErr != nil {
			writeErr = fmt.Errorf("writing frame %d: %w", i, writeErr)
			break
		}
		r.engine.Zoom(zoom, screen.Mul(0.5), screen)
		if i%*opts.FPS == 0 {
			slog.Debug("recorded", "frame", i, "scale", r.engine.State().Scale[0])
		}
	}
	pipeWriter.Close()

	if runErr := <-errc; runErr != nil {
		return fmt.Errorf("ffmpeg failed: %w", runErr)
	}
	return writeErr
}
