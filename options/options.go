package options

import "flag"

// Options configures a session. Fields are flag-backed pointers.
type Options struct {
	Width   *int
	Height  *int
	VSync   *bool
	Watch   *bool // rebuild the program when the shader sources change
	Verbose *bool // debug-level logging
	// Recording options. Record names the output video; empty means
	// interactive mode.
	Record     *string
	Frames     *int
	FPS        *int
	Zoom       *float64 // scale factor applied once per recorded frame
	CenterX    *float64
	CenterY    *float64
	FFmpegPath *string
}

// Register defines every option on fs.
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Width:      fs.Int("width", 640, "Initial window width"),
		Height:     fs.Int("height", 640, "Initial window height"),
		VSync:      fs.Bool("vsync", true, "Lock the frame rate to the display refresh"),
		Watch:      fs.Bool("watch", false, "Reload shaders when the source files change"),
		Verbose:    fs.Bool("verbose", false, "Enable debug logging"),
		Record:     fs.String("record", "", "Record a zoom flight to this video file instead of opening a window"),
		Frames:     fs.Int("frames", 600, "Number of frames to record"),
		FPS:        fs.Int("fps", 60, "Frames per second of the recording"),
		Zoom:       fs.Float64("zoom", 0.99, "Zoom factor applied per recorded frame"),
		CenterX:    fs.Float64("center-x", -0.743643887037151, "Real part of the recorded zoom target"),
		CenterY:    fs.Float64("center-y", 0.13182590420533, "Imaginary part of the recorded zoom target"),
		FFmpegPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Recording reports whether a recording was requested.
func (o *Options) Recording() bool {
	return o.Record != nil && *o.Record != ""
}
