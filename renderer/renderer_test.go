package renderer

import (
	"flag"
	"testing"
	"time"

	"github.com/richinsley/gomandel/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestQuadCoversClipSpace(t *testing.T) {
	require.Len(t, quadVertices, 8)
	require.Len(t, quadIndices, 6)

	used := map[uint32]bool{}
	for _, i := range quadIndices {
		require.Less(t, int(i), len(quadVertices)/2)
		used[i] = true
	}
	assert.Len(t, used, 4)

	// the triangles share exactly the diagonal
	a := map[uint32]bool{quadIndices[0]: true, quadIndices[1]: true, quadIndices[2]: true}
	shared := 0
	for _, i := range quadIndices[3:] {
		if a[i] {
			shared++
		}
	}
	assert.Equal(t, 2, shared)

	for _, v := range quadVertices {
		assert.Contains(t, []float32{-1, 1}, v)
	}
}

func TestSecondsToDuration(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, secondsToDuration(0.5))
	assert.Equal(t, time.Duration(0), secondsToDuration(-1))
}

func TestEncoderArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := options.Register(fs)
	require.NoError(t, fs.Parse([]string{"-width", "320", "-height", "200", "-fps", "30", "-record", "out.mp4"}))

	in, out := encoderArgs(opts)
	assert.Equal(t, ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         "320x200",
		"framerate": 30,
	}, in)
	assert.Equal(t, "vflip", out["vf"])
	assert.Equal(t, "libx264", out["c:v"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
}

func TestNewOffscreenRejectsEmptySize(t *testing.T) {
	_, err := NewOffscreen(0, 10)
	assert.Error(t, err)
}
