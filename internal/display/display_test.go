package display

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{name: "no key", code: -1, want: NoKey},
		{name: "escape", code: 27, want: KeyEscape},
		{name: "escape with modifier bits", code: 0x100000 | 27, want: KeyEscape},
		{name: "letter", code: 'q', want: 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskKey(tt.code))
		})
	}
}

func TestWindow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("skipping test - no display available")
	}

	w := NewWindow("")
	defer w.Close()

	assert.Equal(t, DefaultTitle, w.Title())

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	assert.NoError(t, w.Show(&frame))
	assert.Equal(t, NoKey, w.PollKey(time.Millisecond))
	assert.True(t, w.IsOpen())
}

func TestWindow_ImplementsSink(t *testing.T) {
	var _ Sink = (*Window)(nil)
}
