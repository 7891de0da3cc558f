package testframes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	f := Frame(64, 48, 200)
	defer f.Close()

	assert.Equal(t, 64, f.Cols())
	assert.Equal(t, 48, f.Rows())
	assert.Equal(t, 3, f.Channels())

	px := f.GetVecbAt(10, 10)
	assert.Equal(t, uint8(200), px[0])
}

func TestSequence(t *testing.T) {
	frames, err := Sequence(4, 32, 24)
	require.NoError(t, err)
	defer CloseAll(frames)

	require.Len(t, frames, 4)
	for i := 1; i < len(frames); i++ {
		prev := frames[i-1].GetVecbAt(0, 0)[0]
		cur := frames[i].GetVecbAt(0, 0)[0]
		assert.Greater(t, cur, prev, "frame %d should be brighter than frame %d", i, i-1)
	}

	_, err = Sequence(0, 32, 24)
	assert.Error(t, err)
}
