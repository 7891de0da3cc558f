package detector

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseLine(hands int, points int) string {
	var b strings.Builder
	b.WriteString(`{"hands":[`)
	for h := 0; h < hands; h++ {
		if h > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"points":[`)
		for i := 0; i < points; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"x":%g,"y":%g,"z":%g}`, float64(i)/100, float64(h)/10, -0.01)
		}
		b.WriteString(`],"handedness":"Left","score":0.93}`)
	}
	b.WriteString("]}\n")
	return b.String()
}

func TestParseResponse(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		hands, err := parseResponse([]byte("{\"hands\":[]}\n"))
		require.NoError(t, err)
		assert.Empty(t, hands)
	})

	t.Run("two hands", func(t *testing.T) {
		hands, err := parseResponse([]byte(responseLine(2, NumLandmarks)))
		require.NoError(t, err)
		require.Len(t, hands, 2)

		assert.Equal(t, "Left", hands[1].Handedness)
		assert.Equal(t, 0.93, hands[1].Score)
		assert.Equal(t, Point3D{X: 0.2, Y: 0.1, Z: -0.01}, hands[1].Points[PinkyTip])
	})

	t.Run("short hand rejected", func(t *testing.T) {
		_, err := parseResponse([]byte(responseLine(1, 5)))
		assert.ErrorContains(t, err, "has 5 landmarks")
	})

	t.Run("service error", func(t *testing.T) {
		_, err := parseResponse([]byte(`{"error":"cannot reshape array"}`))
		assert.ErrorContains(t, err, "cannot reshape array")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseResponse([]byte("not json\n"))
		assert.ErrorContains(t, err, "parse response")
	})
}

func TestMediaPipeProvider_Args(t *testing.T) {
	p := &MediaPipeProvider{
		config: Config{
			StaticMode:      true,
			MaxHands:        1,
			MinConfidence:   0.7,
			MinTrackingConf: 0.25,
		},
		scriptPath: "/opt/scripts/" + ScriptName,
	}

	assert.Equal(t, []string{
		"/opt/scripts/" + ScriptName,
		"--max-hands", "1",
		"--min-detection-confidence", "0.7",
		"--min-tracking-confidence", "0.25",
		"--static",
	}, p.args())

	p.config.StaticMode = false
	assert.NotContains(t, p.args(), "--static")
}

func TestMediaPipeProvider_CloseBeforeStart(t *testing.T) {
	p := &MediaPipeProvider{config: DefaultConfig()}
	assert.NoError(t, p.Close())
}
