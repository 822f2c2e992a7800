package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoBoard/internal/overlay"
	"GeoBoard/internal/state"
)

func TestPDFOutput(t *testing.T) {
	box := &overlay.Box{
		ID: "b1", X: 50, Y: 50, MaxW: 740, MaxH: 540, W: 80, H: 32,
		Content: "Hi\nthere", LastValid: "Hi\nthere", FontSize: 20, Color: black, Z: 1,
	}
	sc := scene([]state.Stroke{threePointStroke()}, []*overlay.Box{box})

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, sc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "PDF magic header")
	assert.Greater(t, buf.Len(), 500)
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, SavePDF(path, scene([]state.Stroke{threePointStroke()}, nil)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
