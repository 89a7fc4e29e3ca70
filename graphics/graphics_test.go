package graphics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/laxtube/model_problems/Euler1D"
	"github.com/notargets/laxtube/model_problems/Euler1D/sod_shock_tube"
)

func sodSnapshot(t *testing.T, index int) *Euler1D.Snapshot {
	g, err := Euler1D.NewDefaultGrid(32, 1)
	require.NoError(t, err)
	g.InitializeSOD()
	g.Time = 0.1
	return g.Sample(index, 10*index)
}

func TestFrameWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	fw, err := NewFrameWriter(dir)
	require.NoError(t, err)
	fw.Exact = sod_shock_tube.NewSOD
	for i := 0; i < 2; i++ {
		require.NoError(t, fw.Observe(sodSnapshot(t, i)))
	}
	require.Len(t, fw.Written, 2)
	assert.Equal(t, filepath.Join(dir, "frame_0001.png"), fw.Written[1])
	data, err := os.ReadFile(fw.Written[0])
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestCSVWriter(t *testing.T) {
	dir := t.TempDir()
	cw, err := NewCSVWriter(dir)
	require.NoError(t, err)
	require.NoError(t, cw.Observe(sodSnapshot(t, 3)))
	require.Equal(t, []string{filepath.Join(dir, "frame_0003.csv")}, cw.Written)

	f, err := os.Open(cw.Written[0])
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 33)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{"0", "1", "1", "0"}, records[1][:4])
	eint, err := strconv.ParseFloat(records[1][4], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, eint, 1.e-14)
	assert.Equal(t, "1", records[32][0])
	assert.Equal(t, "0.125", records[32][1])
}

func TestASCIIPlot(t *testing.T) {
	out := ASCIIPlot(sodSnapshot(t, 0))
	assert.True(t, strings.Contains(out, "density, t ="))
	assert.Greater(t, len(strings.Split(out, "\n")), 15)
}
