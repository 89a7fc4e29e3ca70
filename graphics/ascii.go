package graphics

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/notargets/laxtube/model_problems/Euler1D"
)

const asciiWidth = 80

// ASCIIPlot draws the density of a snapshot for the terminal
func ASCIIPlot(snap *Euler1D.Snapshot) string {
	return asciigraph.Plot(snap.Rho,
		asciigraph.Height(15),
		asciigraph.Width(asciiWidth),
		asciigraph.Caption(fmt.Sprintf("density, t = %8.5f, step %d", snap.Time, snap.Step)),
	)
}
