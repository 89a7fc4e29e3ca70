package graphics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/notargets/laxtube/model_problems/Euler1D"
)

var CSVHeader = []string{"x", "rho", "p", "v", "eint"}

// CSVWriter writes every snapshot to OutputDir/frame_NNNN.csv
type CSVWriter struct {
	OutputDir string
	Written   []string
}

func NewCSVWriter(outputDir string) (cw *CSVWriter, err error) {
	if err = os.MkdirAll(outputDir, 0755); err != nil {
		return
	}
	cw = &CSVWriter{OutputDir: outputDir}
	return
}

func (cw *CSVWriter) Observe(snap *Euler1D.Snapshot) (err error) {
	fileName := filepath.Join(cw.OutputDir, fmt.Sprintf("frame_%04d.csv", snap.Index))
	var f *os.File
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)
	if err = w.Write(CSVHeader); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := range snap.X {
		if err = w.Write([]string{ff(snap.X[i]), ff(snap.Rho[i]), ff(snap.P[i]), ff(snap.V[i]), ff(snap.Eint[i])}); err != nil {
			return
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return
	}
	cw.Written = append(cw.Written, fileName)
	return
}
