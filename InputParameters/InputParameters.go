package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/laxtube/model_problems/Euler1D"
)

// Parameters obtained from the YAML input file, nil values are unset
type InputParameters1D struct {
	Title          string   `yaml:"Title"`
	NX             *int     `yaml:"NX"`
	NG             *int     `yaml:"NG"`
	XMin           *float64 `yaml:"XMin"`
	XMax           *float64 `yaml:"XMax"`
	Gamma          *float64 `yaml:"Gamma"`
	CFL            *float64 `yaml:"CFL"`
	ReferenceSpeed *float64 `yaml:"ReferenceSpeed"`
	FinalTime      *float64 `yaml:"FinalTime"`
	OutputInterval *int     `yaml:"OutputInterval"`
	ParallelDegree *int     `yaml:"ParallelDegree"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ToConfig overlays the parameters present in the file onto base, explicit
// zeros included, so that Validate sees them
func (ip *InputParameters1D) ToConfig(base Euler1D.Config) (cfg Euler1D.Config) {
	cfg = base
	setI := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setF := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setI(&cfg.NX, ip.NX)
	setI(&cfg.NG, ip.NG)
	setI(&cfg.OutputInterval, ip.OutputInterval)
	setI(&cfg.ParallelDegree, ip.ParallelDegree)
	setF(&cfg.XMin, ip.XMin)
	setF(&cfg.XMax, ip.XMax)
	setF(&cfg.Gamma, ip.Gamma)
	setF(&cfg.CFL, ip.CFL)
	setF(&cfg.ReferenceSpeed, ip.ReferenceSpeed)
	setF(&cfg.FinalTime, ip.FinalTime)
	return
}

func (ip *InputParameters1D) Print() {
	pI := func(v *int) string {
		if v == nil {
			return "unset"
		}
		return fmt.Sprintf("%d", *v)
	}
	pF := func(v *float64) string {
		if v == nil {
			return "unset"
		}
		return fmt.Sprintf("%8.5f", *v)
	}
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= NX\n", pI(ip.NX))
	fmt.Printf("[%s]\t\t\t= NG\n", pI(ip.NG))
	fmt.Printf("%s\t\t= CFL\n", pF(ip.CFL))
	fmt.Printf("%s\t\t= FinalTime\n", pF(ip.FinalTime))
	fmt.Printf("[%s]\t\t\t= OutputInterval\n", pI(ip.OutputInterval))
}
