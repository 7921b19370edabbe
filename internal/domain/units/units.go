// Package units converts between the trade units of fan scallops:
// kilograms, individual shells, bundles (manojos) and mallas.
package units

import "math"

// Conversions holds the trade ratios. Values may be overridden from reference data.
type Conversions struct {
	ShellsPerKg     float64 `json:"conchitasPorKg"`
	ShellsPerBundle float64 `json:"conchitasPorManojo"`
	BundlesPerMalla float64 `json:"manojosPorMalla"`
	ShellsPerMalla  float64 `json:"conchitasPorMalla"`
	KgPerMalla      float64 `json:"kgPorMalla"`
}

// Default returns the standard ratios: 1 malla = 2.6 kg = 288 shells = 3 bundles of 96.
func Default() Conversions {
	return Conversions{
		ShellsPerKg:     111,
		ShellsPerBundle: 96,
		BundlesPerMalla: 3,
		ShellsPerMalla:  288,
		KgPerMalla:      2.6,
	}
}

// Valid reports whether every ratio is positive and a bundle holds a whole number of shells.
func (c Conversions) Valid() bool {
	return c.ShellsPerKg > 0 && c.ShellsPerBundle > 0 && c.BundlesPerMalla > 0 && c.ShellsPerMalla > 0 && c.KgPerMalla > 0 &&
		c.ShellsPerBundle == math.Trunc(c.ShellsPerBundle)
}

// Breakdown expresses one quantity in every unit.
type Breakdown struct {
	Kg      float64 `json:"kg"`
	Shells  float64 `json:"shells"`
	Bundles float64 `json:"bundles"`
	Mallas  float64 `json:"mallas"`
}

// FromKg converts a harvested weight through the malla ratio, the path used for
// presentation revenue: kg -> mallas -> shells -> bundles.
func (c Conversions) FromKg(kg float64) Breakdown {
	mallas := kg / c.KgPerMalla
	shells := mallas * c.ShellsPerMalla
	return Breakdown{
		Kg:      kg,
		Mallas:  mallas,
		Shells:  shells,
		Bundles: shells / c.ShellsPerBundle,
	}
}

// FromShells converts a shell count.
func (c Conversions) FromShells(shells float64) Breakdown {
	return Breakdown{
		Kg:      shells / c.ShellsPerKg,
		Shells:  shells,
		Bundles: shells / c.ShellsPerBundle,
		Mallas:  shells / c.ShellsPerMalla,
	}
}

// FromBundles converts a bundle count.
func (c Conversions) FromBundles(bundles float64) Breakdown {
	b := c.FromShells(bundles * c.ShellsPerBundle)
	b.Bundles = bundles
	return b
}

// FromMallas converts a malla count.
func (c Conversions) FromMallas(mallas float64) Breakdown {
	return Breakdown{
		Kg:      mallas * c.KgPerMalla,
		Shells:  mallas * c.ShellsPerMalla,
		Bundles: mallas * c.BundlesPerMalla,
		Mallas:  mallas,
	}
}
