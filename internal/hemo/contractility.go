package hemo

// DeriveMaxElastance maps the dimensionless contractility drive to an
// end-systolic elastance in mmHg/mL. Contractility is expected in
// [0.1, 1.0]; out-of-range values extrapolate linearly rather than clamp.
func DeriveMaxElastance(contractility float64) float64 {
	return 0.5 + (contractility-0.1)/0.9*4.0
}

// WithDerivedElastance returns a copy of p with MaxElastance replaced by
// the value derived from Contractility. This is a caller-side transform
// applied before a run, never inside the engine.
func (p Parameters) WithDerivedElastance() Parameters {
	p.MaxElastance = DeriveMaxElastance(p.Contractility)
	return p
}
