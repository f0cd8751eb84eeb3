package interaction

// Point is one (N, M) pair on or against the capacity envelope.
// N is the axial force in kN (compression positive) and M the bending
// moment magnitude in kNm about the section mid-depth.
type Point struct {
	N float64 `json:"n"`
	M float64 `json:"m"`
}

// Step records the internal state of the section for one sampled neutral
// axis depth
type Step struct {
	X    float64 `json:"x"`     // Neutral axis depth from the compression face (mm)
	Xeff float64 `json:"x_eff"` // Stress block depth λ·x clamped to h (mm)

	Es2 float64 `json:"es2"` // Strain at the compression face layer
	Es1 float64 `json:"es1"` // Strain at the tension face layer

	Sigma2 float64 `json:"sigma2"` // MPa
	Sigma1 float64 `json:"sigma1"` // MPa

	// Forces (kN), compression positive
	Nc  float64 `json:"nc"`
	Ns2 float64 `json:"ns2"`
	Ns1 float64 `json:"ns1"`

	// Signed moment about mid-depth before taking the magnitude (kNm)
	MSigned float64 `json:"m_signed"`
}

// Point returns the envelope point produced by this step
func (s Step) Point() Point {
	m := s.MSigned
	if m < 0 {
		m = -m
	}
	return Point{N: s.Nc + s.Ns2 + s.Ns1, M: m}
}

// Envelope is the M-N capacity envelope of a section. Points are kept in
// sweep order, from full tension to full compression; joining the last
// point back to the first closes the boundary.
type Envelope struct {
	Points []Point `json:"points"`
	Steps  []Step  `json:"-"`

	PureCompression Point `json:"pure_compression"` // max N
	PureTension     Point `json:"pure_tension"`     // min N
	PureBending     Point `json:"pure_bending"`     // N closest to zero
	Balanced        Point `json:"balanced"`         // max M

	// Design values used for the sweep
	Fcd    float64 `json:"fcd"`
	Fyd    float64 `json:"fyd"`
	Lambda float64 `json:"lambda"`
	Eta    float64 `json:"eta"`
}

// KeyPoint names one of the four reference points
type KeyPoint struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Point Point  `json:"point"`
}

// KeyPoints returns the reference points in display order
func (e *Envelope) KeyPoints() []KeyPoint {
	return []KeyPoint{
		{Name: "pure_compression", Label: "Pure compression", Point: e.PureCompression},
		{Name: "balanced", Label: "Balanced (max M)", Point: e.Balanced},
		{Name: "pure_bending", Label: "Pure bending", Point: e.PureBending},
		{Name: "pure_tension", Label: "Pure tension", Point: e.PureTension},
	}
}
