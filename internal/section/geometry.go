package section

// Properties holds derived geometric quantities of the section
type Properties struct {
	GrossArea  float64 // Ac = b·h (mm²)
	D          float64 // Depth of As1 from the compression face (mm)
	D2         float64 // Depth of As2 from the compression face (mm)
	LeverArm   float64 // zs = d - d2 (mm)
	MidDepth   float64 // h/2, reference axis for moments (mm)
	TotalSteel float64 // As1 + As2 (mm²)
	SteelRatio float64 // ρ = (As1 + As2)/Ac
}

// EffectiveDepth returns d, the depth of the tension face layer
func (s *Section) EffectiveDepth() float64 {
	return s.H - s.Cover
}

// CompressionDepth returns d2, the depth of the compression face layer
func (s *Section) CompressionDepth() float64 {
	return s.Cover
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() Properties {
	props := Properties{
		GrossArea:  s.B * s.H,
		D:          s.EffectiveDepth(),
		D2:         s.CompressionDepth(),
		MidDepth:   s.H / 2,
		TotalSteel: s.As1 + s.As2,
	}
	props.LeverArm = props.D - props.D2
	if props.GrossArea > 0 {
		props.SteelRatio = props.TotalSteel / props.GrossArea
	}
	return props
}

// IsSymmetric reports whether both layers carry the same area
func (s *Section) IsSymmetric() bool {
	return s.As1 == s.As2
}
