package heal

// Format describes the channel layout and transfer encoding of float pixel data.
//
// Linear formats store light intensity; perceptual formats (the primed names,
// "R'G'B'A") store gamma-encoded values using the sRGB transfer curve. Healing
// always runs in FormatRGBAPerceptual.
type Format uint8

const (
	// FormatY is linear grayscale.
	FormatY Format = iota

	// FormatYA is linear grayscale with alpha.
	FormatYA

	// FormatRGB is linear RGB.
	FormatRGB

	// FormatRGBA is linear RGB with alpha.
	FormatRGBA

	// FormatYPerceptual is gamma-encoded grayscale (Y').
	FormatYPerceptual

	// FormatYAPerceptual is gamma-encoded grayscale with alpha (Y'A).
	FormatYAPerceptual

	// FormatRGBPerceptual is gamma-encoded RGB (R'G'B').
	FormatRGBPerceptual

	// FormatRGBAPerceptual is gamma-encoded RGB with alpha (R'G'B'A).
	// This is the working format of the healing pipeline.
	FormatRGBAPerceptual

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of components per pixel, including alpha.
	Channels int

	// HasAlpha indicates if the last component is alpha.
	HasAlpha bool

	// IsGrayscale indicates a single color component.
	IsGrayscale bool

	// IsPerceptual indicates gamma-encoded color components.
	// Alpha is always linear.
	IsPerceptual bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatY:              {Channels: 1, IsGrayscale: true},
	FormatYA:             {Channels: 2, HasAlpha: true, IsGrayscale: true},
	FormatRGB:            {Channels: 3},
	FormatRGBA:           {Channels: 4, HasAlpha: true},
	FormatYPerceptual:    {Channels: 1, IsGrayscale: true, IsPerceptual: true},
	FormatYAPerceptual:   {Channels: 2, HasAlpha: true, IsGrayscale: true, IsPerceptual: true},
	FormatRGBPerceptual:  {Channels: 3, IsPerceptual: true},
	FormatRGBAPerceptual: {Channels: 4, HasAlpha: true, IsPerceptual: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of components per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsPerceptual returns true if color components are gamma-encoded.
func (f Format) IsPerceptual() bool {
	return f.Info().IsPerceptual
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// WithAlpha returns the variant of f that carries an alpha channel.
func (f Format) WithAlpha() Format {
	switch f {
	case FormatY:
		return FormatYA
	case FormatRGB:
		return FormatRGBA
	case FormatYPerceptual:
		return FormatYAPerceptual
	case FormatRGBPerceptual:
		return FormatRGBAPerceptual
	default:
		return f
	}
}

// Perceptual returns the gamma-encoded variant of f.
func (f Format) Perceptual() Format {
	if f < FormatYPerceptual {
		return f + FormatYPerceptual
	}
	return f
}

// Linear returns the linear-light variant of f.
func (f Format) Linear() Format {
	if f >= FormatYPerceptual && f < formatCount {
		return f - FormatYPerceptual
	}
	return f
}

// String returns the babl-style name of the format, e.g. "R'G'B'A float".
func (f Format) String() string {
	switch f {
	case FormatY:
		return "Y float"
	case FormatYA:
		return "YA float"
	case FormatRGB:
		return "RGB float"
	case FormatRGBA:
		return "RGBA float"
	case FormatYPerceptual:
		return "Y' float"
	case FormatYAPerceptual:
		return "Y'A float"
	case FormatRGBPerceptual:
		return "R'G'B' float"
	case FormatRGBAPerceptual:
		return "R'G'B'A float"
	default:
		return "Unknown"
	}
}
