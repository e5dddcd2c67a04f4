// Package heal implements seamless cloning for a healing brush.
//
// # Overview
//
// Healing copies texture from a source region onto a destination region and
// blends it in so that no seam is visible. The difference between destination
// and source is relaxed under the Laplace equation: its values on the region
// border and on unmasked pixels stay fixed, the masked interior becomes
// harmonic, and the relaxed difference is added back onto the source.
//
// The solver is a red/black successive over-relaxation. It stops when the
// squared change of one sweep drops below an epsilon or after an iteration
// cap, whichever comes first. Hitting the cap is not an error; the returned
// Stats report it.
//
// # Quick Start
//
//	import "github.com/gogpu/heal"
//
//	// Float R'G'B'A buffers and an 8-bit mask.
//	src, _ := heal.NewBuffer[float32](64, 64, 4)
//	dest, _ := heal.NewBuffer[float32](64, 64, 4)
//	mask := heal.NewMask(16, 16)
//	mask.Fill(255)
//
//	r := image.Rect(10, 10, 26, 26)
//	st := heal.Region(src, r, dest, r, mask, mask.Bounds())
//	if !st.Converged {
//		// best effort result after the iteration cap
//	}
//
// # Architecture
//
// The module is organized into:
//   - Core: Buffer, Mask, Difference, Solve, Recompose, Healer
//   - paint: layers, brushes and the stroke driver of the heal tool
//   - internal: color transfer functions, blending, localized messages,
//     image file I/O and the batch worker pool
//   - cmd/gimpheal: command-line front end
//
// # Pixel Data
//
// Healing runs on 3 or 4 channel float data in the perceptual (gamma
// encoded) space. ConvertPixels and Convert move data between the formats
// a layer may store.
//
// # Logging
//
// heal logs through log/slog and is silent by default; see SetLogger.
package heal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
