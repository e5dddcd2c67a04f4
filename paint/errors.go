package paint

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/gogpu/heal/internal/locale"
)

// Stroke errors.
var (
	// ErrIndexed is returned by Stroke.Start when the destination layer is indexed.
	ErrIndexed = errors.New("paint: healing does not operate on indexed layers")

	// ErrNoSource is returned by Stroke.Start when no source was set.
	ErrNoSource = errors.New("paint: no source set")

	// ErrNotStarted is returned by Stroke.Motion outside a Start/Finish pair.
	ErrNotStarted = errors.New("paint: stroke not started")

	// ErrNilLayer is returned when a nil destination layer is supplied.
	ErrNilLayer = errors.New("paint: nil layer")

	// ErrNilBrush is returned when a nil brush is supplied.
	ErrNilBrush = errors.New("paint: nil brush")
)

// Message returns the user-facing text for err in the given language.
// Errors without a translation return err.Error().
func Message(err error, tag language.Tag) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIndexed):
		return locale.Sprintf(tag, locale.Indexed)
	case errors.Is(err, ErrNoSource):
		return locale.Sprintf(tag, locale.NoSource)
	default:
		return err.Error()
	}
}
