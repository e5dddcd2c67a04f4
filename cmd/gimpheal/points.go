package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/heal/paint"
)

var errNoPoints = errors.New("no points")

// parsePoints reads a stroke as "X,Y[,P];X,Y[,P];...". Pressure defaults
// to 1.
func parsePoints(s string) ([]paint.Coords, error) {
	var pts []paint.Coords
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		c, err := parsePoint(item)
		if err != nil {
			return nil, err
		}
		pts = append(pts, c)
	}
	if len(pts) == 0 {
		return nil, errNoPoints
	}
	return pts, nil
}

// parsePoint reads a single "X,Y[,P]" triple.
func parsePoint(s string) (paint.Coords, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return paint.Coords{}, fmt.Errorf("point %q: want X,Y or X,Y,P", s)
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return paint.Coords{}, fmt.Errorf("point %q: %w", s, err)
		}
		vals[i] = v
	}

	c := paint.At(vals[0], vals[1])
	if len(vals) == 3 {
		if vals[2] < 0 || vals[2] > 1 {
			return paint.Coords{}, fmt.Errorf("point %q: pressure must be in [0,1]", s)
		}
		c.Pressure = vals[2]
	}
	return c, nil
}

func parseAlign(s string) (paint.Align, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return paint.AlignNone, nil
	case "aligned":
		return paint.AlignAligned, nil
	case "registered":
		return paint.AlignRegistered, nil
	case "fixed":
		return paint.AlignFixed, nil
	}
	return 0, fmt.Errorf("--align must be none, aligned, registered or fixed, got %q", s)
}

func parseMode(s string) (paint.ApplicationMode, error) {
	switch strings.ToLower(s) {
	case "soft", "":
		return paint.BrushSoft, nil
	case "hard":
		return paint.BrushHard, nil
	case "pressure":
		return paint.BrushPressure, nil
	}
	return 0, fmt.Errorf("--mode must be soft, hard or pressure, got %q", s)
}

func parseDynamics(s string) (paint.Dynamics, error) {
	switch strings.ToLower(s) {
	case "fixed", "":
		return paint.FixedDynamics{}, nil
	case "pressure":
		return paint.PressureDynamics{PressureOpacity: true, PressureHardness: true}, nil
	case "fade":
		return paint.FadeDynamics{}, nil
	}
	return nil, fmt.Errorf("--dynamics must be fixed, pressure or fade, got %q", s)
}

func parseFadeUnit(s string) (paint.FadeUnit, error) {
	switch strings.ToLower(s) {
	case "px", "pixels", "":
		return paint.FadePixels, nil
	case "percent", "%":
		return paint.FadePercent, nil
	}
	return 0, fmt.Errorf("--fade-unit must be px or percent, got %q", s)
}

func parseRepeat(s string) (paint.Repeat, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return paint.RepeatNone, nil
	case "sawtooth":
		return paint.RepeatSawtooth, nil
	case "triangular", "triangle":
		return paint.RepeatTriangular, nil
	}
	return 0, fmt.Errorf("--fade-repeat must be none, sawtooth or triangular, got %q", s)
}
