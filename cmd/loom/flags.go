package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/loom/internal/placement"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// parseNumbers splits a comma separated list of exactly n numbers.
func parseNumbers(raw string, n int, name string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%s: want %d comma separated numbers, got %q", name, n, raw)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseRect reads "top,left,width,height".
func parseRect(raw, name string) (placement.Rect, error) {
	v, err := parseNumbers(raw, 4, name)
	if err != nil {
		return placement.Rect{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return placement.Rect{}, fmt.Errorf("%s: width and height must not be negative", name)
	}
	return placement.Rect{Top: v[0], Left: v[1], Width: v[2], Height: v[3]}, nil
}

// parseSize reads "width,height".
func parseSize(raw, name string) (placement.Size, error) {
	v, err := parseNumbers(raw, 2, name)
	if err != nil {
		return placement.Size{}, err
	}
	if v[0] < 0 || v[1] < 0 {
		return placement.Size{}, fmt.Errorf("%s: must not be negative", name)
	}
	return placement.Size{Width: v[0], Height: v[1]}, nil
}

// parsePoint reads "x,y".
func parsePoint(raw, name string) (placement.Point, error) {
	v, err := parseNumbers(raw, 2, name)
	if err != nil {
		return placement.Point{}, err
	}
	return placement.Point{X: v[0], Y: v[1]}, nil
}

// terminalSize is the size of the terminal on stdout, or 80x24 when stdout
// is not a terminal.
func terminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
