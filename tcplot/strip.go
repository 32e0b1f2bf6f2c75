// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tcplot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/thermocouple/thermocouple"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// StripOpts represents the options available for a Strip.
type StripOpts struct {
	// X is the number of cells.
	X       int
	Palette *ansi256.Palette
	// W is where the strip is written to. Defaults to stdout.
	W io.Writer

	_ struct{}
}

// Strip is a one line heat bar rendered on the console.
type Strip struct {
	w       io.Writer
	l       int
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
}

// NewStrip returns a Strip that displays at the console.
func NewStrip(opts *StripOpts) (*Strip, error) {
	if opts.X <= 0 {
		return nil, errors.New("tcplot: strip needs at least one cell")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Strip{
		w:       w,
		l:       opts.X,
		palette: *p,
		pixels:  make([]byte, 3*opts.X),
	}, nil
}

func (s *Strip) String() string {
	return fmt.Sprintf("Strip{%d}", s.l)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and ends the line.
func (s *Strip) Halt() error {
	_, err := s.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (s *Strip) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (s *Strip) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: s.l, Y: 1}}
}

// Draw implements display.Drawer.
func (s *Strip) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(s.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	deltaX3 := 3 * (r.Min.X - srcR.Min.X)
	for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
		r16, g16, b16, _ := src.At(sX, srcR.Min.Y).RGBA()
		dX3 := 3*sX + deltaX3
		s.pixels[dX3] = byte(r16 >> 8)
		s.pixels[dX3+1] = byte(g16 >> 8)
		s.pixels[dX3+2] = byte(b16 >> 8)
	}
	return s.refresh()
}

func (s *Strip) refresh() error {
	s.buf.Reset()
	_, _ = s.buf.WriteString("\r\033[0m")
	for i := 0; i < s.l; i++ {
		c := color.NRGBA{s.pixels[3*i], s.pixels[3*i+1], s.pixels[3*i+2], 255}
		_, _ = io.WriteString(&s.buf, s.palette.Block(c))
	}
	_, _ = s.buf.WriteString("\033[0m ")
	_, err := s.buf.WriteTo(s.w)
	return err
}

// Heat returns the color for a position f in [0, 1] of a scale going from
// blue (cold) to red (hot). f is clamped.
func Heat(f float64) color.NRGBA {
	f = math.Max(0, math.Min(1, f))
	return color.NRGBA{R: uint8(math.Round(255 * f)), G: 0, B: uint8(math.Round(255 * (1 - f))), A: 255}
}

// Gradient returns a 1 pixel high image of n cells. Cell i shows the heat
// color of the voltage c produces at the i-th of n equally spaced temperatures
// from the bottom of its domain, the same scale Bar uses.
func Gradient(c *thermocouple.Curve, n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, 1))
	t := c.Table()
	for i := 0; i < n; i++ {
		d := t.MinDegrees + (t.MaxDegrees-t.MinDegrees)*float64(i)/float64(n)
		mv, err := c.DegreesToMillivolts(d)
		if err != nil {
			// d stays within [MinDegrees, MaxDegrees).
			panic(err)
		}
		img.SetNRGBA(i, 0, Heat((mv-t.MinMillivolts)/(t.MaxMillivolts-t.MinMillivolts)))
	}
	return img
}

// Bar returns a 1 pixel high image of n cells lit in proportion to the
// thermoelectric voltage of degrees within the millivolt domain of c, the way
// an analog meter on the junction would read.
func Bar(c *thermocouple.Curve, degrees float64, n int) (*image.NRGBA, error) {
	mv, err := c.DegreesToMillivolts(degrees)
	if err != nil {
		return nil, err
	}
	t := c.Table()
	f := (mv - t.MinMillivolts) / (t.MaxMillivolts - t.MinMillivolts)
	lit := int(math.Round(f * float64(n)))
	img := image.NewNRGBA(image.Rect(0, 0, n, 1))
	hot := Heat(f)
	for i := 0; i < n; i++ {
		if i < lit {
			img.SetNRGBA(i, 0, hot)
		} else {
			img.SetNRGBA(i, 0, color.NRGBA{A: 255})
		}
	}
	return img, nil
}

var _ display.Drawer = &Strip{}
var _ fmt.Stringer = &Strip{}
