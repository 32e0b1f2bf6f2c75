// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tcplot

import (
	"errors"
	"fmt"
	"image"

	"github.com/GermanBionicSystems/thermocouple/thermocouple"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Direction selects which conversion is plotted.
type Direction int

const (
	// DegreesToMillivolts plots millivolts against degrees.
	DegreesToMillivolts Direction = iota
	// MillivoltsToDegrees plots degrees against millivolts.
	MillivoltsToDegrees
)

// Opts represents the options of a curve plot.
type Opts struct {
	W, H      int
	Direction Direction
	// FontSize of the labels in points. 0 disables labels.
	FontSize float64
}

// DefaultOpts is a 640x480 plot of the forward conversion.
var DefaultOpts = Opts{W: 640, H: 480, Direction: DegreesToMillivolts, FontSize: 12}

const margin = 48

// plot maps data coordinates to pixels.
type plot struct {
	w, h       float64
	xMin, xMax float64
	yMin, yMax float64
}

func (p *plot) toPixel(x, y float64) (float64, float64) {
	px := margin + (x-p.xMin)/(p.xMax-p.xMin)*(p.w-2*margin)
	py := p.h - margin - (y-p.yMin)/(p.yMax-p.yMin)*(p.h-2*margin)
	return px, py
}

func newPlot(c *thermocouple.Curve, opts *Opts) *plot {
	t := c.Table()
	last := len(t.Millivolts) - 1
	p := &plot{
		w: float64(opts.W), h: float64(opts.H),
		xMin: t.MinDegrees, xMax: t.MaxDegrees,
		yMin: t.Millivolts[0], yMax: t.Millivolts[last],
	}
	if opts.Direction == MillivoltsToDegrees {
		p.xMin, p.xMax, p.yMin, p.yMax = p.yMin, p.yMax, p.xMin, p.xMax
	}
	return p
}

// Curve plots the calibration samples of c as dots and the interpolated
// conversion, evaluated at every pixel column, as a line. If opts is nil,
// DefaultOpts is used.
func Curve(c *thermocouple.Curve, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W <= 2*margin || opts.H <= 2*margin {
		return nil, fmt.Errorf("tcplot: plot %dx%d too small", opts.W, opts.H)
	}
	if opts.Direction != DegreesToMillivolts && opts.Direction != MillivoltsToDegrees {
		return nil, errors.New("tcplot: invalid direction")
	}
	p := newPlot(c, opts)
	dc := gg.NewContext(opts.W, opts.H)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	x0, y0 := p.toPixel(p.xMin, p.yMin)
	x1, y1 := p.toPixel(p.xMax, p.yMax)
	dc.DrawLine(x0, y0, x1, y0)
	dc.DrawLine(x0, y0, x0, y1)
	dc.Stroke()

	// Interpolated curve.
	dc.SetRGB(0, 0, 0.8)
	dc.SetLineWidth(1.5)
	started := false
	for px := 0; px < opts.W-2*margin; px++ {
		x := p.xMin + (p.xMax-p.xMin)*float64(px)/float64(opts.W-2*margin)
		var y float64
		var err error
		if opts.Direction == DegreesToMillivolts {
			y, err = c.DegreesToMillivolts(x)
		} else {
			y, err = c.MillivoltsToDegrees(x)
		}
		if err != nil {
			continue
		}
		sx, sy := p.toPixel(x, y)
		if started {
			dc.LineTo(sx, sy)
		} else {
			dc.MoveTo(sx, sy)
			started = true
		}
	}
	dc.Stroke()

	// Calibration samples.
	dc.SetRGB(0.8, 0, 0)
	t := c.Table()
	for i, d := range t.Degrees() {
		x, y := d, t.Millivolts[i]
		if opts.Direction == MillivoltsToDegrees {
			x, y = y, x
		}
		sx, sy := p.toPixel(x, y)
		dc.DrawCircle(sx, sy, 2)
	}
	dc.Fill()

	if opts.FontSize > 0 {
		face, err := labelFace(opts.FontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetRGB(0, 0, 0)
		xLabel, yLabel := "degrees ("+c.Scale()+")", "millivolts"
		title := c.Name() + ": degrees to millivolts"
		if opts.Direction == MillivoltsToDegrees {
			xLabel, yLabel = yLabel, xLabel
			title = c.Name() + ": millivolts to degrees"
		}
		dc.DrawStringAnchored(title, p.w/2, margin/2, 0.5, 0.5)
		dc.DrawStringAnchored(xLabel, p.w/2, p.h-margin/2, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%g", p.xMin), x0, y0+4, 0.5, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%g", p.xMax), x1, y0+4, 0.5, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%g", p.yMin), x0-4, y0, 1, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%g", p.yMax), x0-4, y1, 1, 1)
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), margin/4, p.h/2)
		dc.DrawStringAnchored(yLabel, margin/4, p.h/2, 0.5, 0.5)
		dc.Pop()
	}
	return dc.Image(), nil
}

// SavePNG renders the curve of c and saves it to path.
func SavePNG(path string, c *thermocouple.Curve, opts *Opts) error {
	img, err := Curve(c, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tcplot: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
