// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package drawing renders simple SVG views of an evaluated airframe and
// of the payload-range envelope. Coordinates are the aircraft frame
// ones, scaled to the page.
package drawing

import (
	"fmt"
	"os"
	"strings"

	"github.com/cadolab/oadkit/internal/airframe"
	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/unit"
)

const (
	pageWidth  = 900.
	pageHeight = 600.
	margin     = 40.
)

type svgBuilder struct {
	sb strings.Builder
}

func newSVG() *svgBuilder {
	b := &svgBuilder{}
	fmt.Fprintf(&b.sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		pageWidth, pageHeight, pageWidth, pageHeight)
	b.sb.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	return b
}

func (b *svgBuilder) polygon(pts [][2]float64, stroke, fill string) {
	var coords []string
	for _, p := range pts {
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", p[0], p[1]))
	}
	fmt.Fprintf(&b.sb, `<polygon points="%s" stroke="%s" fill="%s" stroke-width="1.5"/>`+"\n",
		strings.Join(coords, " "), stroke, fill)
}

func (b *svgBuilder) polyline(pts [][2]float64, stroke string) {
	var coords []string
	for _, p := range pts {
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", p[0], p[1]))
	}
	fmt.Fprintf(&b.sb, `<polyline points="%s" stroke="%s" fill="none" stroke-width="2"/>`+"\n",
		strings.Join(coords, " "), stroke)
}

func (b *svgBuilder) ellipse(cx, cy, rx, ry float64, stroke, fill string) {
	fmt.Fprintf(&b.sb, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" stroke="%s" fill="%s" stroke-width="1.5"/>`+"\n",
		cx, cy, rx, ry, stroke, fill)
}

func (b *svgBuilder) text(x, y float64, s string) {
	fmt.Fprintf(&b.sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="14">%s</text>`+"\n", x, y, s)
}

func (b *svgBuilder) bytes() []byte {
	b.sb.WriteString("</svg>\n")
	return []byte(b.sb.String())
}

// TopView renders the planform of the airframe seen from above: the
// fuselage outline, the wing including its mirror, the tails and the
// nacelles. The drawing is to scale.
func TopView(af *airframe.Airframe, title string) []byte {
	b := newSVG()

	fus := af.Fuselage
	wing := af.Wing
	htp := af.HorizontalStab

	// Scale: fuselage length along x, wing span along y.
	scale := (pageWidth - 2.*margin) / fus.Length
	if s := (pageHeight - 2.*margin) / wing.Span; s < scale {
		scale = s
	}
	// x aft maps right, y right maps down; center the body axis.
	px := func(x, y float64) [2]float64 {
		return [2]float64{margin + x*scale, 0.5*pageHeight + y*scale}
	}

	// Fuselage outline as a slender ellipse.
	b.ellipse(margin+0.5*fus.Length*scale, 0.5*pageHeight,
		0.5*fus.Length*scale, 0.5*fus.Width*scale, "black", "none")

	// Wing planform, both sides.
	for _, side := range []float64{1., -1.} {
		root, kink, tip := wing.LocRoot, wing.LocKink, wing.LocTip
		b.polygon([][2]float64{
			px(root[0], side*root[1]),
			px(kink[0], side*kink[1]),
			px(tip[0], side*tip[1]),
			px(tip[0]+wing.CTip, side*tip[1]),
			px(kink[0]+wing.CKink, side*kink[1]),
			px(root[0]+wing.CRoot, side*root[1]),
		}, "black", "none")
	}

	// Horizontal tail, both sides.
	for _, side := range []float64{1., -1.} {
		axe, tip := htp.LocAxe, htp.LocTip
		b.polygon([][2]float64{
			px(axe[0], side*axe[1]),
			px(tip[0], side*tip[1]),
			px(tip[0]+htp.CTip, side*tip[1]),
			px(axe[0]+htp.CAxe, side*axe[1]),
		}, "black", "none")
	}

	// Vertical tail appears as its root chord on the body axis.
	vtp := af.VerticalStab
	b.polyline([][2]float64{
		px(vtp.LocRoot[0], 0.),
		px(vtp.LocRoot[0]+vtp.CRoot, 0.),
	}, "black")

	// Nacelles, mirrored. Four-engine wing arrangements carry a second
	// pod at the outboard station.
	nacWidth, nacLength := af.Nacelle.Dimensions()
	for _, origin := range nacelleStations(af) {
		for _, side := range []float64{1., -1.} {
			b.ellipse(margin+(origin[0]+0.5*nacLength)*scale,
				0.5*pageHeight+side*origin[1]*scale,
				0.5*nacLength*scale, 0.5*nacWidth*scale, "black", "none")
		}
	}

	b.text(margin, margin-10., title)
	return b.bytes()
}

func nacelleStations(af *airframe.Airframe) []airframe.Vec3 {
	var inboard, outboard airframe.Vec3
	switch n := af.Nacelle.(type) {
	case *airframe.TurbofanNacelle:
		inboard, outboard = n.FrameOrigin, n.LocOutboard
	case *airframe.ElectrofanNacelle:
		inboard, outboard = n.FrameOrigin, n.LocOutboard
	default:
		return nil
	}
	if outboard == inboard {
		return []airframe.Vec3{inboard}
	}
	return []airframe.Vec3{inboard, outboard}
}

// PayloadRange renders the envelope polyline with the design point.
func PayloadRange(ac *design.Aircraft, title string) []byte {
	b := newSVG()

	points := ac.PayloadRange()
	maxRange := points[len(points)-1].Range
	maxPayload := points[0].Payload

	px := func(r, p float64) [2]float64 {
		x := margin + (r/maxRange)*(pageWidth-2.*margin)
		y := pageHeight - margin - (p/maxPayload)*(pageHeight-2.*margin)
		return [2]float64{x, y}
	}

	// Axes.
	b.polyline([][2]float64{
		{margin, margin},
		{margin, pageHeight - margin},
		{pageWidth - margin, pageHeight - margin},
	}, "black")

	var line [][2]float64
	for _, p := range points {
		line = append(line, px(p.Range, p.Payload))
	}
	b.polyline(line, "blue")

	// Design point marker.
	dp := px(ac.Range, ac.Payload)
	b.ellipse(dp[0], dp[1], 4, 4, "green", "green")

	b.text(margin, margin-10., title)
	b.text(pageWidth-220., pageHeight-margin+25.,
		fmt.Sprintf("range (max %.0f NM)", unit.NMFromM(maxRange)))
	b.text(margin-30., margin+15., fmt.Sprintf("payload (max %.0f kg)", maxPayload))
	return b.bytes()
}

// WriteFile writes an SVG document to disk.
func WriteFile(path string, svg []byte) error {
	return os.WriteFile(path, svg, 0644)
}
