// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"math"

	"github.com/cadolab/oadkit/internal/model"
)

// Cabin sizes the passenger cabin from the seating layout and carries
// the furnishing and operator item masses.
type Cabin struct {
	base

	Width         float64
	Length        float64
	ProjectedArea float64

	MFurnishing float64
	MOpItem     float64

	CGFurnishing Vec3
	CGOpItem     Vec3

	req model.Requirement
}

// NewCabin creates an unevaluated cabin.
func NewCabin(req model.Requirement) *Cabin {
	return &Cabin{req: req}
}

// EvalGeometry derives the cabin cross section and length from the
// seating layout. Statistical regressions.
func (c *Cabin) EvalGeometry(af *Airframe) error {
	nPaxRef := c.req.NPaxRef
	nPaxFront := c.req.NPaxFront
	nAisle := c.req.NAisle

	c.Width = 0.38*nPaxFront + 1.05*nAisle + 0.15
	c.Length = 6.3*(c.Width-0.24) + 0.005*math.Pow(nPaxRef/nPaxFront, 2.25)

	// Factor 0.95 accounts for tapered parts.
	c.ProjectedArea = 0.95 * c.Length * c.Width
	return nil
}

// EvalMass computes furnishing and operator item masses and their CGs.
// The rear cabin is heavier because of higher seat density.
func (c *Cabin) EvalMass(af *Airframe) error {
	nPaxRef := c.req.NPaxRef
	designRange := c.req.DesignRange

	c.MFurnishing = 0.063*nPaxRef*nPaxRef + 9.76*nPaxRef
	c.MOpItem = 5.2 * (nPaxRef * designRange * 1e-6)

	xCGFurnishing := c.FrameOrigin[0] + 0.55*c.Length
	c.CGFurnishing = Vec3{xCGFurnishing, 0., 0.}
	c.CGOpItem = c.CGFurnishing

	c.mass = c.MFurnishing + c.MOpItem
	c.cg = c.CGFurnishing.Scale(c.MFurnishing / c.mass).Add(c.CGOpItem.Scale(c.MOpItem / c.mass))
	return nil
}
