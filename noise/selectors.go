// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// selectors.go - ternary nodes that use a control function to choose or mix
// between two children.
//
// Roles: "self" is the receiver's own source, "other" the second source, and
// "control" decides between them.

package noise

// Falloff shapes the transition of Select inside its edge window.
type Falloff int

const (
	// FalloffLinear interpolates linearly across the window.
	FalloffLinear Falloff = iota

	// FalloffSmoothstep eases in and out with 3a² - 2a³.
	FalloffSmoothstep

	// FalloffQuintic eases with 6a⁵ - 15a⁴ + 10a³ (C2 continuous).
	FalloffQuintic
)

// String returns the falloff name.
func (f Falloff) String() string {
	switch f {
	case FalloffLinear:
		return "linear"
	case FalloffSmoothstep:
		return "smoothstep"
	case FalloffQuintic:
		return "quintic"
	default:
		return "unknown"
	}
}

// shape applies the falloff curve to alpha in [0,1].
func (f Falloff) shape(alpha float64) float64 {
	switch f {
	case FalloffSmoothstep:
		return smoothstep(alpha)
	case FalloffQuintic:
		return quintic(alpha)
	default:
		return alpha
	}
}

// SelectOptions configures Select.
//
// Fields:
//   - Lower, Upper: the control window. Control values below Lower select
//     self, values at or above Upper select other, values inside are mixed.
//     Lower == Upper gives a hard switch at that value.
//   - Falloff: the easing applied to the mixing factor inside the window.
type SelectOptions struct {
	Lower   float64
	Upper   float64
	Falloff Falloff
}

// DefaultSelectOptions returns a hard switch at control = 0:
// Lower=0, Upper=0, Falloff=FalloffLinear.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{Lower: 0, Upper: 0, Falloff: FalloffLinear}
}

// validate checks window edges and falloff.
func (o SelectOptions) validate() error {
	if err := validateBounds(o.Lower, o.Upper); err != nil {
		return err
	}
	if o.Falloff < FalloffLinear || o.Falloff > FalloffQuintic {
		return ErrBadFalloff
	}

	return nil
}

// Select chooses between self and other based on control.
type Select[P any, S NoiseFn[P], O NoiseFn[P], C NoiseFn[P]] struct {
	self    S
	other   O
	control C
	opts    SelectOptions
}

// NewSelect returns a Select node.
// Errors: ErrNonFinite / ErrBadBounds for a bad window, ErrBadFalloff.
func NewSelect[P any, S NoiseFn[P], O NoiseFn[P], C NoiseFn[P]](
	self S, other O, control C, opts SelectOptions,
) (Select[P, S, O, C], error) {
	if err := opts.validate(); err != nil {
		return Select[P, S, O, C]{}, opError("Select", err)
	}

	return Select[P, S, O, C]{self: self, other: other, control: control, opts: opts}, nil
}

// Options reports the configured window and falloff.
func (n Select[P, S, O, C]) Options() SelectOptions { return n.opts }

// Get evaluates control and returns self, other or a mix of both.
// Only the children needed for the result are evaluated.
func (n Select[P, S, O, C]) Get(point P) float64 {
	c := n.control.Get(point)
	switch {
	case c < n.opts.Lower:
		return n.self.Get(point)
	case c >= n.opts.Upper:
		return n.other.Get(point)
	case c != c: // NaN control selects neither edge
		return c
	}
	alpha := n.opts.Falloff.shape((c - n.opts.Lower) / (n.opts.Upper - n.opts.Lower))

	return lerp(n.self.Get(point), n.other.Get(point), alpha)
}

// Blend mixes self and other linearly using control as the weight.
type Blend[P any, S NoiseFn[P], O NoiseFn[P], C NoiseFn[P]] struct {
	self    S
	other   O
	control C
}

// NewBlend returns a Blend node. The control output is clamped to [-1, 1]
// and mapped to a weight in [0, 1]: -1 yields self, +1 yields other.
func NewBlend[P any, S NoiseFn[P], O NoiseFn[P], C NoiseFn[P]](self S, other O, control C) Blend[P, S, O, C] {
	return Blend[P, S, O, C]{self: self, other: other, control: control}
}

// Get returns lerp(self, other, (clamp(control, -1, 1) + 1) / 2).
func (n Blend[P, S, O, C]) Get(point P) float64 {
	alpha := (clampf(n.control.Get(point), -1, 1) + 1) / 2

	return lerp(n.self.Get(point), n.other.Get(point), alpha)
}
