// Package layout turns declared widths into concrete widths using the
// measurements a host reports once it has laid the bar out.
package layout

// Measurement is one layout report from the host.
type Measurement struct {
	Width  float64
	Height float64
}

// Resolver holds the latest measurement for one bar.
type Resolver struct {
	declared Width
	onLayout func(Measurement)

	last     Measurement
	measured bool
}

// NewResolver creates a resolver for a declared width. onLayout, when set,
// receives every measurement unchanged.
func NewResolver(declared Width, onLayout func(Measurement)) *Resolver {
	return &Resolver{declared: declared, onLayout: onLayout}
}

// Measure records a new host measurement, replacing the previous one.
func (r *Resolver) Measure(m Measurement) {
	r.last = m
	r.measured = true
	if r.onLayout != nil {
		r.onLayout(m)
	}
}

// SetDeclared changes the declared width; the last measurement is kept.
func (r *Resolver) SetDeclared(w Width) {
	r.declared = w
}

// Declared returns the declared width.
func (r *Resolver) Declared() Width { return r.declared }

// Measured reports whether the host has reported a layout yet.
func (r *Resolver) Measured() bool { return r.measured }

// Last returns the latest measurement.
func (r *Resolver) Last() Measurement { return r.last }

// Resolve returns the concrete width. Percentage widths are 0 until the first
// measurement arrives; absolute widths never depend on layout.
func (r *Resolver) Resolve() float64 {
	if r.declared.IsPercent() && !r.measured {
		return 0
	}
	return r.declared.Of(r.last.Width)
}
