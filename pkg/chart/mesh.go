package chart

import "github.com/user/rasterplot/pkg/ports"

// Mesh draws grid lines and the two axes of a Cartesian.
type Mesh struct {
	// XLines and YLines are the number of bold grid intervals per axis.
	XLines int
	YLines int

	// DisableX hides the vertical grid lines, DisableY the horizontal ones.
	DisableX bool
	DisableY bool

	// LightPerBold is how many light lines split each bold interval.
	LightPerBold int

	BoldStyle  ports.BackendStyle
	LightStyle ports.BackendStyle
	AxisStyle  ports.BackendStyle
}

// DefaultMesh returns a 10x10 grid with light subdivisions.
func DefaultMesh() Mesh {
	return Mesh{
		XLines:       10,
		YLines:       10,
		LightPerBold: 2,
		BoldStyle:    ports.Black.Mix(0.2),
		LightStyle:   ports.Black.Mix(0.05),
		AxisStyle:    ports.Black,
	}
}

// Draw implements Element.
func (m Mesh) Draw(c *Cartesian) error {
	r := c.Area().Rect()
	if r.Empty() {
		return nil
	}
	b := c.Area().Backend()
	top, bottom := r.Y0, r.Y1-1
	left, right := r.X0, r.X1-1

	if !m.DisableX {
		for _, v := range gridValues(c.XRange(), m.XLines, m.LightPerBold, m.LightStyle != nil) {
			x := c.Map(Point{X: v.value, Y: c.YRange().Min}).X
			if err := b.DrawLine(ports.Pt(x, top), ports.Pt(x, bottom), m.style(v.bold)); err != nil {
				return err
			}
		}
	}
	if !m.DisableY {
		for _, v := range gridValues(c.YRange(), m.YLines, m.LightPerBold, m.LightStyle != nil) {
			y := c.Map(Point{X: c.XRange().Min, Y: v.value}).Y
			if err := b.DrawLine(ports.Pt(left, y), ports.Pt(right, y), m.style(v.bold)); err != nil {
				return err
			}
		}
	}

	if m.AxisStyle == nil {
		return nil
	}
	if err := b.DrawLine(ports.Pt(left, top), ports.Pt(left, bottom), m.AxisStyle); err != nil {
		return err
	}
	return b.DrawLine(ports.Pt(left, bottom), ports.Pt(right, bottom), m.AxisStyle)
}

func (m Mesh) style(bold bool) ports.BackendStyle {
	if bold || m.LightStyle == nil {
		if m.BoldStyle == nil {
			return ports.Black.Mix(0.2)
		}
		return m.BoldStyle
	}
	return m.LightStyle
}

type gridValue struct {
	value float64
	bold  bool
}

// gridValues lists light lines before bold ones so bold lines stay on top.
func gridValues(r Range, intervals, lightPerBold int, withLight bool) []gridValue {
	if intervals <= 0 {
		return nil
	}
	step := r.Span() / float64(intervals)

	var light, bold []gridValue
	for i := 0; i <= intervals; i++ {
		bold = append(bold, gridValue{value: r.Min + step*float64(i), bold: true})
		if !withLight || lightPerBold < 2 || i == intervals {
			continue
		}
		sub := step / float64(lightPerBold)
		for j := 1; j < lightPerBold; j++ {
			light = append(light, gridValue{value: r.Min + step*float64(i) + sub*float64(j)})
		}
	}
	return append(light, bold...)
}
