package road

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// Road is the scrolling highway. It owns the lane geometry used by the player
// and the enemy AI, plus the purely visual stripes and verge decorations.
type Road struct {
	cfg         Config
	left        float64
	stripes     []float64 // Y of each stripe's top edge
	decorations []Decoration
	rng         random.Source
}

// View is a read-only copy of the road handed to the renderer
type View struct {
	Left         float64
	Width        float64
	ScreenWidth  float64
	ScreenHeight float64
	Lanes        int
	StripeWidth  float64
	StripeHeight float64
	Stripes      []float64
	Decorations  []Decoration
}

// New builds a road centred on the screen. Geometry that cannot hold a car
// is rejected before the game loop starts.
func New(cfg Config, rng random.Source) (*Road, error) {
	if rng == nil {
		return nil, errors.New("road: nil random source")
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("road: width must be positive, got %.1f", cfg.Width)
	}
	if cfg.Width > cfg.ScreenWidth {
		return nil, fmt.Errorf("road: width %.1f exceeds screen width %.1f", cfg.Width, cfg.ScreenWidth)
	}
	if cfg.Lanes < 1 {
		return nil, fmt.Errorf("road: need at least one lane, got %d", cfg.Lanes)
	}
	if cfg.StripeHeight <= 0 || cfg.StripeGap < 0 {
		return nil, fmt.Errorf("road: invalid stripe spacing %.1f/%.1f", cfg.StripeHeight, cfg.StripeGap)
	}

	r := &Road{
		cfg:  cfg,
		left: (cfg.ScreenWidth - cfg.Width) / 2,
		rng:  rng,
	}

	// Stripes are evenly spaced from one stripe above the screen to one below
	step := cfg.StripeHeight + cfg.StripeGap
	for y := -cfg.StripeHeight; y < cfg.ScreenHeight+cfg.StripeHeight; y += step {
		r.stripes = append(r.stripes, y)
	}

	r.decorations = make([]Decoration, cfg.Decorations)
	for i := range r.decorations {
		r.decorations[i] = Decoration{
			Side:  r.randomSide(),
			Y:     float64(random.IntRange(rng, 0, int(cfg.ScreenHeight))),
			Size:  random.IntRange(rng, cfg.DecorationMinSize, cfg.DecorationMaxSize),
			Color: r.randomColor(),
			Pulse: rng.Float64() * 10,
		}
	}

	return r, nil
}

// Update scrolls stripes and decorations down by speed pixels and wraps the
// ones that have passed the bottom of the screen back to the top
func (r *Road) Update(speed float64) {
	for i := range r.stripes {
		r.stripes[i] += speed
		if r.stripes[i] > r.cfg.ScreenHeight {
			r.stripes[i] = -r.cfg.StripeHeight
		}
	}

	for i := range r.decorations {
		d := &r.decorations[i]
		d.Y += speed
		d.Pulse += r.cfg.PulseStep
		if d.Y > r.cfg.ScreenHeight {
			d.Y = r.cfg.DecorationResetY
			d.Side = r.randomSide()
			d.Color = r.randomColor()
		}
	}
}

// Left returns the X of the road's left edge
func (r *Road) Left() float64 { return r.left }

// Right returns the X of the road's right edge
func (r *Road) Right() float64 { return r.left + r.cfg.Width }

// Width returns the road width
func (r *Road) Width() float64 { return r.cfg.Width }

// Lanes returns the number of lanes
func (r *Road) Lanes() int { return r.cfg.Lanes }

// LaneWidth returns the width of a single lane
func (r *Road) LaneWidth() float64 {
	return r.cfg.Width / float64(r.cfg.Lanes)
}

// LaneCenter returns the X coordinate of the centre of lane
func (r *Road) LaneCenter(lane int) float64 {
	return r.left + (float64(lane)+0.5)*r.LaneWidth()
}

// LaneAt returns the lane containing x. Positions beyond the road are
// attributed to the nearest edge lane.
func (r *Road) LaneAt(x float64) int {
	lane := 0
	for i := 1; i < r.cfg.Lanes; i++ {
		if x > r.left+float64(i)*r.LaneWidth() {
			lane = i
		}
	}
	return lane
}

// ScreenHeight returns the height of the visible play area
func (r *Road) ScreenHeight() float64 { return r.cfg.ScreenHeight }

// Stripes returns a copy of the stripe offsets
func (r *Road) Stripes() []float64 {
	return append([]float64(nil), r.stripes...)
}

// Decorations returns a copy of the verge decorations
func (r *Road) Decorations() []Decoration {
	return append([]Decoration(nil), r.decorations...)
}

// DecorationX returns the screen X of a decoration on the given side
func (r *Road) DecorationX(side Side) float64 {
	return decorationX(r.Left(), r.Right(), side)
}

func decorationX(left, right float64, side Side) float64 {
	if side == SideLeft {
		return left - 20
	}
	return right + 15
}

// Right returns the X of the road's right edge
func (v View) Right() float64 { return v.Left + v.Width }

// DecorationX returns the screen X of a decoration on the given side
func (v View) DecorationX(side Side) float64 {
	return decorationX(v.Left, v.Right(), side)
}

// LaneDividers returns the X of every boundary between adjacent lanes
func (v View) LaneDividers() []float64 {
	if v.Lanes < 2 {
		return nil
	}
	laneWidth := v.Width / float64(v.Lanes)
	dividers := make([]float64, 0, v.Lanes-1)
	for i := 1; i < v.Lanes; i++ {
		dividers = append(dividers, v.Left+float64(i)*laneWidth)
	}
	return dividers
}

// Snapshot returns a copy of the road state for rendering
func (r *Road) Snapshot() View {
	return View{
		Left:         r.left,
		Width:        r.cfg.Width,
		ScreenWidth:  r.cfg.ScreenWidth,
		ScreenHeight: r.cfg.ScreenHeight,
		Lanes:        r.cfg.Lanes,
		StripeWidth:  r.cfg.StripeWidth,
		StripeHeight: r.cfg.StripeHeight,
		Stripes:      r.Stripes(),
		Decorations:  r.Decorations(),
	}
}

func (r *Road) randomSide() Side {
	return Side(r.rng.Intn(2))
}

func (r *Road) randomColor() color.RGBA {
	return DecorationPalette[r.rng.Intn(len(DecorationPalette))]
}
