package road

import "image/color"

// Side identifies which verge of the road a decoration sits on
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Neon palette used for roadside decorations
var (
	NeonBlue   = color.RGBA{0, 195, 255, 255}
	NeonPink   = color.RGBA{255, 0, 153, 255}
	NeonGreen  = color.RGBA{57, 255, 20, 255}
	NeonYellow = color.RGBA{255, 230, 0, 255}
)

// DecorationPalette lists the colours a decoration may be assigned
var DecorationPalette = []color.RGBA{NeonBlue, NeonPink, NeonGreen, NeonYellow}

// Decoration is a glowing marker on the road verge
type Decoration struct {
	Side  Side
	Y     float64
	Size  int
	Color color.RGBA
	Pulse float64 // Glow phase in radians, advances independently of scroll speed
}

// Config describes road geometry and scroll decoration layout
type Config struct {
	ScreenWidth       float64 `mapstructure:"-"` // Filled in from the screen settings
	ScreenHeight      float64 `mapstructure:"-"`
	Width             float64 `mapstructure:"width"`
	Lanes             int     `mapstructure:"lanes"`
	StripeWidth       float64 `mapstructure:"stripe_width"`
	StripeHeight      float64 `mapstructure:"stripe_height"`
	StripeGap         float64 `mapstructure:"stripe_gap"`
	Decorations       int     `mapstructure:"decorations"`
	DecorationMinSize int     `mapstructure:"decoration_min_size"`
	DecorationMaxSize int     `mapstructure:"decoration_max_size"`
	DecorationResetY  float64 `mapstructure:"decoration_reset_y"`
	PulseStep         float64 `mapstructure:"pulse_step"`
}

// DefaultConfig returns the 800x600 three-lane neon highway
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		Width:             400,
		Lanes:             3,
		StripeWidth:       10,
		StripeHeight:      50,
		StripeGap:         30,
		Decorations:       20,
		DecorationMinSize: 5,
		DecorationMaxSize: 15,
		DecorationResetY:  -20,
		PulseStep:         0.1,
	}
}
