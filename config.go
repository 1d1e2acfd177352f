package livechart

import (
	"fmt"
	"time"
)

// Config collects the settings of a Chart. The mapstructure tags allow
// loading it with viper.
type Config struct {
	Title  string  `mapstructure:"title"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// AnimationsSpeed is the duration of every transition.
	AnimationsSpeed time.Duration `mapstructure:"animations-speed"`

	GroupGap float64 `mapstructure:"group-gap"`
	BarGap   float64 `mapstructure:"bar-gap"`

	FontSize float64 `mapstructure:"font-size"`

	// CornerRadius is used for series without an own PointCornerRadius.
	CornerRadius float64 `mapstructure:"corner-radius"`

	// Labels turns on data labels for all series added to the chart.
	Labels bool `mapstructure:"labels"`
}

// DefaultConfig returns a Config for a 800x600 chart.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		AnimationsSpeed: 500 * time.Millisecond,
		GroupGap:        0.2,
		BarGap:          0.01,
		FontSize:        12,
	}
}

// Validate reports the first invalid setting of c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("livechart: invalid size %gx%g", c.Width, c.Height)
	case c.AnimationsSpeed < 0:
		return fmt.Errorf("livechart: negative animations speed %s", c.AnimationsSpeed)
	case c.GroupGap < 0 || c.GroupGap >= 1:
		return fmt.Errorf("livechart: group gap %g not in [0,1)", c.GroupGap)
	case c.BarGap < 0:
		return fmt.Errorf("livechart: negative bar gap %g", c.BarGap)
	case c.FontSize <= 0:
		return fmt.Errorf("livechart: invalid font size %g", c.FontSize)
	case c.CornerRadius < 0:
		return fmt.Errorf("livechart: negative corner radius %g", c.CornerRadius)
	}
	return nil
}
