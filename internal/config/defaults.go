package config

// Display defaults
const (
	DefaultFPS        = 60
	DefaultCellHeight = 10.0
	DefaultBackdrop   = "#000000"
	DefaultFileName   = "pbar.yaml"
)

// Colors of the built-in gallery
const (
	galleryColor    = "#139FEB"
	galleryUnfilled = "#eee"
)

func ptr[T any](v T) *T { return &v }

// DefaultGallery returns the built-in gallery: one bar per notable option
// combination.
func DefaultGallery() *Config {
	flat := func(b BarConfig) BarConfig {
		b.Width = "100%"
		b.Height = ptr(20.0)
		b.BorderWidth = ptr(0.0)
		b.Color = galleryColor
		b.UnfilledColor = galleryUnfilled
		return b
	}
	return &Config{
		FPS:        DefaultFPS,
		CellHeight: DefaultCellHeight,
		Backdrop:   DefaultBackdrop,
		Bars: []BarConfig{
			flat(BarConfig{Name: "Square", Progress: 0.7, BorderRadius: ptr(0.0), LineCap: "square"}),
			flat(BarConfig{Name: "Round", Progress: 0.7}),
			flat(BarConfig{Name: "With text", Progress: 0.7, Text: &TextConfig{
				Text: "hello", FontSize: 16, FontWeight: "bold", Color: "yellow", Align: "start",
			}}),
			flat(BarConfig{Name: "Animated", Demo: true}),
			flat(BarConfig{Name: "Animated with text", Demo: true, Text: &TextConfig{
				Text: "{percent}", FontSize: 13, FontWeight: "bold", Color: "yellow", Align: "middle",
			}}),
			flat(BarConfig{Name: "Loop", Loop: true}),
			flat(BarConfig{Name: "Indeterminate", Loop: true, LoopStyle: "slide", LoopDuration: "1500ms"}),
		},
	}
}
