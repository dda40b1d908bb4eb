package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/config"
	"github.com/pablasso/pbar/internal/layout"
	"github.com/pablasso/pbar/internal/paint"
	"github.com/spf13/cobra"
)

const defaultParentWidth = 60

type renderOptions struct {
	Bar       string
	Progress  *float64
	Width     string
	Parent    int
	Height    float64
	Text      string
	LoopAt    time.Duration
	LoopStyle string
}

var renderFlags renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of a bar",
	Long: `Print one frame of a bar without starting the gallery.

The bar comes from the config when --bar names one, otherwise from the bar
defaults. --loop-at renders the looping sweep that much time after it started.

Examples:
  pbar render --progress 0.4
  pbar render --bar Round --parent 80
  pbar render --loop-at 1250ms --loop-style slide`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFlags.Bar, "bar", "", "Name of a bar in the config")
	renderCmd.Flags().Float64("progress", 0, "Progress in [0,1]")
	renderCmd.Flags().StringVar(&renderFlags.Width, "width", "", `Bar width in columns or percent, e.g. "40" or "50%"`)
	renderCmd.Flags().IntVar(&renderFlags.Parent, "parent", defaultParentWidth, "Width the bar is laid out in")
	renderCmd.Flags().Float64Var(&renderFlags.Height, "height", 0, "Bar height in units")
	renderCmd.Flags().StringVar(&renderFlags.Text, "text", "", `Overlay text; "{percent}" shows the progress`)
	renderCmd.Flags().DurationVar(&renderFlags.LoopAt, "loop-at", 0, "Render the looping sweep at this offset")
	renderCmd.Flags().StringVar(&renderFlags.LoopStyle, "loop-style", "", "Loop style: grow, slide")
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := renderFlags
	if cmd.Flags().Changed("progress") {
		p, err := cmd.Flags().GetFloat64("progress")
		if err != nil {
			return err
		}
		opts.Progress = &p
	}

	log, done, err := newLogger()
	if err != nil {
		return err
	}
	defer done()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	out, err := renderFrame(cfg, opts, log)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// renderFrame builds a bar from cfg and opts, fast-forwards it and paints it.
func renderFrame(cfg *config.Config, opts renderOptions, log hclog.Logger) (string, error) {
	barCfg, err := selectBar(cfg, opts.Bar)
	if err != nil {
		return "", err
	}

	barCfg.Animated = false
	if opts.Progress != nil {
		barCfg.Progress = *opts.Progress
	}
	if opts.Width != "" {
		if barCfg.Width, err = layout.ParseWidth(opts.Width); err != nil {
			return "", err
		}
	}
	if opts.Height > 0 {
		barCfg.Height = opts.Height
	}
	if opts.Text != "" {
		if barCfg.Text == nil {
			barCfg.Text = &bar.TextOverlay{}
		}
		barCfg.Text.Text = opts.Text
	}
	if opts.LoopStyle != "" {
		if barCfg.LoopStyle, err = bar.ParseLoopStyle(opts.LoopStyle); err != nil {
			return "", err
		}
	}
	if opts.LoopAt > 0 {
		barCfg.Loop = true
	}

	d, err := bar.NewDriver(barCfg, log)
	if err != nil {
		return "", err
	}
	defer d.Close()
	d.Advance(opts.LoopAt)

	resolver := layout.NewResolver(barCfg.Width, nil)
	resolver.Measure(layout.Measurement{Width: float64(opts.Parent)})
	log.Debug("rendering frame", "width", resolver.Resolve(), "progress", d.Progress(), "sweep", d.Sweep())

	painter, err := paint.New(paint.Options{CellHeight: cfg.CellHeight, Backdrop: cfg.Backdrop})
	if err != nil {
		return "", err
	}
	return painter.Paint(bar.Render(d.Frame(resolver.Resolve())))
}

func selectBar(cfg *config.Config, name string) (bar.Config, error) {
	if name == "" {
		return bar.DefaultConfig(), nil
	}
	var names []string
	for _, b := range cfg.Bars {
		if strings.EqualFold(b.Name, name) {
			return b.ToBar()
		}
		names = append(names, b.Name)
	}
	return bar.Config{}, fmt.Errorf("no bar named %q (available: %s)", name, strings.Join(names, ", "))
}
