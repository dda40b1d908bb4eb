package cli

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/display"
	"github.com/spf13/cobra"
)

var (
	pipeBar   string
	pipeWidth int
	pipeFPS   int
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Draw an inline bar driven by lines on stdin",
	Long: `Draw a bar on the current line and update it from stdin.

Each input line is one of:
  0.42 or 42%   set the progress
  loop          start the looping sweep
  stop          stop the looping sweep
  anything else printed above the bar

The bar settles and its final frame is kept when stdin closes.

Example:
  for i in $(seq 0 10 100); do echo "$i%"; sleep 0.2; done | pbar pipe`,
	Args: cobra.NoArgs,
	RunE: runPipe,
}

func init() {
	pipeCmd.Flags().StringVar(&pipeBar, "bar", "", "Name of a bar in the config")
	pipeCmd.Flags().IntVar(&pipeWidth, "width", 40, "Bar width in columns")
	pipeCmd.Flags().IntVar(&pipeFPS, "fps", 30, "Redraw rate")
}

func runPipe(cmd *cobra.Command, args []string) error {
	log, done, err := newLogger()
	if err != nil {
		return err
	}
	defer done()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	barCfg, err := selectBar(cfg, pipeBar)
	if err != nil {
		return err
	}
	barCfg.Loop = false

	d, err := display.New(cmd.OutOrStdout(), barCfg, pipeWidth, pipeFPS)
	if err != nil {
		return err
	}
	d.Start()
	defer d.Stop()

	n, err := feed(d, cmd.InOrStdin())
	log.Debug("pipe input closed", "lines", n, "error", err)
	if err != nil {
		return err
	}
	waitSettled(d, 5*time.Second)
	return nil
}

// feed applies each input line to d and returns the number of lines read.
func feed(d *display.Display, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := applyLine(d, line); err != nil {
			return n, err
		}
	}
	return n, scanner.Err()
}

func applyLine(d *display.Display, line string) error {
	switch strings.ToLower(line) {
	case "loop":
		return d.SetLoop(true)
	case "stop":
		return d.SetLoop(false)
	}
	if p, ok := parseProgress(line); ok {
		return d.SetProgress(p)
	}
	d.PrintAbove("%s", line)
	return nil
}

// parseProgress reads "0.42" as a fraction and "42%" as a percentage.
// Numbers outside [0,1] are clamped.
func parseProgress(s string) (float64, bool) {
	num, percent := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if percent {
		v /= 100
	}
	return bar.Clamp(v), true
}

// waitSettled blocks until the bar stops moving or limit passes. A looping
// bar never settles, so it returns at once.
func waitSettled(d *display.Display, limit time.Duration) {
	deadline := time.Now().Add(limit)
	for !d.Settled() && !d.Looping() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}
