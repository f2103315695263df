package snapshot

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"progressring/internal/storage"
	"progressring/internal/ui/preferences"
)

type commandFlags struct {
	size     int
	progress float64
	from     float64
	maxValue float64
	stroke   float64
	textSize float64
	frames   int
	duration time.Duration
	out      string
	config   string
}

// NewCommand builds the ringsnap root command.
func NewCommand() *cobra.Command {
	return newCommand(&commandFlags{})
}

func newCommand(flags *commandFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ringsnap",
		Short: "Render a progress ring to PNG",
		Long: `Render a progress ring to one PNG, or to a numbered sequence of PNGs
showing the animated transition between two values.

Examples:
  ringsnap --progress 82.45 --out ring.png
  ringsnap --from 0 --progress 100 --frames 19 --out frames/ring.png
  ringsnap --config ~/.config/ProgressRing/settings.yaml --size 512`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := flags.options(cmd)
			if err != nil {
				return err
			}
			paths, err := Render(options)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	defaults := preferences.DefaultSettings()
	cmd.Flags().IntVar(&flags.size, "size", 256, "output width and height in pixels")
	cmd.Flags().Float64Var(&flags.progress, "progress", 82.45, "value shown in the final frame")
	cmd.Flags().Float64Var(&flags.from, "from", 0, "value the transition starts from")
	cmd.Flags().Float64Var(&flags.maxValue, "max", defaults.MaxValue, "value that fills the ring")
	cmd.Flags().Float64Var(&flags.stroke, "stroke", defaults.StrokeWidth, "stroke width in view units")
	cmd.Flags().Float64Var(&flags.textSize, "text-size", defaults.LabelTextSize, "label size in view units")
	cmd.Flags().IntVar(&flags.frames, "frames", 1, "number of frames to render")
	cmd.Flags().DurationVar(&flags.duration, "duration", defaults.AnimationDuration, "transition length")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "ring.png", "output file")
	cmd.Flags().StringVar(&flags.config, "config", "", "settings YAML to start from")
	return cmd
}

// options merges the settings file with explicitly set flags.
func (flags *commandFlags) options(cmd *cobra.Command) (Options, error) {
	settings := preferences.DefaultSettings()
	if flags.config != "" {
		loaded, err := storage.LoadSettingsFile(flags.config)
		if err != nil {
			return Options{}, err
		}
		settings = loaded
	}

	changed := cmd.Flags().Changed
	if flags.config == "" || changed("max") {
		settings.MaxValue = flags.maxValue
	}
	if flags.config == "" || changed("stroke") {
		settings.StrokeWidth = flags.stroke
	}
	if flags.config == "" || changed("text-size") {
		settings.LabelTextSize = flags.textSize
	}
	if flags.config == "" || changed("duration") {
		settings.AnimationDuration = flags.duration
	}

	return Options{
		Settings: settings,
		Pixels:   flags.size,
		From:     flags.from,
		Progress: flags.progress,
		Frames:   flags.frames,
		Out:      flags.out,
	}, nil
}
