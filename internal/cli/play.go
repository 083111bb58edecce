package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/playback"
	"github.com/matzehuels/algotrace/pkg/trace"
)

type playOpts struct {
	sets     []string
	speed    time.Duration
	autoplay bool
}

// playCommand creates the play command for the interactive player.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play <algorithm>",
		Short: "Step through a trace in the terminal",
		Long: `Step through a trace in the terminal.

The pseudocode line of the current step is highlighted next to the step's
state. Press e to change a parameter while playing; invalid input is
reported and the current trace stays on screen.`,
		Example: `  algotrace play quick-sort --set values="9,4,7,1" --autoplay
  algotrace play hanoi --set disks=4 --speed 200ms`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("speed") {
				opts.speed = c.Config.Playback.Speed.Duration
			}
			return c.runPlay(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "algorithm parameter as name=value (repeatable)")
	cmd.Flags().DurationVar(&opts.speed, "speed", playback.DefaultSpeed, "delay between steps while playing")
	cmd.Flags().BoolVar(&opts.autoplay, "autoplay", false, "start playing immediately")
	return cmd
}

func (c *CLI) runPlay(ctx context.Context, name string, opts playOpts) error {
	alg, err := catalog.Lookup(name)
	if err != nil {
		return err
	}
	params, err := parseSets(opts.sets)
	if err != nil {
		return err
	}

	model, err := NewPlayerModel(alg, params, c.stepSource(ctx, name), playback.WithSpeed(opts.speed))
	if err != nil {
		return err
	}
	if err := model.Controller().SetSpeed(opts.speed); err != nil {
		return err
	}
	if opts.autoplay {
		_ = model.Controller().Play()
	}
	defer model.Controller().Close()

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// stepSource returns a factory of playback sources that generate name with
// the given parameters.
func (c *CLI) stepSource(ctx context.Context, name string) func(map[string]string) playback.Source {
	return func(params map[string]string) playback.Source {
		return func() ([]trace.Step, error) {
			_, t, err := c.generate(ctx, name, params)
			return t.Steps, err
		}
	}
}
