// colorguess is a terminal game: guess the hex code of a randomly chosen color.
//
// Usage:
//
//	colorguess
//
// A color swatch is shown, then each typed hex code (rrggbb or #rrggbb) is scored
// by how close it is. The game ends once a guess scores above 90%.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/games/colorguess"
	"github.com/vovakirdan/colorguess/internal/platform/terminal"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "colorguess",
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorguess",
	Short: "Guess the hex code of a random color",
	Long: `colorguess shows a randomly chosen color and asks for its hex code.

Type a guess as rrggbb or #rrggbb (any letter case). Each guess is scored
by its total channel distance from the target; score above 90% to win.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	settings := config.Load()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	game := colorguess.NewRandom(
		rng,
		settings,
		terminal.Stdio(),
		terminal.NewRenderer(settings.BlockWidth),
		logger,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := game.Run(ctx)
	if err != nil {
		return err
	}

	logger.Debug("game won", "attempts", res.Attempts, "accuracy", res.Accuracy, "target", game.Target())
	return nil
}
