// Package colorguess implements the hex color guessing game.
// The game shows a target swatch and scores typed hex codes against it
// until one is accurate enough.
package colorguess

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

// State is the phase the game loop is in.
type State int

const (
	StateAnnouncing    State = iota // Showing the target
	StateAwaitingGuess              // Prompting until a guess parses
	StateScoring                    // Comparing a guess to the target
	StateWon                        // A guess beat the threshold
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAnnouncing:
		return "Announcing"
	case StateAwaitingGuess:
		return "AwaitingGuess"
	case StateScoring:
		return "Scoring"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Console is the line-oriented terminal the game talks to.
type Console interface {
	ReadLine(prompt string) (string, error)
	EraseLastLine()
	Println(a ...any)
	Printf(format string, a ...any)
	Err() error
}

// Renderer draws colors for display.
type Renderer interface {
	Block(c core.Color) string
	Framed(content string) string
}

// Result summarizes a won game.
type Result struct {
	Attempts int        // Scored guesses, including the winning one
	Accuracy float64    // Accuracy of the winning guess
	Guess    core.Color // The winning guess
}

// Game runs one round of color guessing against a fixed target.
type Game struct {
	target    core.Color
	threshold float64
	text      config.Messages

	console  Console
	renderer Renderer
	logger   *log.Logger

	state    State
	attempts int
	stale    int // Error lines to retract on the next successful read
}

// New creates a game for a known target color.
// A nil logger discards all log output.
func New(target core.Color, settings config.Settings, console Console, renderer Renderer, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		target:    target,
		threshold: settings.Threshold,
		text:      settings.Text,
		console:   console,
		renderer:  renderer,
		logger:    logger,
		state:     StateAnnouncing,
	}
}

// NewRandom creates a game whose target is drawn from rng.
func NewRandom(rng core.Rand, settings config.Settings, console Console, renderer Renderer, logger *log.Logger) *Game {
	return New(core.RandomColor(rng), settings, console, renderer, logger)
}

// Target returns the color being guessed.
func (g *Game) Target() core.Color {
	return g.target
}

// Threshold returns the accuracy a guess must exceed to win.
func (g *Game) Threshold() float64 {
	return g.threshold
}

// State returns the current phase of the game loop.
func (g *Game) State() State {
	return g.state
}

// Attempts returns the number of guesses scored so far.
func (g *Game) Attempts() int {
	return g.attempts
}

// Run plays the game until a guess wins or input ends.
// ctx is only checked between attempts; a blocked read is not interrupted.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.announce()
	if err := g.console.Err(); err != nil {
		return Result{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		input, guess, err := g.awaitGuess()
		if err != nil {
			return Result{}, err
		}

		res, won := g.score(input, guess)
		if err := g.console.Err(); err != nil {
			return Result{}, err
		}
		if won {
			return res, nil
		}
	}
}

func (g *Game) announce() {
	g.state = StateAnnouncing
	g.logger.Debug("target chosen", "color", g.target.Hex())

	g.console.Println(g.text.Title)
	g.console.Println(g.renderer.Framed(g.renderer.Block(g.target)))
	g.console.Printf(g.text.Hint+"\n", g.threshold)
	g.console.Println()
}

// awaitGuess prompts until a line parses as a color.
// Only end of input or a failed write escapes the loop.
func (g *Game) awaitGuess() (string, core.Color, error) {
	g.state = StateAwaitingGuess

	for {
		line, err := g.console.ReadLine(g.text.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return "", core.Color{}, fmt.Errorf("read guess: %w", err)
			}
			g.logger.Warn("read failed", "error", err)
			g.console.Println(err)
			if werr := g.console.Err(); werr != nil {
				return "", core.Color{}, werr
			}
			continue
		}

		g.retract()

		guess, err := core.ParseColor(line)
		if err != nil {
			g.logger.Debug("invalid guess", "input", line, "error", err)
			g.console.Println(err)
			g.stale = 1
			if werr := g.console.Err(); werr != nil {
				return "", core.Color{}, werr
			}
			continue
		}

		return line, guess, nil
	}
}

// retract clears the echoed input line and any error left by the previous attempt.
func (g *Game) retract() {
	for i := 0; i < 1+g.stale; i++ {
		g.console.EraseLastLine()
	}
	g.stale = 0
}

func (g *Game) score(input string, guess core.Color) (Result, bool) {
	g.state = StateScoring
	g.attempts++

	acc := g.target.Accuracy(guess)
	g.logger.Debug("guess scored", "attempt", g.attempts, "input", input, "accuracy", acc)

	g.console.Printf("%.2f%% | %s %s\n", acc, input, g.renderer.Block(guess))

	if acc > g.threshold {
		g.state = StateWon
		g.console.Println(g.text.Win)
		return Result{Attempts: g.attempts, Accuracy: acc, Guess: guess}, true
	}

	g.state = StateAwaitingGuess
	return Result{}, false
}
