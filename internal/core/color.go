package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxChannelDiff is the total channel difference between black and white.
const MaxChannelDiff = 3 * 255

// Errors returned by ParseColor.
var (
	ErrInvalidLength   = errors.New("color must be exactly 6 hex digits")
	ErrInvalidHexDigit = errors.New("invalid hex digit")
)

// Color is a 24-bit RGB color. It is a plain value and is never mutated.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Rand is the source of randomness used to pick colors.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ParseError describes a hex string that could not be turned into a Color.
type ParseError struct {
	Input string // Text as passed to ParseColor
	Err   error  // ErrInvalidLength or ErrInvalidHexDigit
	Cause error  // Underlying strconv error, if any
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v in %q: %v", e.Err, e.Input, e.Cause)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

// Unwrap exposes both the sentinel and the strconv cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// RandomColor draws each channel from [0, 254].
// 255 is never produced; guesses are still scored against the full byte range.
func RandomColor(rng Rand) Color {
	return Color{
		R: uint8(rng.Intn(255)),
		G: uint8(rng.Intn(255)),
		B: uint8(rng.Intn(255)),
	}
}

// ParseColor parses "rrggbb" or "#rrggbb" in either letter case.
// Surrounding whitespace is not stripped.
func ParseColor(text string) (Color, error) {
	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 {
		return Color{}, &ParseError{Input: text, Err: ErrInvalidLength}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: text, Err: ErrInvalidHexDigit, Cause: err}
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Accuracy scores how close other is to c, from 0 (black vs white) to 100 (identical).
func (c Color) Accuracy(other Color) float64 {
	total := channelDiff(c.R, other.R) + channelDiff(c.G, other.G) + channelDiff(c.B, other.B)
	return 100.0 - float64(total)/MaxChannelDiff*100.0
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
