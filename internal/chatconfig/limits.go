package chatconfig

import (
	"math"
	"strconv"
	"strings"
)

// Slider scales for the token controls. They are independent of any model.
const (
	AbsoluteMaxPromptTokens     = 256000
	AbsoluteMaxGenerationTokens = 65536
)

// Range is the static [Min, Max] interval of a numeric setting and the
// granularity a slider moves in.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

var (
	TemperatureRange      = Range{Min: 0, Max: 2, Step: 0.1}
	TopPRange             = Range{Min: 0, Max: 1, Step: 0.05}
	PresencePenaltyRange  = Range{Min: -2, Max: 2, Step: 0.1}
	FrequencyPenaltyRange = Range{Min: -2, Max: 2, Step: 0.1}
)

// Clamp bounds v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Snap moves v onto the step grid anchored at Min, then clamps it.
func (r Range) Snap(v float64) float64 {
	v = r.Clamp(v)
	if r.Step <= 0 {
		return v
	}
	steps := math.Round((v - r.Min) / r.Step)
	snapped := r.Min + steps*r.Step

	// strip the binary noise that step multiplication leaves behind
	p := math.Pow(10, float64(r.Decimals()))
	return r.Clamp(math.Round(snapped*p) / p)
}

// Decimals is the number of fractional digits the step needs.
func (r Range) Decimals() int {
	s := strconv.FormatFloat(r.Step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Format renders v with no more digits than the step needs.
func (r Range) Format(v float64) string {
	p := math.Pow(10, float64(r.Decimals()))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}

// Clamp bounds a token count to [0, ceiling]. A negative ceiling is treated as 0.
func Clamp(value, ceiling int) int {
	if ceiling < 0 {
		ceiling = 0
	}
	if value < 0 {
		return 0
	}
	if value > ceiling {
		return ceiling
	}
	return value
}
