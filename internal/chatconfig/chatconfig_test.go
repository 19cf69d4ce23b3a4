package chatconfig

import (
	"math"
	"testing"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModels(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.Model{ID: "big", Enabled: true, MaxModelInputTokens: 4096, MaxModelCompletionTokens: 2000},
		catalog.Model{ID: "small", Enabled: true, MaxModelInputTokens: 2048, MaxModelCompletionTokens: 500},
	)
	require.NoError(t, err)
	return c
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		value, ceiling int
		want           int
	}{
		{name: "inside", value: 10, ceiling: 20, want: 10},
		{name: "at ceiling", value: 20, ceiling: 20, want: 20},
		{name: "above ceiling", value: 999999, ceiling: 8192, want: 8192},
		{name: "negative value", value: -5, ceiling: 20, want: 0},
		{name: "negative ceiling", value: 5, ceiling: -1, want: 0},
		{name: "zero ceiling", value: 5, ceiling: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.value, tt.ceiling))
		})
	}
}

func TestClamp_Property(t *testing.T) {
	for _, ceiling := range []int{0, 1, 100, 8192} {
		for _, v := range []int{-100, -1, 0, 1, 50, 100, 8191, 8192, 1 << 20} {
			got := Clamp(v, ceiling)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, ceiling)
			if v >= 0 {
				assert.Equal(t, min(v, ceiling), got)
			}
		}
	}
}

func TestRange_Snap(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		in   float64
		want float64
	}{
		{name: "temperature on grid", r: TemperatureRange, in: 0.7, want: 0.7},
		{name: "temperature rounds", r: TemperatureRange, in: 0.74, want: 0.7},
		{name: "temperature above max", r: TemperatureRange, in: 3, want: 2},
		{name: "temperature below min", r: TemperatureRange, in: -1, want: 0},
		{name: "top p step", r: TopPRange, in: 0.93, want: 0.95},
		{name: "penalty negative", r: PresencePenaltyRange, in: -1.26, want: -1.3},
		{name: "nan", r: FrequencyPenaltyRange, in: math.NaN(), want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.r.Snap(tt.in), 1e-9)
		})
	}
}

func TestRange_StepAccumulation(t *testing.T) {
	v := 0.0
	for range 7 {
		v = TemperatureRange.Snap(v + TemperatureRange.Step)
	}
	assert.Equal(t, "0.7", TemperatureRange.Format(v))
}

func TestRange_Decimals(t *testing.T) {
	assert.Equal(t, 1, TemperatureRange.Decimals())
	assert.Equal(t, 2, TopPRange.Decimals())
	assert.Equal(t, 0, Range{Min: 0, Max: 10, Step: 1}.Decimals())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Default()))

	cfg := Default()
	cfg.Temperature = 2.5
	cfg.MaxPromptTokens = -1
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
	assert.Contains(t, err.Error(), "maxPromptTokens")

	cfg = Default()
	cfg.Model = ""
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")

	cfg = Default()
	cfg.PresencePenalty = -2
	cfg.FrequencyPenalty = 2
	assert.NoError(t, Validate(cfg))
}

func TestNewSession_ClampsOnOpen(t *testing.T) {
	cfg := Default()
	cfg.Model = "small"
	cfg.MaxPromptTokens = 3000
	cfg.MaxGenerationTokens = 100

	s := NewSession(cfg, testModels(t))

	assert.Equal(t, 2048, s.Draft().MaxPromptTokens)
	assert.Equal(t, 100, s.Draft().MaxGenerationTokens)
}

func TestNewSession_DoesNotAliasSource(t *testing.T) {
	cfg := Default()
	cfg.Model = "big"
	s := NewSession(cfg, testModels(t))

	s.SetTemperature(0.2)

	assert.InDelta(t, 1.0, cfg.Temperature, 1e-9)
	assert.InDelta(t, 0.2, s.Draft().Temperature, 1e-9)
}

func TestSession_SetMaxTokens(t *testing.T) {
	cfg := Default()
	cfg.Model = "big"
	s := NewSession(cfg, testModels(t))

	assert.Equal(t, 4096, s.SetMaxPromptTokens(999999))
	assert.Equal(t, 0, s.SetMaxPromptTokens(-3))
	assert.Equal(t, 1500, s.SetMaxGenerationTokens(1500))
	assert.Equal(t, 2000, s.SetMaxGenerationTokens(2001))
}

func TestSession_ModelSwitchReclamps(t *testing.T) {
	cfg := Default()
	cfg.Model = "big"
	s := NewSession(cfg, testModels(t))

	s.SetMaxPromptTokens(999999)
	s.SetMaxGenerationTokens(1800)
	s.SetModel("small")

	assert.Equal(t, 2048, s.Draft().MaxPromptTokens)
	assert.Equal(t, 500, s.Draft().MaxGenerationTokens)

	// switching back does not restore the old values
	s.SetModel("big")
	assert.Equal(t, 2048, s.Draft().MaxPromptTokens)
	assert.Equal(t, 500, s.Draft().MaxGenerationTokens)
}

func TestSession_UnknownModelUsesSliderScale(t *testing.T) {
	cfg := Default()
	cfg.Model = "custom-model"
	cfg.MaxPromptTokens = 300000
	s := NewSession(cfg, testModels(t))

	_, ok := s.ModelInfo()
	assert.False(t, ok)
	assert.Equal(t, AbsoluteMaxPromptTokens, s.PromptCeiling())
	assert.Equal(t, AbsoluteMaxPromptTokens, s.Draft().MaxPromptTokens)
}

func TestSession_FloatSettersClamp(t *testing.T) {
	s := NewSession(Default(), testModels(t))

	s.SetTemperature(5)
	s.SetTopP(-1)
	s.SetPresencePenalty(-3)
	s.SetFrequencyPenalty(2.5)

	d := s.Draft()
	assert.InDelta(t, 2.0, d.Temperature, 1e-9)
	assert.InDelta(t, 0.0, d.TopP, 1e-9)
	assert.InDelta(t, -2.0, d.PresencePenalty, 1e-9)
	assert.InDelta(t, 2.0, d.FrequencyPenalty, 1e-9)
}
