package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "zh-CN"}, b.Locales())

	tr := b.Translator("en_US.UTF-8")
	assert.Equal(t, "en", tr.Locale())
	assert.Equal(t, "Temperature", tr.T("model", "temperature.label"))
	assert.Equal(t, "Configuration", tr.T("model", "configuration"))
	assert.Equal(t, "Confirm", tr.T("main", "confirm"))
}

func TestTranslator_Matching(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "zh_CN.UTF-8", want: "zh-CN"},
		{locale: "zh-CN", want: "zh-CN"},
		{locale: "en-GB", want: "en"},
		{locale: "C", want: "en"},
		{locale: "", want: "en"},
		{locale: "not a locale", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Translator(tt.locale).Locale())
		})
	}
}

func TestTranslator_Fallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en/model.yaml": {Data: []byte("temperature:\n  label: Temperature\n  description: Hot\n")},
		"l/de/model.yaml": {Data: []byte("temperature:\n  label: Temperatur\n")},
	}
	b, err := LoadFS(fsys, "l")
	require.NoError(t, err)

	de := b.Translator("de_DE")
	assert.Equal(t, "Temperatur", de.T("model", "temperature.label"))
	assert.Equal(t, "Hot", de.T("model", "temperature.description"))
	assert.Equal(t, "topP.label", de.T("model", "topP.label"))
	assert.Equal(t, "x", de.T("missing", "x"))
}

func TestLoadFS_RequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"l/de/model.yaml": {Data: []byte("a: b\n")},
	}
	_, err := LoadFS(fsys, "l")
	assert.Error(t, err)
}

func TestNamespace(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	ns := b.Translator("zh-CN").Namespace("model")
	assert.Equal(t, "温度", ns.T("temperature.label"))

	var zero Namespace
	assert.Equal(t, "temperature.label", zero.T("temperature.label"))
}
