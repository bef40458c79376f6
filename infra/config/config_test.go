package config

import (
	"io/fs"
	"log/slog"
	"testing"
	"time"

	"github.com/cloudcopper/cardlist/lib/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testFS(t *testing.T, files map[string]string) fs.ReadFileFS {
	assert := require.New(t)
	memFs := afero.NewMemMapFs()
	for name, content := range files {
		assert.NoError(afero.WriteFile(memFs, name, []byte(content), 0o644))
	}
	return afero.NewIOFS(memFs)
}

func withConfigFileName(t *testing.T, name string) {
	old := ConfigFileName
	ConfigFileName = name
	t.Cleanup(func() { ConfigFileName = old })
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		desc    string
		content string
		out     *Config
		err     bool
	}{
		{
			desc:    "empty file gives defaults",
			content: "",
			out:     Default(),
		},
		{
			desc: "deck only",
			content: `
deck:
  count: 100
  keep: 5
  refresh: 1h
`,
			out: func() *Config {
				c := Default()
				c.Deck.Count = 100
				c.Deck.Keep = 5
				c.Deck.Refresh = types.Duration(time.Hour)
				return c
			}(),
		},
		{
			desc: "everything",
			content: `
deck:
  count: 0
  keep: 1
  refresh: 1d
  seed: 42
view:
  perPage: 50
  fixedHeight: 200
api:
  maxCount: 10
`,
			out: &Config{
				Deck: DeckConfig{Count: 0, Keep: 1, Refresh: types.Duration(24 * time.Hour), Seed: 42},
				View: ViewConfig{PerPage: 50, FixedHeight: 200},
				Api:  ApiConfig{MaxCount: 10},
			},
		},
		{
			desc:    "negative count",
			content: "deck:\n  count: -1\n",
			err:     true,
		},
		{
			desc:    "zero keep",
			content: "deck:\n  keep: 0\n",
			err:     true,
		},
		{
			desc:    "tiny fixed height",
			content: "view:\n  fixedHeight: 1\n",
			err:     true,
		},
		{
			desc:    "bad refresh",
			content: "deck:\n  refresh: soon\n",
			err:     true,
		},
		{
			desc:    "not yaml",
			content: "deck: [",
			err:     true,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert := require.New(t)
			withConfigFileName(t, "test_cardlist.yml")
			f := testFS(t, map[string]string{"test_cardlist.yml": tC.content})
			cfg, err := LoadConfig(slog.Default(), f)
			if tC.err {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tC.out, cfg)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	assert := require.New(t)
	withConfigFileName(t, "no_such_cardlist.yml")
	cfg, err := LoadConfig(slog.Default(), testFS(t, nil))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Empty(ConfigFilePath())
}

func TestConfigString(t *testing.T) {
	assert := require.New(t)
	s := Default().String()
	assert.Contains(s, "count: 30")
	assert.Contains(s, "#seed: 0")
	assert.Contains(s, "refresh: -")
	assert.Contains(s, "perPage: 20")
}
