package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lds.yaml")
	content := `doc_path: /corpus/czech-sud
strategy: adjacent
workers: 4
global_clause_ids: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/corpus/czech-sud", cfg.DocPath)
	assert.Equal(t, "adjacent", cfg.Strategy)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.GlobalClauseIds)
	assert.False(t, cfg.KeepPunct)
	assert.Equal(t, "tsv", cfg.Format, "unset keys keep their default")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefaultPathMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "strategy", content: "strategy: 3\n"},
		{name: "format", content: "format: xml\n"},
		{name: "workers", content: "workers: -1\n"},
		{name: "yaml", content: "workers: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lds.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
