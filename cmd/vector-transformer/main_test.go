package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vtcli "github.com/Layr-Labs/vector-transformer/internal/cli"
	"github.com/Layr-Labs/vector-transformer/pkg/transformer"
)

const referenceVectors = `{
  "private_keys": ["5", "7"],
  "G1_signatures": [{"x": "1", "y": "2"}],
  "svdw": [{"a": "10", "b": "11"}],
  "hash_to_point": [{"p": {"x": "3", "y": "4"}, "q": {"x": "5", "y": "6"}}]
}`

func testConfig(t *testing.T, input string) *vtcli.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bn254_reference.json")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))
	return &vtcli.Config{
		InputFile:  path,
		FieldCheck: "none",
		LogLevel:   "info",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRun_Stdout(t *testing.T) {
	cfg := testConfig(t, referenceVectors)
	var stdout bytes.Buffer
	require.NoError(t, run(cfg, &stdout))

	assert.Equal(t,
		`{"private_keys":["5", "7"],"G1_signatures":[[1,2]],"svdw":[[10,11]],"hash_to_point":[[[3,4],[5,6]]]}`+"\n",
		stdout.String())
}

func TestRun_OutputFile(t *testing.T) {
	cfg := testConfig(t, referenceVectors)
	cfg.OutputFile = filepath.Join(t.TempDir(), "bn254_reference_transform.json")
	cfg.DefaultShape = "concat"
	cfg.FieldCheck = "bn254-fp"
	cfg.G1Fields = []string{"G1_signatures"}

	var stdout bytes.Buffer
	require.NoError(t, run(cfg, &stdout))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"private_keys":["5","7"],"G1_signatures":[[1,2]],"svdw":[[10,11]],"hash_to_point":[[3,4,5,6]]}`,
		string(data))
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t, "{}")
		cfg.InputFile = filepath.Join(t.TempDir(), "nope.json")
		err := run(cfg, &bytes.Buffer{})
		assert.True(t, errors.Is(err, transformer.ErrFileNotFound))
	})

	t.Run("conversion", func(t *testing.T) {
		cfg := testConfig(t, `{"foo": [{"p": {"x": "abc"}}]}`)
		err := run(cfg, &bytes.Buffer{})
		assert.True(t, errors.Is(err, transformer.ErrConversion))
	})

	t.Run("point off curve", func(t *testing.T) {
		cfg := testConfig(t, `{"G1_signatures": [{"x": "1", "y": "3"}]}`)
		cfg.G1Fields = []string{"G1_signatures"}
		require.Error(t, run(cfg, &bytes.Buffer{}))
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig(t, "{}")
		cfg.LogLevel = "loud"
		require.Error(t, run(cfg, &bytes.Buffer{}))
	})

	t.Run("strict pass-through", func(t *testing.T) {
		cfg := testConfig(t, `{"svdw": [{"a": "10"}]}`)
		cfg.RequirePassThrough = true
		err := run(cfg, &bytes.Buffer{})
		assert.True(t, errors.Is(err, transformer.ErrMissingField))
	})
}
