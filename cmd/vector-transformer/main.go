package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	vtcli "github.com/Layr-Labs/vector-transformer/internal/cli"
	"github.com/Layr-Labs/vector-transformer/pkg/crypto"
	"github.com/Layr-Labs/vector-transformer/pkg/transformer"
)

func main() {
	app := &cli.App{
		Name:   "vector-transformer",
		Usage:  "Rewrite decimal-string integers in a JSON test-vector file as native JSON integers",
		Flags:  vtcli.Flags(),
		Action: runTransform,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTransform(c *cli.Context) error {
	cfg := vtcli.NewConfigFromCLI(c)
	return run(cfg, os.Stdout)
}

func run(cfg *vtcli.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opts, err := cfg.TransformOptions()
	if err != nil {
		return err
	}

	cfg.Logger.Debug("Reading test vectors", "file", cfg.InputFile)
	doc, err := transformer.LoadFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed to load test vectors: %w", err)
	}

	result, err := transformer.Transform(doc, opts)
	if err != nil {
		return fmt.Errorf("failed to transform test vectors: %w", err)
	}

	out, err := result.Encode(cfg.Indent)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, out, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	cfg.Logger.Info("Test vectors transformed",
		"input", cfg.InputFile,
		"output", outputName(cfg.OutputFile),
		"fields", len(result.Fields),
		"keccak256", crypto.Keccak256Hex(out),
	)
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
