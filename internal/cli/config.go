package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/vector-transformer/internal/config"
	"github.com/Layr-Labs/vector-transformer/pkg/crypto"
	"github.com/Layr-Labs/vector-transformer/pkg/transformer"
	"github.com/Layr-Labs/vector-transformer/pkg/types"
)

type Config struct {
	InputFile          string
	OutputFile         string
	Indent             bool
	ShapesFile         string
	FlatFields         []string
	PassThroughFields  []string
	DefaultShape       string
	RequirePassThrough bool
	FieldCheck         string
	G1Fields           []string
	LogLevel           string
	Logger             *slog.Logger
}

func GetLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewConfigFromCLI collects flag values. Logs go to stderr; stdout is reserved
// for the transformed document.
func NewConfigFromCLI(c *cli.Context) *Config {
	cfg := &Config{
		InputFile:          c.String(InputFileFlag.Name),
		OutputFile:         c.String(OutputFileFlag.Name),
		Indent:             c.Bool(IndentFlag.Name),
		ShapesFile:         c.String(ShapesFileFlag.Name),
		FlatFields:         c.StringSlice(FlatFieldFlag.Name),
		PassThroughFields:  c.StringSlice(PassThroughFieldFlag.Name),
		DefaultShape:       c.String(DefaultShapeFlag.Name),
		RequirePassThrough: c.Bool(RequirePassThroughFlag.Name),
		FieldCheck:         c.String(FieldCheckFlag.Name),
		G1Fields:           c.StringSlice(G1FieldFlag.Name),
		LogLevel:           c.String(LogLevelFlag.Name),
	}

	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: GetLogLevel(cfg.LogLevel)}))
	return cfg
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.InputFile, validation.Required),
		validation.Field(&c.OutputFile, validation.By(c.differsFromInput)),
		validation.Field(&c.DefaultShape, validation.In(
			string(types.ShapeFlat), string(types.ShapeNested), string(types.ShapeConcat))),
		validation.Field(&c.FieldCheck, validation.In(
			crypto.FieldCheckNone, crypto.FieldCheckBN254Fp, crypto.FieldCheckBN254Fr)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

func (c *Config) differsFromInput(value interface{}) error {
	out, _ := value.(string)
	if out == "" || c.InputFile == "" {
		return nil
	}
	if samePath(out, c.InputFile) {
		return errors.New("must differ from the input file")
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// TransformOptions resolves the shape table and validators selected by the config.
func (c *Config) TransformOptions() (transformer.Options, error) {
	shapes, err := config.BuildShapeTable(c.ShapesFile, config.Overrides{
		DefaultShape:      c.DefaultShape,
		FlatFields:        c.FlatFields,
		PassThroughFields: c.PassThroughFields,
	})
	if err != nil {
		return transformer.Options{}, fmt.Errorf("invalid shape configuration: %w", err)
	}

	opts := transformer.Options{
		Shapes:             shapes,
		RequirePassThrough: c.RequirePassThrough,
		Logger:             c.Logger,
	}

	rv, err := crypto.NewRangeValidator(c.FieldCheck)
	if err != nil {
		return transformer.Options{}, err
	}
	if rv != nil {
		opts.Validators = append(opts.Validators, rv)
	}
	if len(c.G1Fields) > 0 {
		opts.Validators = append(opts.Validators, crypto.NewG1Validator(c.G1Fields...))
	}
	return opts, nil
}
