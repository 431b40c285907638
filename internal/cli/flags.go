package cli

import "github.com/urfave/cli/v2"

var (
	InputFileFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Path to the JSON test-vector file (e.g. bn254_reference.json)",
		Required: true,
		EnvVars:  []string{"VECTOR_INPUT"},
	}

	OutputFileFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path for the transformed JSON (stdout when empty)",
		EnvVars: []string{"VECTOR_OUTPUT"},
	}

	IndentFlag = &cli.BoolFlag{
		Name:    "indent",
		Usage:   "Pretty-print the output JSON",
		EnvVars: []string{"VECTOR_INDENT"},
	}

	ShapesFileFlag = &cli.StringFlag{
		Name:    "shapes",
		Usage:   "Path to a YAML file assigning shapes (passthrough|flat|nested|concat) to fields",
		EnvVars: []string{"VECTOR_SHAPES_FILE"},
	}

	FlatFieldFlag = &cli.StringSliceFlag{
		Name:    "flat-field",
		Usage:   "Field whose entries are {key: value} maps (repeatable)",
		EnvVars: []string{"VECTOR_FLAT_FIELDS"},
	}

	PassThroughFieldFlag = &cli.StringSliceFlag{
		Name:    "passthrough-field",
		Usage:   "Field copied to the output unchanged (repeatable)",
		EnvVars: []string{"VECTOR_PASSTHROUGH_FIELDS"},
	}

	DefaultShapeFlag = &cli.StringFlag{
		Name:    "default-shape",
		Usage:   "Shape for fields not listed anywhere else (nested, concat or flat)",
		EnvVars: []string{"VECTOR_DEFAULT_SHAPE"},
	}

	RequirePassThroughFlag = &cli.BoolFlag{
		Name:    "require-passthrough",
		Usage:   "Fail when a pass-through field such as private_keys is missing",
		EnvVars: []string{"VECTOR_REQUIRE_PASSTHROUGH"},
	}

	FieldCheckFlag = &cli.StringFlag{
		Name:    "field-check",
		Value:   "none",
		Usage:   "Range-check every integer against a field modulus (none, bn254-fp, bn254-fr)",
		EnvVars: []string{"VECTOR_FIELD_CHECK"},
	}

	G1FieldFlag = &cli.StringSliceFlag{
		Name:    "g1-field",
		Usage:   "Field whose entries must be BN254 G1 points (x, y) (repeatable)",
		EnvVars: []string{"VECTOR_G1_FIELDS"},
	}

	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		EnvVars: []string{"LOG_LEVEL"},
	}
)

// Flags lists every flag of the vector-transformer command.
func Flags() []cli.Flag {
	return []cli.Flag{
		InputFileFlag,
		OutputFileFlag,
		IndentFlag,
		ShapesFileFlag,
		FlatFieldFlag,
		PassThroughFieldFlag,
		DefaultShapeFlag,
		RequirePassThroughFlag,
		FieldCheckFlag,
		G1FieldFlag,
		LogLevelFlag,
	}
}
