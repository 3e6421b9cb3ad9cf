package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/mdtable"
	"github.com/bjaus/mdtable/internal/config"
	"github.com/bjaus/mdtable/internal/logger"
)

type options struct {
	aligns     string
	padding    int
	save       string
	delimiter  string
	quoteChar  string
	escapeChar string
	writeMode  writeModeValue
	format     string
	configFile string
	debug      bool
}

// writeModeValue validates --writemode while flags are parsed.
type writeModeValue mdtable.WriteMode

var _ pflag.Value = (*writeModeValue)(nil)

func (v *writeModeValue) String() string { return string(*v) }

func (v *writeModeValue) Set(s string) error {
	m, err := mdtable.ParseWriteMode(s)
	if err != nil {
		return err
	}
	*v = writeModeValue(m)
	return nil
}

func (v *writeModeValue) Type() string { return "mode" }

func newRootCmd() *cobra.Command {
	opts := options{writeMode: writeModeValue(mdtable.Overwrite)}

	cmd := &cobra.Command{
		Use:   "mdtable [flags] INPUT_FILE",
		Short: "Convert a CSV file into a Markdown table",
		Long: "mdtable reads a delimited text file and prints it as a Markdown table.\n" +
			"The first record is the header. Columns are padded to the width of their longest cell.\n" +
			"Output ends with the newline after the last row; no extra blank line follows it.",
		Example: "  mdtable people.csv\n" +
			"  mdtable people.csv -a l,r,c -p 2\n" +
			"  mdtable people.tsv --delimiter $'\\t' -s people.md --writemode append",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logger.LevelInfo
			if opts.debug {
				level = logger.LevelDebug
			}
			lgr := logger.New(level, cmd.ErrOrStderr()).WithValues(
				logger.CommandKey, cmd.Name(),
				logger.VersionKey, version,
			)
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))

			if opts.configFile == "" {
				return nil
			}
			return applyConfigFile(cmd.Flags(), opts.configFile, lgr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.aligns, "aligns", "a", "", "comma separated list of 'l,r,c', one per column")
	flags.IntVarP(&opts.padding, "padding", "p", 1, "spaces around each cell (must be positive)")
	flags.StringVarP(&opts.save, "save", "s", "", "path to save the table to (default: stdout)")
	flags.StringVar(&opts.delimiter, "delimiter", ",", "delimiter character in the input")
	flags.StringVar(&opts.quoteChar, "quotechar", `"`, "quote character in the input")
	flags.StringVar(&opts.escapeChar, "escapechar", "", "escape character in the input (default: none)")
	flags.Var(&opts.writeMode, "writemode", "write mode for --save: overwrite, overwrite-create, append, append-create (or w, w+, a, a+)")
	flags.StringVarP(&opts.format, "format", "f", string(mdtable.Markdown), "output format: markdown|html")
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML or TOML file with flag defaults")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to stderr")
	return cmd
}

// applyConfigFile sets every flag the user did not pass explicitly from the
// config file.
func applyConfigFile(flags *pflag.FlagSet, path string, lgr logr.Logger) error {
	file, err := config.Load(path)
	if err != nil {
		return err
	}
	for name, value := range file.Values() {
		if flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("config file %s: %s: %w", path, name, err)
		}
		lgr.V(1).Info("flag from config file", "flag", name, "value", value)
	}
	return nil
}

func run(cmd *cobra.Command, input string, opts options) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)
	defer logger.Sync(lgr)

	format, err := mdtable.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	dialect, err := mdtable.ParseDialect(opts.delimiter, opts.quoteChar, opts.escapeChar)
	if err != nil {
		return err
	}
	cfg := mdtable.Config{
		Aligns:  mdtable.ParseAligns(opts.aligns),
		Padding: opts.padding,
	}

	table, err := mdtable.FromFile(input, dialect, cfg)
	if err != nil {
		return err
	}
	lgr.V(1).Info("read table", logger.InputKey, input,
		"columns", table.NumColumns(), "rows", table.NumRows(), "widths", table.Widths())

	if opts.save == "" {
		return table.Write(cmd.OutOrStdout(), format)
	}
	if err := table.SaveAs(opts.save, mdtable.WriteMode(opts.writeMode), format); err != nil {
		return err
	}
	lgr.V(1).Info("saved table", logger.OutputKey, opts.save, "mode", opts.writeMode.String())
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved table to %s\n", opts.save)
	return err
}
