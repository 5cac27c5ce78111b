package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
)

// Error is the class of errors returned by the command.
var Error = errs.Class("notate")

type options struct {
	configPath      string
	verbose         bool
	notation        string
	places          int
	placesUnder1000 int
}

// NewRootCommand returns the notate command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	defaults := DefaultConfig()

	root := &cobra.Command{
		Use:   "notate [magnitude...]",
		Short: "Format magnitudes in alternative notations",
		Long: `notate formats each magnitude given on the command line.

Magnitudes are decimal strings of any precision with an optional exponent,
e.g. 12, 1000000, 1e20000 or 3.5e100000000000000000000.

Notations:
  prime         - prime factorizations and power towers (default)
  engineering   - exponents in multiples of three
  greek-letters - thousands exponent in Greek letters
  binary        - base 2 digits
  cancer        - thousands exponent in emoji`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log how each magnitude is classified")

	root.Flags().StringVarP(&opts.notation, "notation", "n", defaults.Notation, "notation name")
	root.Flags().IntVar(&opts.places, "places", defaults.Places, "digits after the point for magnitudes >= 1000")
	root.Flags().IntVar(&opts.placesUnder1000, "places-under-1000", defaults.PlacesUnder1000, "digits after the point for magnitudes < 1000")

	root.AddCommand(newListCommand())

	return root
}

// Execute runs the command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// resolveConfig merges the config file with flags set on the command line.
func resolveConfig(cmd *cobra.Command, opts *options) (cfg Config, err error) {
	cfg = DefaultConfig()

	if opts.configPath != "" {
		cfg, err = LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("notation") {
		cfg.Notation = opts.notation
	}
	if flags.Changed("places") {
		cfg.Places = opts.places
	}
	if flags.Changed("places-under-1000") {
		cfg.PlacesUnder1000 = opts.placesUnder1000
	}

	return cfg, nil
}

func runFormat(cmd *cobra.Command, opts *options, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	n, err := Lookup(cfg.Notation)
	if err != nil {
		return err
	}

	for _, arg := range args {
		value, err := decimal.Parse(arg)
		if err != nil {
			return Error.Wrap(err)
		}

		log.WithFields(fields(n, arg, value)).Debug("formatting")

		_, err = fmt.Fprintln(cmd.OutOrStdout(), notation.Format(n, value, cfg.Places, cfg.PlacesUnder1000))
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}
