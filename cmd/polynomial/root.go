package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polynomial"
	"github.com/zephyrtronium/polynomial/internal/config"
	"github.com/zephyrtronium/polynomial/internal/logging"
)

// app is the state shared by subcommands once flags and configuration are
// resolved.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	vopt  polynomial.Option
	popts []polynomial.ParseOption
	fopts []polynomial.FormatOption
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "polynomial",
		Short:         "Parse, combine, and evaluate polynomials",
		Long:          `polynomial works with sums of terms like 3x^2+5x-7 given on the command line, in files, or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("var", "", "variable marker (default from config, else x)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error")

	root.AddCommand(
		newEvalCmd(a),
		newBinaryCmd(a, "add", "Add two polynomials", polynomial.Polynomial.Add),
		newBinaryCmd(a, "mul", "Multiply two polynomials", polynomial.Polynomial.Multiply),
		newFmtCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	name, _ := flags.GetString("config")
	cfg, err := config.Load(name)
	if err != nil {
		return err
	}
	if v, _ := flags.GetString("var"); v != "" {
		cfg.Variable = v
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = logging.New(level, cmd.ErrOrStderr())
	a.vopt, _ = cfg.VarOption()
	a.popts = []polynomial.ParseOption{a.vopt}
	a.fopts = []polynomial.FormatOption{a.vopt}
	a.log.Debug("configured", slog.String("config", name), slog.String("variable", cfg.Variable), slog.Uint64("precision", uint64(cfg.Precision)))
	return nil
}

// operand resolves a polynomial argument: @path reads a file, - reads
// standard input, and anything else is polynomial text.
func (a *app) operand(cmd *cobra.Command, arg string, opts ...polynomial.ParseOption) (polynomial.Polynomial, error) {
	opts = append(a.popts[:len(a.popts):len(a.popts)], opts...)
	var (
		p   polynomial.Polynomial
		err error
	)
	switch {
	case strings.HasPrefix(arg, "@"):
		p, err = polynomial.ReadFile(arg[1:], opts...)
	case arg == "-":
		p, err = polynomial.Parse(bufio.NewReader(cmd.InOrStdin()), opts...)
	default:
		p, err = polynomial.ParseString(arg, opts...)
	}
	if err != nil {
		return polynomial.Polynomial{}, fmt.Errorf("%s: %w", arg, err)
	}
	a.log.Debug("parsed operand", slog.String("arg", arg), slog.Int("terms", p.Len()))
	return p, nil
}

// output writes p to the file named out, or to the command's output if out
// is empty.
func (a *app) output(cmd *cobra.Command, p polynomial.Polynomial, out string) error {
	if out == "" {
		return polynomial.Print(cmd.OutOrStdout(), p, a.fopts...)
	}
	if err := polynomial.WriteFile(out, p, a.fopts...); err != nil {
		return err
	}
	a.log.Info("wrote polynomial", slog.String("path", out), slog.Int("terms", p.Len()))
	return nil
}
