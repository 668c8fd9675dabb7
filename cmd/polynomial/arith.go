package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polynomial"
)

func newBinaryCmd(a *app, name, short string, op func(p, q polynomial.Polynomial) polynomial.Polynomial) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " P Q",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.operand(cmd, args[0])
			if err != nil {
				return err
			}
			q, err := a.operand(cmd, args[1])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("output")
			return a.output(cmd, op(p, q), out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "write the result to a file instead of standard output")
	return cmd
}

func newFmtCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt P",
		Short: "Reformat a polynomial",
		Long: `Fmt prints P in the standard text form. With --canonical, terms are
sorted by descending exponent and terms with equal exponents are combined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []polynomial.ParseOption
			if c, _ := cmd.Flags().GetBool("canonical"); c {
				opts = append(opts, polynomial.Canonical())
			}
			p, err := a.operand(cmd, args[0], opts...)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("output")
			return a.output(cmd, p, out)
		},
	}
	cmd.Flags().Bool("canonical", false, "sort and combine terms")
	cmd.Flags().StringP("output", "o", "", "write the result to a file instead of standard output")
	return cmd
}
