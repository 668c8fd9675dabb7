package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval P --at X",
		Short: "Evaluate a polynomial",
		Long: `Evaluate prints the value of P at X. With a non-zero precision, the value
is computed with that many bits using arbitrary-precision arithmetic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			prec := a.cfg.Precision
			if cmd.Flags().Changed("prec") {
				prec, _ = cmd.Flags().GetUint("prec")
			}
			if prec > a.cfg.MaxPrecision {
				return fmt.Errorf("precision %d exceeds max_precision %d", prec, a.cfg.MaxPrecision)
			}
			p, err := a.operand(cmd, args[0])
			if err != nil {
				return err
			}
			if prec == 0 {
				x, err := strconv.ParseFloat(at, 64)
				if err != nil {
					return fmt.Errorf("bad value for --at: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", p.Evaluate(x))
				return err
			}
			x, _, err := big.ParseFloat(at, 0, prec, big.ToNearestEven)
			if err != nil {
				return fmt.Errorf("bad value for --at: %w", err)
			}
			r, err := p.EvaluateBig(x, prec)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Text('g', -1))
			return err
		},
	}
	cmd.Flags().String("at", "", "value of the variable")
	cmd.Flags().Uint("prec", 0, "precision in bits; 0 uses float64 (default from config)")
	cmd.MarkFlagRequired("at")
	return cmd
}
