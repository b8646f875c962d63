package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/linekit"
	"github.com/spf13/cobra"
)

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify x1 y1 x2 y2",
		Short: "Classify a segment and print its slope-intercept form",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c := linekit.Classify(v[0], v[1], v[2], v[3])
			fmt.Fprintf(cmd.OutOrStdout(), "direction=%s slope=%s m=%g c=%g\n", c.Direction, c.Slope, c.M, c.C)
			return nil
		},
	}
}

func (a *app) intersectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect ax1 ay1 ax2 ay2 bx1 by1 bx2 by2",
		Short: "Intersect two segments",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			la, lb := linekit.L(v[0], v[1], v[2], v[3]), linekit.L(v[4], v[5], v[6], v[7])
			out := cmd.OutOrStdout()
			p, ok, parallel := linekit.IntersectWithParallel(la, lb)
			switch {
			case parallel:
				fmt.Fprintf(out, "parallel distance=%g\n", linekit.DistanceFromParallel(la, lb))
			case !ok:
				fmt.Fprintln(out, "none")
			default:
				fmt.Fprintf(out, "%g %g angle=%g\n", p.X, p.Y, linekit.AngleFrom(la, lb).Angle)
			}
			return nil
		},
	}
}

func (a *app) strokeCommand() *cobra.Command {
	var (
		width    float64
		angle    float64
		oneSided bool
	)
	cmd := &cobra.Command{
		Use:   "stroke x1 y1 x2 y2",
		Short: "Print the four sides of a stroked segment",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			s := linekit.DefaultStroke().WithWidth(width).WithRotation(linekit.RotationOf(angle))
			if oneSided {
				s = s.OneSided()
			}
			l := linekit.L(v[0], v[1], v[2], v[3])
			if !l.Valid() {
				a.logger.Warn("degenerate segment", "line", l)
			}
			for _, side := range s.Sides(l) {
				fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g\n", side.X1, side.Y1, side.X2, side.Y2)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&width, "width", "w", 1, "stroke width")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation in degrees about the segment midpoint")
	cmd.Flags().BoolVar(&oneSided, "one-sided", false, "expand to one side instead of centrally")
	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
