// Command facetgrid draws faceted plots of CSV files.
//
//	facetgrid relplot -x total_bill -y tip --col time --hue smoker -o tips.png tips.csv
//	facetgrid pairplot --vars total_bill,tip --hue smoker -o pairs.svg tips.csv
//	facetgrid columns tips.csv
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/data"
	"github.com/vdobler/facetgrid/gonumplot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// input are the flags shared by all commands reading a CSV file.
type input struct {
	times  []string // col or col=layout
	orders []string // col=a,b,c
}

func (in *input) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&in.times, "time", nil, "parse column as date: `col[=layout]` (default layout 2006-01-02)")
	cmd.Flags().StringArrayVar(&in.orders, "order", nil, "declare categorical level order: `col=a,b,...`")
}

// load reads the CSV file path and applies the time and order flags.
func (in *input) load(path string) (*data.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	frame, err := data.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, t := range in.times {
		col, layout := t, "2006-01-02"
		if i := strings.IndexByte(t, '='); i >= 0 {
			col, layout = t[:i], t[i+1:]
		}
		if err := frame.ParseTime(col, layout); err != nil {
			return nil, err
		}
	}
	for _, o := range in.orders {
		i := strings.IndexByte(o, '=')
		if i <= 0 {
			return nil, fmt.Errorf("bad --order %q, want col=a,b,...", o)
		}
		frame.SetCategories(o[:i], strings.Split(o[i+1:], ",")...)
	}
	return frame, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "facetgrid",
		Short:         "Draw faceted statistical plots of CSV files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				facetgrid.SetDebugOutput(cmd.ErrOrStderr())
			} else {
				facetgrid.SetDebugOutput(nil)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace axis sharing on stderr")

	root.AddCommand(newRelplotCmd())
	root.AddCommand(newPairplotCmd())
	root.AddCommand(newColumnsCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newFuncsCmd())
	return root
}

// save renders fig to out, or to stdout as PNG if out is "-".
func save(fig *gonumplot.Figure, out string, stdout io.Writer) error {
	if out == "-" {
		_, err := fig.WriteTo(stdout, "png")
		return err
	}
	return fig.Save(out)
}

func newColumnsCmd() *cobra.Command {
	var in input
	cmd := &cobra.Command{
		Use:   "columns file.csv",
		Short: "List the columns of a CSV file with their kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := in.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, col := range frame.Columns() {
				kind, err := frame.Kind(col)
				if err != nil {
					return err
				}
				v, err := data.Bind(frame, col)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-20s %-12s %d levels\n", col, kind, len(v.Observed()))
			}
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func newTableCmd() *cobra.Command {
	var in input
	cmd := &cobra.Command{
		Use:   "table file.csv",
		Short: "Print a CSV file as aligned table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := in.load(args[0])
			if err != nil {
				return err
			}
			frame.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func newFuncsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the registered plot functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range facetgrid.PlotFuncs() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
