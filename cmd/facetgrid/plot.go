package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/gonumplot"
	"gopkg.in/yaml.v3"
)

// decodeConfig reads a YAML or TOML file into v. The format is chosen
// by the file extension.
func decodeConfig(path string, v interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, v); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		return nil
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("config %s: unknown format, want .yaml or .toml", path)
}

// loadConfig decodes the config file path into dst, the value the
// flags of cmd are bound to, and re-applies the flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command, path string, dst interface{}) error {
	type given struct {
		str   string
		slice []string
	}
	set := make(map[*pflag.Flag]given)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		g := given{str: f.Value.String()}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			g.slice = sv.GetSlice()
		}
		set[f] = g
	})

	if err := decodeConfig(path, dst); err != nil {
		return err
	}

	for f, g := range set {
		var err error
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(g.slice)
		} else {
			err = f.Value.Set(g.str)
		}
		if err != nil {
			return fmt.Errorf("--%s: %w", f.Name, err)
		}
	}
	return nil
}

// textFlag adapts an encoding.TextUnmarshaler to a pflag.Value.
type textFlag struct {
	v interface {
		UnmarshalText([]byte) error
		String() string
	}
}

func (f textFlag) String() string     { return f.v.String() }
func (f textFlag) Set(s string) error { return f.v.UnmarshalText([]byte(s)) }
func (f textFlag) Type() string       { return "string" }

func newRelplotCmd() *cobra.Command {
	var (
		in     input
		config string
		out    string
		o      facetgrid.RelOptions
	)
	cmd := &cobra.Command{
		Use:   "relplot file.csv",
		Short: "Draw a faceted scatter or line plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config != "" {
				if err := loadConfig(cmd, config, &o); err != nil {
					return err
				}
			}
			frame, err := in.load(args[0])
			if err != nil {
				return err
			}
			fig := gonumplot.New()
			if _, err := facetgrid.Relplot(frame, o, fig); err != nil {
				return err
			}
			return save(fig, out, cmd.OutOrStdout())
		},
	}

	in.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&config, "config", "", "read options from a YAML or TOML `file`; flags override it")
	fs.StringVarP(&out, "output", "o", "relplot.png", "output file (.png, .svg, .pdf) or - for PNG on stdout")

	fs.StringVarP(&o.X, "x", "x", "", "x variable")
	fs.StringVarP(&o.Y, "y", "y", "", "y variable")
	fs.StringVar(&o.Kind, "kind", "scatter", "scatter|line")
	fs.StringVar(&o.Row, "row", "", "row faceting variable")
	fs.StringVar(&o.Col, "col", "", "column faceting variable")
	fs.IntVar(&o.ColWrap, "col-wrap", 0, "wrap the column variable at this width")
	fs.StringSliceVar(&o.RowOrder, "row-order", nil, "order of the row levels")
	fs.StringSliceVar(&o.ColOrder, "col-order", nil, "order of the column levels")
	fs.StringVar(&o.Hue, "hue", "", "hue variable")
	fs.StringSliceVar(&o.HueOrder, "hue-order", nil, "order of the hue levels")
	fs.BoolVar(&o.DropUnorderedLevels, "drop-unordered", false, "skip observations whose level is missing from an explicit order")
	fs.StringVar(&o.Palette, "palette", "", "palette name, e.g. Set1 or kindlmann")
	fs.Var(textFlag{&o.ShareX}, "sharex", "x axis sharing: all|none|col|row")
	fs.Var(textFlag{&o.ShareY}, "sharey", "y axis sharing: all|none|col|row")
	fs.Float64SliceVar(&o.XLim, "xlim", nil, "fixed x axis limits min,max")
	fs.Float64SliceVar(&o.YLim, "ylim", nil, "fixed y axis limits min,max")
	fs.BoolVar(&o.MarginTitles, "margin-titles", false, "draw row titles in the right margin")
	fs.StringVar(&o.Size, "size", "", "size variable")
	fs.Float64SliceVar(&o.Sizes, "sizes", nil, "min,max marker size")
	fs.StringVar(&o.SizeTrans, "size-trans", "", "size transformation: linear|sqrt|log10")
	fs.StringVar(&o.Style, "style", "", "style variable")
	fs.StringSliceVar(&o.Markers, "markers", nil, "style tokens, e.g. circle,square/dashed")
	fs.BoolVar(&o.StyleCycle, "style-cycle", false, "reuse style tokens if there are more levels")
	fs.Float64Var(&o.Height, "height", 0, "panel height in inches")
	fs.Float64Var(&o.Aspect, "aspect", 0, "panel width to height ratio")
	fs.IntVar(&o.MaxLevels, "max-levels", 0, "maximum number of facet and hue levels (0: unlimited)")
	fs.StringVar(&o.Title, "title", "", "figure title")
	fs.Var(textFlag{&o.Legend}, "legend", "legend placement: outside|inside")
	fs.BoolVar(&o.HideLegend, "no-legend", false, "do not draw a legend")
	return cmd
}

func newPairplotCmd() *cobra.Command {
	var (
		in     input
		config string
		out    string
		o      facetgrid.PairOptions
	)
	cmd := &cobra.Command{
		Use:   "pairplot file.csv",
		Short: "Draw the pairwise relations of numeric variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config != "" {
				if err := loadConfig(cmd, config, &o); err != nil {
					return err
				}
			}
			frame, err := in.load(args[0])
			if err != nil {
				return err
			}
			fig := gonumplot.New()
			if _, err := facetgrid.Pairplot(frame, o, fig); err != nil {
				return err
			}
			return save(fig, out, cmd.OutOrStdout())
		},
	}

	in.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&config, "config", "", "read options from a YAML or TOML `file`; flags override it")
	fs.StringVarP(&out, "output", "o", "pairplot.png", "output file (.png, .svg, .pdf) or - for PNG on stdout")
	fs.StringSliceVar(&o.Vars, "vars", nil, "variables to pair (default: all numeric)")
	fs.BoolVar(&o.Corner, "corner", false, "draw only the lower triangle")
	fs.StringVar(&o.Hue, "hue", "", "hue variable")
	fs.StringSliceVar(&o.HueOrder, "hue-order", nil, "order of the hue levels")
	fs.BoolVar(&o.DropUnorderedLevels, "drop-unordered", false, "skip observations whose level is missing from an explicit order")
	fs.StringVar(&o.Palette, "palette", "", "palette name, e.g. Set1 or kindlmann")
	fs.Float64Var(&o.Height, "height", 0, "panel height in inches")
	fs.Float64Var(&o.Aspect, "aspect", 0, "panel width to height ratio")
	fs.IntVar(&o.MaxLevels, "max-levels", 0, "maximum number of hue levels (0: unlimited)")
	fs.StringVar(&o.Title, "title", "", "figure title")
	fs.Var(textFlag{&o.Legend}, "legend", "legend placement: outside|inside")
	fs.BoolVar(&o.HideLegend, "no-legend", false, "do not draw a legend")
	return cmd
}
