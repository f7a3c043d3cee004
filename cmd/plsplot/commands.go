package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/components"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/model"
	"github.com/katalvlaran/plsviz/render/interactive"
	"github.com/katalvlaran/plsviz/render/static"
	"github.com/katalvlaran/plsviz/wget"
)

const formatHTML = "html"

// input is a decoded model document ready for the renderers.
type input struct {
	path string
	doc  *model.Document
	pls  *model.PLS
	vars adapter.VariableSet
	meta adapter.Metadata // nil when the document has no variables section
}

func (a *app) load(path string) (*input, error) {
	doc, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	pls, err := doc.Model()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	in := &input{
		path: path,
		doc:  doc,
		pls:  pls,
		vars: adapter.VariableSet{Predictors: doc.Predictors, Responses: doc.Responses},
	}
	if len(doc.Variables) > 0 {
		in.meta = adapter.MapMetadata{Types: doc.Types(), Descriptions: doc.Descriptions()}
	}
	a.logger.WithFields(log.Fields{
		"model":      path,
		"predictors": len(doc.Predictors),
		"responses":  len(doc.Responses),
		"components": pls.Components(),
	}).Debug("model loaded")
	return in, nil
}

// outputFlags are shared by every figure-producing command.
type outputFlags struct {
	out    string
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file; the extension picks the format unless --format is set")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: png, jpg, tiff, svg, pdf, eps or html")
}

var errNoOutput = errors.New("an output file is required (--out)")

// resolve returns the output path and its format. Precedence: --format,
// the --out extension, the config file. The path extension is made to
// match the format.
func (o *outputFlags) resolve(cfg *Config) (path, format string, err error) {
	if o.out == "" {
		return "", "", errNoOutput
	}
	ext := strings.TrimPrefix(filepath.Ext(o.out), ".")
	switch {
	case o.format != "":
		format = o.format
	case ext != "":
		format = ext
	default:
		format = cfg.Format
	}
	format = strings.ToLower(format)
	path = o.out
	if !strings.EqualFold(ext, format) {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
	}
	return path, format, nil
}

func (a *app) writeFigures(in *input, o *outputFlags, figs []*static.Figure) error {
	path, format, err := o.resolve(a.cfg)
	if err != nil {
		return err
	}
	if format == formatHTML {
		return fmt.Errorf("%s: this plot has no interactive form", path)
	}
	paths, err := static.SaveAll(figs, path)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.logger.WithFields(log.Fields{"model": in.path, "output": p, "format": format}).Info("figure written")
	}
	return nil
}

func (a *app) writePage(in *input, path string, page *components.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = interactive.RenderPage(f, page); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.logger.WithFields(log.Fields{"model": in.path, "output": path, "format": formatHTML}).Info("page written")
	return nil
}

func (a *app) coefficientsCmd() *cobra.Command {
	var (
		o    outputFlags
		sort bool
		line bool
		list bool
	)
	cmd := &cobra.Command{
		Use:   "coefficients MODEL",
		Short: "Plot the regression coefficients of every response",
		Long: `Draws one figure per response: bars colored by variable type (default),
or a line over the predictors with --line. --list prints the coefficients
instead of plotting them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.load(args[0])
			if err != nil {
				return err
			}
			if list {
				return a.listCoefficients(in, sort)
			}

			path, format, err := o.resolve(a.cfg)
			if err != nil {
				return err
			}
			if format == formatHTML {
				page, err := interactive.NewRenderer(a.cfg.interactiveTheme()).Coefficients(in.pls, in.vars, in.meta)
				if err != nil {
					return err
				}
				return a.writePage(in, path, page)
			}

			r := static.NewRenderer(a.cfg.staticTheme())
			var figs []*static.Figure
			if line {
				figs, err = r.ShowCoefficients(in.pls, in.vars, sort)
			} else {
				figs, err = r.PlotCoefficients(in.pls, in.vars, in.meta)
			}
			if err != nil {
				return err
			}
			return a.writeFigures(in, &o, figs)
		},
	}
	o.register(cmd)
	cmd.Flags().BoolVar(&sort, "sort", false, "Sort by descending absolute value (--line and --list)")
	cmd.Flags().BoolVar(&line, "line", false, "Line-and-marker plot instead of bars")
	cmd.Flags().BoolVar(&list, "list", false, "Print coefficients to stdout")
	return cmd
}

func (a *app) listCoefficients(in *input, sort bool) error {
	var opts []adapter.Option
	if sort {
		opts = append(opts, adapter.WithSortByAbs())
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "response\tvariable\tcoefficient\ttype")
	for r, resp := range in.vars.Responses {
		coefs, err := adapter.ExtractCoefficients(in.pls, in.vars, r, opts...)
		if err != nil {
			return err
		}
		for _, c := range coefs {
			fmt.Fprintf(tw, "%s\t%s\t%.6g\t%s\n", resp, c.Name, c.Value, adapter.Category(in.meta, c.Name))
		}
	}
	return tw.Flush()
}

// biplotFlags overlay the config's biplot section.
type biplotFlags struct {
	xFamily, yFamily adapter.Family
	components       []int
	factor           float64
	limits           []float64
}

func (b *biplotFlags) register(cmd *cobra.Command) {
	b.xFamily, b.yFamily = adapter.DefaultXFamily, adapter.DefaultYFamily
	cmd.Flags().Var(&b.xFamily, "x-family", "Predictor-side matrices: loadings, weights or rotations")
	cmd.Flags().Var(&b.yFamily, "y-family", "Response-side matrices: loadings, weights or rotations")
	cmd.Flags().IntSliceVar(&b.components, "components", []int{0, 1}, "0-based component pair for the x and y axes")
	cmd.Flags().Float64Var(&b.factor, "factor", layout.DefaultFactor, "Scale of the drawn response vectors")
	cmd.Flags().Float64SliceVar(&b.limits, "limits", nil, "Axis range low,high for both axes (default -0.4,0.4)")
}

// apply copies changed flags into cfg.
func (b *biplotFlags) apply(cmd *cobra.Command, cfg *Config) error {
	fs := cmd.Flags()
	if fs.Changed("x-family") {
		cfg.Biplot.XFamily = b.xFamily
	}
	if fs.Changed("y-family") {
		cfg.Biplot.YFamily = b.yFamily
	}
	if fs.Changed("components") {
		cfg.Biplot.Components = b.components
	}
	if fs.Changed("factor") {
		cfg.Biplot.Factor = b.factor
	}
	if fs.Changed("limits") {
		cfg.Biplot.Limits = b.limits
	}
	return cfg.validate()
}

func (a *app) loadingsCmd() *cobra.Command {
	var (
		o outputFlags
		b biplotFlags
	)
	cmd := &cobra.Command{
		Use:   "loadings MODEL",
		Short: "Draw the loading biplot of two latent components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := b.apply(cmd, a.cfg); err != nil {
				return err
			}
			in, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.logger.WithFields(log.Fields{
				"x_family":   a.cfg.Biplot.XFamily,
				"y_family":   a.cfg.Biplot.YFamily,
				"components": a.cfg.Biplot.Components,
			}).Debug("biplot selection")

			path, format, err := o.resolve(a.cfg)
			if err != nil {
				return err
			}
			if format == formatHTML {
				r := interactive.NewRenderer(a.cfg.interactiveTheme())
				sc, err := r.Loadings(in.pls, in.vars, in.meta, a.cfg.biplotOptions()...)
				if err != nil {
					return err
				}
				return a.writePage(in, path, r.Page(sc))
			}

			fig, err := static.NewRenderer(a.cfg.staticTheme()).PlotLoadings(in.pls, in.vars, in.meta, a.cfg.biplotOptions()...)
			if err != nil {
				return err
			}
			return a.writeFigures(in, &o, []*static.Figure{fig})
		},
	}
	o.register(cmd)
	b.register(cmd)
	return cmd
}

func (a *app) yhatCmd() *cobra.Command {
	var (
		o     outputFlags
		title string
	)
	cmd := &cobra.Command{
		Use:   "yhat MODEL",
		Short: "Scatter predicted against observed responses for the train (and test) sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.load(args[0])
			if err != nil {
				return err
			}
			train, err := in.doc.Train.Sample()
			if err != nil {
				return err
			}
			if train == nil {
				return fmt.Errorf("%s: no train sample: %w", in.path, model.ErrInvalidDocument)
			}
			test, err := in.doc.Test.Sample()
			if err != nil {
				return err
			}
			if title == "" {
				title = in.pls.Name()
			}

			fig, err := static.NewRenderer(a.cfg.staticTheme()).YhatVsY(in.pls, *train, test, title)
			if err != nil {
				return err
			}
			return a.writeFigures(in, &o, []*static.Figure{fig})
		},
	}
	o.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "Panel title prefix (default: model name)")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	var (
		out string
		b   biplotFlags
	)
	cmd := &cobra.Command{
		Use:   "report MODEL",
		Short: "Write one interactive HTML page with coefficients and loadings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := b.apply(cmd, a.cfg); err != nil {
				return err
			}
			in, err := a.load(args[0])
			if err != nil {
				return err
			}
			r := interactive.NewRenderer(a.cfg.interactiveTheme())
			bars, err := r.CoefficientBars(in.pls, in.vars, in.meta)
			if err != nil {
				return err
			}
			charts := make([]components.Charter, 0, len(bars)+1)
			for _, bar := range bars {
				charts = append(charts, bar)
			}
			sc, err := r.Loadings(in.pls, in.vars, in.meta, a.cfg.biplotOptions()...)
			if err != nil {
				return err
			}
			charts = append(charts, sc)
			path, _, err := (&outputFlags{out: out, format: formatHTML}).resolve(a.cfg)
			if err != nil {
				return err
			}
			return a.writePage(in, path, r.Page(charts...))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "report.html", "Output HTML file")
	b.register(cmd)
	return cmd
}

func (a *app) wgetCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "wget FILE",
		Short: "Print notebook download commands for the files listed in FILE",
		Long: `FILE lists one file name per line. The exercise is the name of the
directory holding FILE.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := wget.FromFile(base, args[0])
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(a.stdout, l)
			}
			a.logger.WithFields(log.Fields{"list": args[0], "commands": len(lines)}).Debug("wget commands generated")
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", wget.DefaultBaseURL, "Base URL of the exercise tree")
	return cmd
}
