// Command plsplot renders diagnostic figures of a fitted PLS model.
//
// The model is a YAML or JSON document (see model.Document):
//
//	plsplot coefficients wine.yaml -o coef.svg --sort
//	plsplot loadings wine.yaml -o loadings.html --factor 0.5
//	plsplot yhat wine.yaml -o yhat.png --title wine
//	plsplot report wine.yaml -o report.html
//	plsplot wget exercises/pls/files.txt
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	configFile string
	verbose    bool

	cfg    *Config
	logger *log.Logger
	stdout io.Writer
}

func main() {
	a := &app{logger: log.New(), stdout: os.Stdout}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "plsplot",
		Short:         "Diagnostic plots for fitted PLS regression models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.WithField("config", a.configFile).Debug("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML config file (theme, output, biplot defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(a.coefficientsCmd())
	root.AddCommand(a.loadingsCmd())
	root.AddCommand(a.yhatCmd())
	root.AddCommand(a.reportCmd())
	root.AddCommand(a.wgetCmd())

	return root
}
