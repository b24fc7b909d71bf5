package main

import (
	"fmt"
	"os"

	"github.com/Urethramancer/hack/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	mainCmd = &cobra.Command{
		Use:   "hackasm [flags] FILE",
		Short: "Assemble Hack assembly into Hack machine code",
		Long: `Hackasm translates a Hack assembly (.asm) file into machine code.

By default the output is written next to FILE with its extension replaced
by .hack, one 16-character binary word per line. With --format raw the
words are written as big-endian bytes to a .bin file instead.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: before,
		RunE:              run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cfg        = config.Default()
	configPath string
	outputFlag string
	formatFlag string
	levelFlag  string
)

func init() {
	fl := mainCmd.Flags()
	fl.StringVarP(&outputFlag, "output", "o", "", "output file (default: FILE with its extension replaced)")
	fl.StringVarP(&formatFlag, "format", "f", config.FormatText, "output format: text or raw")
	fl.StringVar(&levelFlag, "log-level", "warn", "logging level")
	fl.StringVar(&configPath, "config", os.Getenv(config.EnvConfig), "path to a TOML config file ($"+config.EnvConfig+")")
}

// before loads the config file and lets explicitly set flags override it.
func before(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		c.Format = formatFlag
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = levelFlag
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "parsing log level %q", c.LogLevel)
	}
	logrus.SetLevel(level)
	cfg = c
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	in := args[0]
	out := outputFlag
	if out == "" {
		out = outputPath(in, cfg.OutputExtension())
	}
	logrus.WithFields(logrus.Fields{"input": in, "output": out, "format": cfg.Format}).Info("assembling")
	return assembleFile(in, out, cfg.Format)
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
