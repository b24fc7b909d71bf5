package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Urethramancer/hack/config"
	"github.com/Urethramancer/hack/cpu"
	"github.com/Urethramancer/hack/disassembler"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	mainCmd = &cobra.Command{
		Use:           "hackdis [flags] FILE",
		Short:         "Disassemble Hack machine code",
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	outputFlag string
	formatFlag string
)

func init() {
	fl := mainCmd.Flags()
	fl.StringVarP(&outputFlag, "output", "o", "", "output file (default: stdout)")
	fl.StringVarP(&formatFlag, "format", "f", config.FormatText, "input format: text or raw")
}

func run(cmd *cobra.Command, args []string) error {
	text, err := disassembleFile(args[0], formatFlag)
	if err != nil {
		return err
	}
	if outputFlag == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
		return errors.Wrap(err, "writing output file")
	}
	logrus.Infof("Disassembly written to %s", outputFlag)
	return nil
}

func disassembleFile(path, format string) (string, error) {
	switch format {
	case config.FormatText:
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrap(err, "reading input file")
		}
		defer f.Close()
		return disassembler.Disassemble(f)

	case config.FormatRaw:
		code, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(err, "reading input file")
		}
		return disassembler.DisassembleWords(cpu.BytesToWords(code))
	}
	return "", errors.Errorf("unknown format %q", format)
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}
}
