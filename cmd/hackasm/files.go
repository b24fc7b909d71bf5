package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/config"
	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
)

// outputPath replaces the extension of in with ext.
func outputPath(in, ext string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}

// checkInput fails if path cannot be read as a source file.
func checkInput(path string) error {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Errorf("%s not found", path)
	}
	if err != nil {
		return errors.Wrapf(err, "checking %s", path)
	}
	if fi.IsDir() {
		return errors.Errorf("%s is a directory", path)
	}
	return nil
}

// assembleFile translates in and writes the result to out. The output file
// is only created once translation has succeeded.
func assembleFile(in, out, format string) error {
	if err := checkInput(in); err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return errors.Wrapf(err, "opening %s", in)
	}
	defer f.Close()

	words, err := assembler.New().Assemble(f)
	if err != nil {
		return errors.Wrapf(err, "assembling %s", in)
	}

	return writeAtomic(out, func(w *os.File) error {
		if format == config.FormatRaw {
			_, err := w.Write(cpu.WordsToBytes(words))
			return err
		}
		return cpu.WriteText(w, words)
	})
}

// writeAtomic writes through a temporary file in the target directory and
// renames it into place. On any failure the target is left untouched.
func writeAtomic(path string, write func(*os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hackasm-*")
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
