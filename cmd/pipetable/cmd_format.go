package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/pipetable/buffer"
	"github.com/iw2rmb/pipetable/internal/logger"
	"github.com/iw2rmb/pipetable/tableeditor"
)

// errUnformatted is returned by format --check when some input would change.
var errUnformatted = errors.New("input is not formatted")

func newFormatCmd(o *rootOptions) *cobra.Command {
	var write, check bool
	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format every Markdown table",
		Long: `Format every Markdown table in the given files, or in standard input
when no files are given. Tables inside fenced code blocks are left alone.

By default the result is written to standard output. With --write the files
are rewritten in place; with --check nothing is written and the command fails
when any input is not already formatted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.cfg.TableOptions()
			if err != nil {
				return err
			}
			f := formatter{
				opts:   opts,
				log:    logger.With("command", "format"),
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				write:  write,
				check:  check,
			}
			if len(args) == 0 {
				if write {
					return errors.New("--write needs at least one file")
				}
				return f.stdin(cmd.InOrStdin())
			}
			return f.files(args)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&check, "check", false, "fail if any input is not formatted")
	cmd.MarkFlagsMutuallyExclusive("write", "check")
	return cmd
}

type formatter struct {
	opts   tableeditor.Options
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	write  bool
	check  bool
}

func (f formatter) stdin(r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	out, err := formatText(string(in), f.opts, f.log)
	if err != nil {
		return err
	}
	if f.check {
		if out != string(in) {
			fmt.Fprintln(f.stderr, "<stdin>")
			return errUnformatted
		}
		return nil
	}
	_, err = io.WriteString(f.stdout, out)
	return err
}

func (f formatter) files(paths []string) error {
	unformatted := 0
	for _, path := range paths {
		in, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := formatText(string(in), f.opts, f.log.With("path", path))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		changed := out != string(in)

		switch {
		case f.check:
			if changed {
				fmt.Fprintln(f.stderr, path)
				unformatted++
			}
		case f.write:
			if !changed {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
				return err
			}
			f.log.Info("formatted file", "path", path)
		default:
			if _, err := io.WriteString(f.stdout, out); err != nil {
				return err
			}
		}
	}
	if unformatted > 0 {
		return fmt.Errorf("%w: %d file(s)", errUnformatted, unformatted)
	}
	return nil
}

// formatText formats every table in text the way the editor's format-all
// command does.
func formatText(text string, opts tableeditor.Options, log *slog.Logger) (string, error) {
	buf := buffer.New(text, buffer.Options{})
	te := tableeditor.New(buf, tableeditor.WithLogger(log))
	if err := te.FormatAll(opts); err != nil {
		return "", err
	}
	return buf.Text(), nil
}
