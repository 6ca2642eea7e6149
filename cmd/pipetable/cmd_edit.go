package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/pipetable/editor"
	"github.com/iw2rmb/pipetable/internal/logger"
)

func newEditCmd(o *rootOptions) *cobra.Command {
	var noColor, lineNums bool
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a file with table-aware keys",
		Long: `Open a file in a terminal editor. On a table row, tab and shift+tab move
between cells, enter moves to the next row and every command keeps the table
formatted. ctrl+s saves, ctrl+q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, err := os.ReadFile(path)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			opts, err := o.cfg.TableOptions()
			if err != nil {
				return err
			}
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			m := newEditModel(path, editor.Config{
				Text:         string(text),
				ShowLineNums: lineNums,
				Style:        editor.DefaultStyle(),
				Clipboard:    systemClipboard{},
				Table:        opts,
				Logger:       logger.With("command", "edit", "path", path),
			})
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			if fm, ok := final.(editModel); ok && fm.modified() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: unsaved changes discarded\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&lineNums, "line-numbers", true, "show line numbers")
	return cmd
}

// systemClipboard backs the editor's copy and paste with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
