package cmd

import (
	"errors"
	"os"

	"github.com/rcng81/job-tracker/internal/export"
)

type ListCmd struct {
	Output string `short:"o" placeholder:"PATH" help:"CSV path to read. Defaults to the configured tracker file."`
}

func (l *ListCmd) Run(ctx *Context) error {
	path := l.Output
	if path == "" {
		path = ctx.Config.DefaultOutput
	}

	rows, err := export.ReadRows(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ctx.UI.Infof("No tracker file at %s", path)
			return nil
		}
		return err
	}

	format := export.FormatTable
	if ctx.JSONOutput {
		format = export.FormatJSON
	}
	if ctx.PlainText {
		format = export.FormatTSV
	}

	return export.WriteRows(ctx.Out, rows, format, export.WriteOptions{
		ColorEnabled: ctx.UI.ColorEnabled,
		Hyperlinks:   format == export.FormatTable,
	})
}
