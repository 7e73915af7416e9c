package cmd

import (
	"context"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/muesli/termenv"
)

type JobsCmd struct {
	Employer string `help:"Only list jobs posted by this employer username."`
	Format   string `help:"Output format: table, csv, tsv, json, md, pipe." enum:",table,csv,tsv,json,md,pipe" default:""`
	Output   string `name:"output" short:"o" help:"Write output to a file."`
}

func (j *JobsCmd) Run(ctx *Context) error {
	runCtx := context.Background()
	a, err := openApp(runCtx, ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	var rows iter.Seq2[models.Job, error]
	columns := models.SeekerJobColumns
	if strings.TrimSpace(j.Employer) != "" {
		rows, err = a.jobs.ListByEmployer(runCtx, j.Employer)
		if err != nil {
			return err
		}
		columns = models.EmployerJobColumns
	} else {
		rows = a.jobs.Catalog(runCtx)
	}

	var records []models.Record
	for job, err := range rows {
		if err != nil {
			return err
		}
		records = append(records, models.Project(job, columns))
	}

	writer := ctx.Out
	if j.Output != "" {
		file, err := os.Create(j.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	format, err := resolveFormat(j.Format, j.Output, writer)
	if err != nil {
		return err
	}
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && j.Output == ""
	return export.WriteRecords(writer, columns, records, format, export.WriteOptions{ColorEnabled: colorEnabled})
}

// resolveFormat picks the explicit format, CSV for files and pipes, and a
// table for terminals.
func resolveFormat(value, outputPath string, out io.Writer) (export.Format, error) {
	if value != "" {
		return export.ParseFormat(value)
	}
	if outputPath != "" || !isTTY(out) {
		return export.FormatCSV, nil
	}
	return export.FormatTable, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
