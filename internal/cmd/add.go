package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rcng81/job-tracker/internal/config"
	"github.com/rcng81/job-tracker/internal/export"
	"github.com/rcng81/job-tracker/internal/network"
	"github.com/rcng81/job-tracker/internal/scraper"
	"github.com/rcng81/job-tracker/internal/sheets"
)

type AddCmd struct {
	URL         string `arg:"" help:"Job posting URL."`
	Output      string `short:"o" placeholder:"PATH" help:"CSV output path. Defaults to the configured tracker file."`
	DateApplied string `name:"date-applied" placeholder:"YYYY-MM-DD" help:"Date applied. Defaults to today."`
	NoCSV       bool   `name:"no-csv" help:"Print only; skip writing the CSV."`
	Sheet       string `help:"Google Sheets spreadsheet ID to append to. Defaults to the configured sheet."`
	NoSheet     bool   `name:"no-sheet" help:"Skip the spreadsheet even when one is configured."`
	Proxies     string `help:"Comma-separated proxies; overrides config."`
	Timeout     int    `help:"Fetch timeout in seconds." default:"20"`
}

func (a *AddCmd) Run(ctx *Context) error {
	target := strings.TrimSpace(a.URL)
	if target == "" {
		return fmt.Errorf("url is required")
	}

	proxies, err := config.LoadProxies(a.Proxies)
	if err != nil {
		return err
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 5*time.Minute)
		if err != nil {
			return err
		}
	}
	client, err := network.NewClient(rotator)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.Timeout)*time.Second)
	defer cancel()

	ctx.Logger.Debug().
		Str("url", target).
		Str("site", scraper.SiteFromURL(target)).
		Msg("fetching job posting")

	job, err := scraper.Scrape(fetchCtx, client, target)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", target, err)
	}

	dateApplied := strings.TrimSpace(a.DateApplied)
	if dateApplied == "" {
		dateApplied = time.Now().Format("2006-01-02")
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(job); err != nil {
			return err
		}
	} else {
		export.PrintJob(ctx.Out, export.Row{Job: job, DateApplied: dateApplied})
	}

	if a.NoCSV {
		return nil
	}

	output := a.Output
	if output == "" {
		output = ctx.Config.DefaultOutput
	}

	if tracked, err := export.HasURL(output, job.URL); err == nil && tracked {
		ctx.UI.Warnf("URL already tracked in %s", output)
	}

	id, err := export.Append(output, job, dateApplied)
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	ctx.Logger.Debug().Int("id", id).Str("path", output).Msg("appended record")
	ctx.UI.Successf("Saved job data to %s", output)

	sheetID := a.Sheet
	if sheetID == "" {
		sheetID = ctx.Config.SheetID
	}
	if a.NoSheet || sheetID == "" {
		return nil
	}

	appender, err := sheets.NewAppender(context.Background(), ctx.Config.CredentialsFile)
	if err != nil {
		return fmt.Errorf("sheets: %w", err)
	}
	if err := appender.Append(context.Background(), sheetID, export.SheetRow(id, job, dateApplied)); err != nil {
		return fmt.Errorf("sheets: %w", err)
	}
	ctx.UI.Successf("Appended to spreadsheet %s", sheetID)
	return nil
}
