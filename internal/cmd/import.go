package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/jobboard/internal/importer"
	"github.com/jimezsa/jobboard/internal/network"
)

type ImportCmd struct {
	Source   string `arg:"" help:"HTML file path or http(s) URL containing JobPosting markup."`
	Employer string `required:"" help:"Employer username the jobs are posted as."`
	Password string `required:"" help:"Employer password." env:"JOBBOARD_PASSWORD"`
	Proxy    string `help:"Proxy URL (http, https or socks5) for URL sources." env:"JOBBOARD_PROXY"`
	DryRun   bool   `help:"Print the parsed postings without storing them."`
}

func (i *ImportCmd) Run(ctx *Context) error {
	runCtx := context.Background()

	var fetcher importer.Fetcher
	if importer.IsURL(i.Source) {
		f, err := network.NewFetcher(ctx.Config.ImportTimeout(), i.Proxy)
		if err != nil {
			return err
		}
		fetcher = f
	}
	drafts, err := importer.Load(runCtx, fetcher, i.Source)
	if err != nil {
		return err
	}
	ctx.Logger.Debug().Str("source", i.Source).Int("postings", len(drafts)).Msg("parsed postings")

	if i.DryRun {
		for _, draft := range drafts {
			ctx.UI.Infof("%s | %s | %s", draft.Title, draft.Location, draft.SalaryRange)
		}
		return nil
	}

	a, err := openApp(runCtx, ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.accounts.Login(runCtx, i.Employer, i.Password); err != nil {
		return fmt.Errorf("login %s: %w", i.Employer, err)
	}

	imported := 0
	for _, draft := range drafts {
		id, err := a.jobs.Post(runCtx, draft)
		if err != nil {
			ctx.UI.Errorf("Failed to post job %q: %v", draft.Title, err)
			continue
		}
		imported++
		ctx.Logger.Debug().Int64("job_id", id).Str("title", draft.Title).Msg("imported job")
	}
	a.accounts.Logout()

	ctx.UI.Successf("Imported %d of %d job(s) for %s.", imported, len(drafts), i.Employer)
	if imported < len(drafts) {
		return fmt.Errorf("%d job(s) failed to import", len(drafts)-imported)
	}
	return nil
}
