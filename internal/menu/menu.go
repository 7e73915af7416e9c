package menu

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/jimezsa/jobboard/internal/board"
	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/session"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

const (
	ChoiceRegister = iota + 1
	ChoiceLogin
	ChoicePostJob
	ChoiceMyJobs
	ChoiceAllJobs
	ChoiceApply
	ChoiceMyApplications
	ChoiceLogout
	ChoiceExit
)

var entries = []string{
	"Register",
	"Login",
	"Post Job",
	"View My Posted Jobs",
	"View All Jobs",
	"Apply for Job",
	"View My Applications",
	"Logout",
	"Exit",
}

// Controller runs the numbered menu loop over the board services.
type Controller struct {
	UI           *ui.UI
	Session      *session.Session
	Accounts     *board.Accounts
	Jobs         *board.Jobs
	Applications *board.Applications
	Logger       zerolog.Logger
}

// Run shows the menu until the user exits or input ends. Operation failures
// are printed and never end the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.showMenu()
		choice, err := c.UI.PromptInt("Choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ui.ErrNotNumber) {
			c.UI.Warnf("Invalid choice. Please try again.")
			continue
		}
		if err != nil {
			return err
		}

		c.Logger.Debug().Int("choice", choice).Bool("logged_in", c.Session.LoggedIn).Msg("menu choice")
		if choice == ChoiceExit {
			c.UI.Infof("Exiting...")
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (c *Controller) showMenu() {
	c.UI.Infof("")
	c.UI.Headerf("=== JobConnect Menu ===")
	for i, entry := range entries {
		c.UI.Infof("%d. %s", i+1, entry)
	}
}

// dispatch runs one menu action. Only input errors are returned.
func (c *Controller) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ChoiceRegister:
		return c.register(ctx)
	case ChoiceLogin:
		return c.login(ctx)
	case ChoiceLogout:
		c.Accounts.Logout()
		c.UI.Infof("Logged out.")
		return nil
	case ChoicePostJob, ChoiceMyJobs, ChoiceAllJobs, ChoiceApply, ChoiceMyApplications:
		if !c.Session.LoggedIn {
			c.UI.Warnf("Please login first.")
			return nil
		}
	default:
		c.UI.Warnf("Invalid choice. Please try again.")
		return nil
	}

	switch choice {
	case ChoicePostJob:
		return c.postJob(ctx)
	case ChoiceMyJobs:
		c.listMyJobs(ctx)
	case ChoiceAllJobs:
		c.listAllJobs(ctx)
	case ChoiceApply:
		return c.apply(ctx)
	case ChoiceMyApplications:
		c.listMyApplications(ctx)
	}
	return nil
}

func (c *Controller) register(ctx context.Context) error {
	c.UI.Headerf("\n--- Register ---")
	username, err := c.UI.PromptWord("Username: ")
	if err != nil {
		return err
	}
	email, err := c.UI.PromptWord("Email: ")
	if err != nil {
		return err
	}
	password, err := c.UI.PromptWord("Password: ")
	if err != nil {
		return err
	}
	choice, err := c.UI.PromptInt("User Type (1 = Job Seeker, 2 = Employer): ")
	if err != nil && !errors.Is(err, ui.ErrNotNumber) {
		return err
	}

	_, err = c.Accounts.Register(ctx, username, email, password, choice)
	switch {
	case errors.Is(err, board.ErrInvalidUserType):
		c.UI.Warnf("Invalid type.")
	case err != nil:
		c.UI.Errorf("Registration failed: %v", err)
	default:
		c.UI.Successf("Registered successfully!")
	}
	return nil
}

func (c *Controller) login(ctx context.Context) error {
	c.UI.Headerf("\n--- Login ---")
	username, err := c.UI.PromptWord("Username: ")
	if err != nil {
		return err
	}
	password, err := c.UI.PromptWord("Password: ")
	if err != nil {
		return err
	}

	err = c.Accounts.Login(ctx, username, password)
	switch {
	case errors.Is(err, board.ErrInvalidCredentials):
		c.UI.Warnf("Invalid credentials.")
	case err != nil:
		c.UI.Errorf("Error: %v", err)
	default:
		c.UI.Successf("Logged in as %s", username)
	}
	return nil
}

func (c *Controller) postJob(ctx context.Context) error {
	if err := c.Session.Require(models.RoleEmployer); err != nil {
		c.UI.Warnf("Only employers can post jobs.")
		return nil
	}

	c.UI.Headerf("\n--- Post a Job ---")
	var draft models.JobDraft
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Title: ", &draft.Title},
		{"Description: ", &draft.Description},
		{"Requirements: ", &draft.Requirements},
		{"Location: ", &draft.Location},
		{"Salary Range: ", &draft.SalaryRange},
		{"Contact Number: ", &draft.ContactNumber},
	}
	for _, p := range prompts {
		value, err := c.UI.Prompt(p.label)
		if err != nil {
			return err
		}
		*p.dst = value
	}

	_, err := c.Jobs.Post(ctx, draft)
	switch {
	case errors.Is(err, session.ErrWrongRole):
		c.UI.Warnf("Only employers can post jobs.")
	case errors.Is(err, board.ErrUserNotFound):
		c.UI.Warnf("Employer ID not found!")
	case err != nil:
		c.UI.Errorf("Failed to post job: %v", err)
	default:
		c.UI.Successf("Job posted successfully!")
	}
	return nil
}

func (c *Controller) listMyJobs(ctx context.Context) {
	rows, err := c.Jobs.ListMine(ctx)
	if c.reportListError(err, "Only employers can view their posted jobs.", "Employer ID not found!") {
		return
	}
	c.UI.Headerf("\n--- My Posted Jobs ---")
	c.printRows(project(rows, models.EmployerJobColumns))
}

func (c *Controller) listAllJobs(ctx context.Context) {
	rows, err := c.Jobs.ListAll(ctx)
	if c.reportListError(err, "Only job seekers can view jobs.", "") {
		return
	}
	c.UI.Headerf("\n--- Available Jobs ---")
	c.printRows(project(rows, models.SeekerJobColumns))
}

func (c *Controller) apply(ctx context.Context) error {
	if err := c.Session.Require(models.RoleJobSeeker); err != nil {
		c.UI.Warnf("Only job seekers can apply for jobs.")
		return nil
	}

	jobID, err := c.UI.PromptInt("Enter Job ID to apply: ")
	if errors.Is(err, ui.ErrNotNumber) {
		c.UI.Warnf("Invalid job ID.")
		return nil
	}
	if err != nil {
		return err
	}

	_, err = c.Applications.Apply(ctx, int64(jobID))
	switch {
	case errors.Is(err, board.ErrAlreadyApplied):
		c.UI.Warnf("You have already applied for this job.")
	case errors.Is(err, session.ErrWrongRole):
		c.UI.Warnf("Only job seekers can apply for jobs.")
	case errors.Is(err, board.ErrUserNotFound):
		c.UI.Warnf("Job seeker ID not found!")
	case err != nil:
		c.UI.Errorf("Failed to apply: %v", err)
	default:
		c.UI.Successf("Application submitted successfully!")
	}
	return nil
}

func (c *Controller) listMyApplications(ctx context.Context) {
	rows, err := c.Applications.ListMine(ctx)
	if c.reportListError(err, "Only job seekers can view their applications.", "Job seeker ID not found!") {
		return
	}
	c.UI.Headerf("\n--- My Applications ---")
	c.printRows(project(rows, models.ApplicationColumns))
}

// reportListError prints the message for a failed listing and reports
// whether one was printed.
func (c *Controller) reportListError(err error, wrongRole, notFound string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrWrongRole):
		c.UI.Warnf("%s", wrongRole)
	case errors.Is(err, board.ErrUserNotFound) && notFound != "":
		c.UI.Errorf("%s", notFound)
	default:
		c.UI.Errorf("Error: %v", err)
	}
	return true
}

func (c *Controller) printRows(rows iter.Seq2[models.Record, error]) {
	for record, err := range rows {
		if err != nil {
			c.UI.Errorf("Error: %v", err)
			return
		}
		if err := export.WritePipe(c.UI.Out, record); err != nil {
			c.Logger.Debug().Err(err).Msg("write row")
			return
		}
	}
}

func project[T models.Valuer](rows iter.Seq2[T, error], columns []string) iter.Seq2[models.Record, error] {
	return func(yield func(models.Record, error) bool) {
		for row, err := range rows {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(models.Project(row, columns), nil) {
				return
			}
		}
	}
}
