// Package app wires the command tree: it parses command-line tokens into a
// resource/operation selection, resolves the credential once, and drives
// request building, dispatch, and rendering.
package app

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"hevyctl/internal/auth"
	"hevyctl/internal/client"
	"hevyctl/internal/config"
	"hevyctl/internal/logging"
	"hevyctl/internal/render"
	"hevyctl/internal/request"
)

// App holds per-invocation state: global flag values, the loaded config,
// and the API client built from them.
type App struct {
	out   io.Writer
	httpc *http.Client // overridable for tests

	cfg     *config.Config
	client  *client.Client
	jsonOut bool

	flagAPIKey   string
	flagJSON     bool
	flagBaseURL  string
	flagConfig   string
	flagLogLevel string
}

// Opts allows overriding the App's collaborators.
type Opts struct {
	Out        io.Writer
	HTTPClient *http.Client
}

// New creates an App writing to stdout.
func New() *App {
	return NewWithOpts(Opts{})
}

// NewWithOpts creates an App with injected collaborators.
func NewWithOpts(opts Opts) *App {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &App{out: out, httpc: opts.HTTPClient}
}

// Execute runs the command line. It returns an error instead of exiting so
// main owns the exit code.
func (a *App) Execute(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func (a *App) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hevyctl",
		Short:             "Interact with the Hevy fitness API from the terminal",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flagAPIKey, "api-key", "", "Hevy API key (overrides "+auth.EnvAPIKey+")")
	pf.BoolVarP(&a.flagJSON, "json", "j", false, "print raw JSON instead of tables")
	pf.StringVar(&a.flagBaseURL, "base-url", "", "override the API base URL")
	pf.StringVar(&a.flagConfig, "config", "", "path to a YAML config file")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "log verbosity (panic, fatal, error, warn, info, debug, trace)")

	cmd.AddCommand(a.workoutsCmd(), a.routinesCmd(), a.exercisesCmd(), a.foldersCmd())
	return cmd
}

// setup runs once before any subcommand: config, logging, credential,
// client. A failure here means no request is ever issued.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	path := a.flagConfig
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := a.flagLogLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	if err := logging.Setup(level); err != nil {
		return err
	}

	key, err := auth.Resolve(a.flagAPIKey, cfg.APIKey)
	if err != nil {
		return err
	}

	baseURL := a.flagBaseURL
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	a.client = client.New(baseURL, key, a.httpc)

	a.jsonOut = a.flagJSON
	if !cmd.Flags().Changed("json") && cfg.Output == "json" {
		a.jsonOut = true
	}
	return nil
}

// run dispatches a built request and renders the response, choosing
// structured or tabular mode.
func (a *App) run(cmd *cobra.Command, spec *request.Spec, table func(io.Writer, []byte)) error {
	body, err := a.client.Do(cmd.Context(), spec)
	if err != nil {
		return err
	}
	a.show(body, table)
	return nil
}

func (a *App) show(body []byte, table func(io.Writer, []byte)) {
	if a.jsonOut {
		render.JSON(a.out, body)
		return
	}
	table(a.out, body)
}

// confirm prints a human confirmation line in tabular mode only; JSON
// output stays machine-parseable.
func (a *App) confirm(msg string) {
	if !a.jsonOut {
		fmt.Fprintln(a.out, msg)
	}
}

// effectivePageSize applies the config file default when --page-size was
// not given on the command line.
func (a *App) effectivePageSize(cmd *cobra.Command, pageSize int) int {
	if !cmd.Flags().Changed("page-size") && a.cfg != nil && a.cfg.PageSize > 0 {
		return a.cfg.PageSize
	}
	return pageSize
}

func addPageFlags(cmd *cobra.Command, page, pageSize *int, all *bool, sizeLimit int) {
	cmd.Flags().IntVar(page, "page", 1, "page number")
	cmd.Flags().IntVar(pageSize, "page-size", 5, fmt.Sprintf("items per page (1-%d)", sizeLimit))
	cmd.Flags().BoolVar(all, "all", false, "fetch every page sequentially and merge the results")
}

// stringPtrIfSet returns a pointer to the flag value only when the flag was
// explicitly supplied, preserving the omitted/empty distinction that
// partial updates depend on.
func stringPtrIfSet(cmd *cobra.Command, name string, value *string) *string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

func boolPtrIfSet(cmd *cobra.Command, name string, value *bool) *bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

func intPtrIfSet(cmd *cobra.Command, name string, value *int) *int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}
