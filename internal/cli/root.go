// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/x-linux-isp/isptool"
	"github.com/x-linux-isp/isptool/pkg/core"
)

const toolName = "x-linux-isp-tool"

// errUsage makes Execute print the usage and exit 0.
var errUsage = errors.New("usage")

// options is the parsed command line. It is filled once by cobra and then
// only passed by value.
type options struct {
	version    bool
	features   bool
	list       bool
	install    string
	remove     string
	configPath string
	debug      bool
	args       []string
}

type action int

const (
	actionList action = iota
	actionInstall
	actionRemove
)

// action picks the single package action requested. Anything other than
// exactly one of list, install or remove, without stray arguments, is a
// usage error.
func (o options) action() (action, error) {
	if len(o.args) > 0 {
		return 0, errUsage
	}

	var picked []action
	if o.list {
		picked = append(picked, actionList)
	}
	if o.install != "" {
		picked = append(picked, actionInstall)
	}
	if o.remove != "" {
		picked = append(picked, actionRemove)
	}
	if len(picked) != 1 {
		return 0, errUsage
	}
	return picked[0], nil
}

// environment is what a run touches outside the process.
type environment struct {
	stdout       io.Writer
	stderr       io.Writer
	runner       core.Runner
	requireTools func(tools ...string) error
}

// Execute runs the tool with args (without the program name) and returns
// the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, args, environment{stdout: stdout, stderr: stderr})
}

func execute(ctx context.Context, args []string, env environment) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	err := cmd.ExecuteContext(ctx)
	if errors.Is(err, errUsage) {
		printUsage(env.stdout)
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		fmt.Fprintf(env.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(env environment) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           toolName,
		Short:         "Manage X-LINUX-ISP packages",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.args = args
			return run(cmd.Context(), opts, env)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.version, "version", "v", false, "show X-LINUX-ISP current version")
	flags.BoolVarP(&opts.features, "supported-features", "f", false, "print all supported frameworks")
	flags.BoolVarP(&opts.list, "list", "l", false, "print installed and ready-to-install packages")
	flags.StringVarP(&opts.install, "install", "i", "", "install X-LINUX-ISP package")
	flags.StringVarP(&opts.remove, "remove", "r", "", "remove X-LINUX-ISP package")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is "+core.DefaultConfigPath+")")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error { return errUsage })
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) { printUsage(c.OutOrStdout()) })

	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "\nUsage:\t'%s -[option]'\n\n", toolName)
	fmt.Fprint(w,
		"-v --version            : Show X-LINUX-ISP current version if it is installed\n"+
			"-f --supported-features : Print all supported frameworks in this X-LINUX-ISP version\n"+
			"-l --list               : Print installed and ready-to-install packages\n"+
			"-i --install <pkg>      : Install X-LINUX-ISP package\n"+
			"-r --remove  <pkg>      : Remove X-LINUX-ISP package\n"+
			"-h --help               : Show this help\n")
}

// run dispatches one invocation. Version and features only print embedded
// text; package actions need a package list sync and the catalog.
func run(ctx context.Context, opts options, env environment) error {
	if opts.version {
		return runVersion(env.stdout)
	}
	if opts.features {
		return runFeatures(env.stdout)
	}

	act, err := opts.action()
	if err != nil {
		return err
	}

	cfg, err := core.LoadConfig(opts.configPath)
	if err != nil {
		fail(env.stderr, fmt.Sprintf("E: %v", err))
		return &ExitError{Code: 1, Err: err}
	}
	if opts.debug {
		cfg.Debug = true
	}

	tool, err := isptool.New(cfg, isptool.Options{
		Runner:       env.runner,
		Stdout:       env.stdout,
		Stderr:       env.stderr,
		RequireTools: env.requireTools,
	})
	if err != nil {
		return report(env, cfg, err)
	}

	if err := tool.Sync(ctx); err != nil {
		return report(env, cfg, err)
	}

	switch act {
	case actionInstall:
		err = tool.Install(ctx, opts.install)
	case actionRemove:
		err = tool.Remove(ctx, opts.remove)
	default:
		err = tool.List()
	}
	if err != nil {
		return report(env, cfg, err)
	}
	return nil
}
