package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/logger"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/workspacefinder"
)

// globals holds flags shared by every subcommand.
type globals struct {
	debug      bool
	workspace  string
	configPath string

	cleanup func() error
}

func (g *globals) close() {
	if g.cleanup != nil {
		_ = g.cleanup()
		g.cleanup = nil
	}
}

func Execute() {
	g := &globals{}
	cmd := newRootCmdWith(g)
	err := cmd.Execute()
	g.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&globals{})
}

func newRootCmdWith(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "crossedwires",
		Short:        "crossedwires: trace wire paths and find where they cross",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(g)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .crossedwires/logs/crossedwires.log")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (optional; defaults to <workspace>/crossedwires.yaml)")

	cmd.AddCommand(
		solveCmd(g),
		validateCmd(g),
		intersectionsCmd(g),
		traceCmd(),
		inputsCmd(g),
		showCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging writes logs under the workspace root. Outside a workspace
// logs are discarded unless --debug asks for them in the working directory.
func setupLogging(g *globals) {
	logRoot := g.workspace
	if logRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return
		}
		if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil {
			logRoot = root
		} else if g.debug {
			logRoot = wd
		}
	}
	if logRoot == "" {
		return
	}

	g.close()
	cleanup, _ := logger.Setup(logger.Config{
		Root:  logRoot,
		Debug: g.debug,
	})
	g.cleanup = cleanup
}
