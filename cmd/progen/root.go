package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/progen/api"
	"github.com/sarchlab/progen/config"
	"github.com/sarchlab/progen/dummy"
	"github.com/sarchlab/progen/executor"
	"github.com/sarchlab/progen/program"
)

const appName = "progen"

type options struct {
	configPath string
	cfg        config.Config
	report     bool
	reportFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Generate test programs from block templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file")
	flags.Uint64VarP(&opts.cfg.Seed, "seed", "s", opts.cfg.Seed, "seed of every random choice")
	flags.IntVar(&opts.cfg.MaxSteps, "max-steps", opts.cfg.MaxSteps, "maximum number of executed calls")
	flags.StringVar(&opts.cfg.Lint, "lint", opts.cfg.Lint, "label check before simulation: abort, warn or off")
	flags.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "trace, debug, info, warn or error")
	flags.StringVar(&opts.cfg.LogFormat, "log-format", opts.cfg.LogFormat, "text or json")

	cmd.AddCommand(newRunCmd(opts), newCheckCmd(opts))

	return cmd
}

// resolve loads the configuration file and environment, then applies the
// flags the user set explicitly.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Seed = o.cfg.Seed
	}
	if flags.Changed("max-steps") {
		c.MaxSteps = o.cfg.MaxSteps
	}
	if flags.Changed("lint") {
		c.Lint = o.cfg.Lint
	}
	if flags.Changed("log-level") {
		c.LogLevel = o.cfg.LogLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = o.cfg.LogFormat
	}
	if flags.Changed("exec-log") {
		c.ExecutionLog = o.cfg.ExecutionLog
	}
	if flags.Changed("output") {
		c.Output = o.cfg.Output
	}

	return c, c.Validate()
}

func newDriver(c config.Config, cmd *cobra.Command) api.Driver {
	logger := c.NewLogger(cmd.ErrOrStderr())

	e := dummy.MakeBuilder().
		WithSeed(c.Seed).
		WithLogger(logger).
		Build()

	b := api.MakeDriverBuilder().
		WithConfig(c).
		WithFactory(e).
		WithGenerator(e.Generator()).
		WithModel(e.Model()).
		WithISA(e.ISA()).
		WithLogger(logger)

	if c.ExecutionLog {
		b = b.WithExecutionLog(cmd.ErrOrStderr())
	}

	return b.Build()
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <template>",
		Short: "Generate, simulate and print a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			t, err := program.LoadTemplateFile(args[0])
			if err != nil {
				return &api.Error{Kind: api.KindTemplate, Err: err}
			}

			res, runErr := newDriver(c, cmd).RunTemplate(t)
			if res.Report != nil {
				if opts.report {
					res.Report.WriteReport(cmd.ErrOrStderr())
				}
				if opts.reportFile != "" {
					if err := res.Report.SaveReportToFile(opts.reportFile); err != nil {
						return errors.Join(runErr, err)
					}
				}
			}
			if runErr != nil {
				return runErr
			}

			return writeListing(cmd.OutOrStdout(), c.Output, res.Listing)
		},
	}

	cmd.Flags().BoolVar(&opts.cfg.ExecutionLog, "exec-log", false, "write executed calls and jumps to stderr")
	cmd.Flags().StringVarP(&opts.cfg.Output, "output", "o", "", "write the program to a file")
	cmd.Flags().BoolVar(&opts.report, "report", false, "print a run report to stderr")
	cmd.Flags().StringVar(&opts.reportFile, "report-file", "", "save the run report to a file")

	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <template>",
		Short: "Validate a template and check its labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			t, err := program.LoadTemplateFile(args[0])
			if err != nil {
				return &api.Error{Kind: api.KindTemplate, Err: err}
			}

			issues, err := newDriver(c, cmd).Check(t)
			if err != nil {
				return err
			}

			report := executor.GenerateReport("", issues, nil, nil)
			report.WriteReport(cmd.OutOrStdout())
			if !report.OK() {
				return &api.Error{
					Kind: api.KindTemplate,
					Err:  fmt.Errorf("%d label issues", len(issues)),
				}
			}

			return nil
		},
	}
}

func writeListing(stdout io.Writer, path, listing string) error {
	if path == "" {
		_, err := io.WriteString(stdout, listing)
		return err
	}

	return os.WriteFile(path, []byte(listing), 0o644)
}
