package cli

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const ShortDesc = "Evaluate set expressions over bounded integer ranges"

const LongDesc = `Rangeset parses lists of integer ranges into canonical sets of disjoint
closed intervals and combines them with set algebra.

An operand is a list of ranges separated by ';' or whitespace; whitespace
inside brackets stays part of the range. A range is one of
  N            a single value
  a..b a..=b   half open and closed literals, also a.. ..b ..=b and ..
  [a,b] (a,b)  interval notation, an open side may be left empty: [a,) (,b]
  >N >=N <N <=N =N
Every operand is evaluated in the domain chosen by --type.`

// App carries the state of one invocation.
type App struct {
	Type       DomainType
	Output     OutputFormat
	Verbose    bool
	ConfigPath string

	Limit int
	Human bool
	Mask  string

	Sources Sources

	log    *logrus.Logger
	engine Engine
}

// NewApp returns an app reading the host through gopsutil.
func NewApp() *App {
	cfg := DefaultConfig()
	return &App{
		Type:    cfg.Type,
		Output:  cfg.Output,
		Sources: HostSources(),
	}
}

// BindFlags registers the global flags on flags.
func (a *App) BindFlags(flags *pflag.FlagSet) {
	flags.VarP(&a.Type, "type", "t", "integer domain: one of "+strings.Join(DomainTypeStrings(), ", "))
	flags.VarP(&a.Output, "output", "o", "output format: one of "+strings.Join(OutputFormatStrings(), ", "))
	flags.BoolVarP(&a.Verbose, "verbose", "v", false, "log debug information to stderr")
	flags.StringVar(&a.ConfigPath, "config", "", "TOML config file supplying defaults (env "+ConfigEnv+")")
}

// Prepare applies the config file to every global flag left unset, then
// builds the logger and the engine. It runs before any subcommand.
func (a *App) Prepare(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if path := ConfigPath(a.ConfigPath); path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		if !flags.Changed("type") {
			a.Type = cfg.Type
		}
		if !flags.Changed("output") {
			a.Output = cfg.Output
		}
		if !flags.Changed("verbose") {
			a.Verbose = cfg.Verbose
		}
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.Verbose)
	engine, err := NewEngine(a.Type, a.log.WithField("type", a.Type.String()))
	if err != nil {
		return err
	}
	a.engine = engine
	a.log.WithField("command", cmd.Name()).Debug("prepared")
	return nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (a *App) printer(cmd *cobra.Command) *Printer {
	return NewPrinter(cmd.OutOrStdout(), a.Output)
}

func (a *App) setResult(cmd *cobra.Command, s Set, err error) error {
	if err != nil {
		return err
	}
	return a.printer(cmd).Set(s)
}

func (a *App) Show(cmd *cobra.Command, args []string) error {
	s, err := a.engine.Show(args[0])
	return a.setResult(cmd, s, err)
}

func (a *App) Union(cmd *cobra.Command, args []string) error {
	s, err := a.engine.Union(args...)
	return a.setResult(cmd, s, err)
}

func (a *App) Intersect(cmd *cobra.Command, args []string) error {
	s, err := a.engine.Intersect(args...)
	return a.setResult(cmd, s, err)
}

func (a *App) Diff(cmd *cobra.Command, args []string) error {
	s, err := a.engine.Diff(args...)
	return a.setResult(cmd, s, err)
}

func (a *App) SymDiff(cmd *cobra.Command, args []string) error {
	s, err := a.engine.SymDiff(args[0], args[1])
	return a.setResult(cmd, s, err)
}

func (a *App) Complement(cmd *cobra.Command, args []string) error {
	s, err := a.engine.Complement(args[0])
	return a.setResult(cmd, s, err)
}

func (a *App) Contains(cmd *cobra.Command, args []string) error {
	bs, err := a.engine.Contains(args[0], args[1:]...)
	if err != nil {
		return err
	}
	return a.printer(cmd).Bools(bs)
}

func (a *App) ContainsAll(cmd *cobra.Command, args []string) error {
	ok, err := a.engine.ContainsAll(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printer(cmd).Bool(ok)
}

func (a *App) Overlaps(cmd *cobra.Command, args []string) error {
	ok, err := a.engine.Overlaps(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printer(cmd).Bool(ok)
}

func (a *App) Iter(cmd *cobra.Command, args []string) error {
	if a.Limit < 0 {
		return errors.Errorf("invalid limit %d, should be non-negative", a.Limit)
	}
	vals, err := a.engine.Iter(args[0], a.Limit)
	if err != nil {
		return err
	}
	return a.printer(cmd).Values(vals)
}

func (a *App) Count(cmd *cobra.Command, args []string) error {
	n, ok, err := a.engine.Count(args[0])
	if err != nil {
		return err
	}
	return a.printer(cmd).Count(n, ok, a.Human)
}

func (a *App) CPUs(cmd *cobra.Command, _ []string) error {
	vals, err := a.Sources.CPUIndices(cmd.Context())
	if err != nil {
		return err
	}
	a.log.WithField("cpus", len(vals)).Debug("counted logical cpus")
	s, err := a.engine.Collect(vals, a.Mask)
	return a.setResult(cmd, s, err)
}

func (a *App) PIDs(cmd *cobra.Command, _ []string) error {
	vals, err := a.Sources.ProcessIDs(cmd.Context())
	if err != nil {
		return err
	}
	a.log.WithField("pids", len(vals)).Debug("listed processes")
	s, err := a.engine.Collect(vals, a.Mask)
	return a.setResult(cmd, s, err)
}
