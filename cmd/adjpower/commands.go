// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/builder"
	"github.com/katalvlaran/adjpower/core"
	"github.com/katalvlaran/adjpower/exercise"
	"github.com/katalvlaran/adjpower/matrix"
)

// cli holds the flag targets shared by every subcommand.
type cli struct {
	flags      Config
	configPath string
	stderr     io.Writer
}

// newRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{flags: defaultConfig(), stderr: stderr}

	root := &cobra.Command{
		Use:          "adjpower",
		Short:        "Random connected graphs and semiring powers of their adjacency matrices",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "yaml file with default parameters")
	pf.IntVar(&c.flags.Size, "size", c.flags.Size, "number of vertices")
	pf.IntVar(&c.flags.Edges, "edges", c.flags.Edges, "number of edges")
	pf.StringVar(&c.flags.Mode, "mode", c.flags.Mode, "generation mode: DEFAULT, SYMM, ANTISYMM or ASYMM")
	pf.Int64Var(&c.flags.Seed, "seed", c.flags.Seed, "random seed (0 seeds from the clock)")
	pf.StringVar(&c.flags.Strategy, "strategy", c.flags.Strategy, "connectivity strategy: rejection or spanning")
	pf.StringVar(&c.flags.Connectivity, "connectivity", c.flags.Connectivity, "component counting: weak or forward")
	pf.IntVar(&c.flags.MaxAttempts, "max-attempts", c.flags.MaxAttempts, "bound on rejection attempts")
	pf.StringVar(&c.flags.Matrix, "matrix", c.flags.Matrix, `explicit matrix instead of generation, e.g. "0,1;1,0"`)
	pf.StringVar(&c.flags.Format, "format", c.flags.Format, "output format: table or yaml")
	pf.BoolVarP(&c.flags.Verbose, "verbose", "v", c.flags.Verbose, "debug logging on stderr")

	root.AddCommand(c.generateCmd(), c.powerCmd(), c.classifyCmd(), c.demoCmd())

	return root
}

// flagNames maps flag names onto the Config field they set.
var flagNames = map[string]func(dst, src *Config){
	"size":         func(d, s *Config) { d.Size = s.Size },
	"edges":        func(d, s *Config) { d.Edges = s.Edges },
	"mode":         func(d, s *Config) { d.Mode = s.Mode },
	"seed":         func(d, s *Config) { d.Seed = s.Seed },
	"strategy":     func(d, s *Config) { d.Strategy = s.Strategy },
	"connectivity": func(d, s *Config) { d.Connectivity = s.Connectivity },
	"max-attempts": func(d, s *Config) { d.MaxAttempts = s.MaxAttempts },
	"matrix":       func(d, s *Config) { d.Matrix = s.Matrix },
	"format":       func(d, s *Config) { d.Format = s.Format },
	"verbose":      func(d, s *Config) { d.Verbose = s.Verbose },
	"op":           func(d, s *Config) { d.Op = s.Op },
	"power":        func(d, s *Config) { d.Power = s.Power },
	"levels":       func(d, s *Config) { d.Levels = s.Levels },
}

// resolve merges defaults, the config file and explicitly set flags, then
// validates the result.
func (c *cli) resolve(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()
	if c.configPath != "" {
		if err := loadConfigFile(c.configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	for name, apply := range flagNames {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply(&cfg, &c.flags)
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// logger builds the stderr text logger; --verbose lowers the level to Debug.
func (c *cli) logger(cfg Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
}

// graph returns the explicit --matrix graph or generates one.
func (c *cli) graph(cfg Config, log *slog.Logger) (*core.Graph, error) {
	conn := bfs.Weak
	if cfg.Connectivity == "forward" {
		conn = bfs.Forward
	}

	if cfg.Matrix != "" {
		rows, err := parseMatrix(cfg.Matrix)
		if err != nil {
			return nil, err
		}
		return core.FromRows(rows, core.WithConnectivity(conn))
	}

	mode, err := core.ParseGenType(cfg.Mode)
	if err != nil {
		return nil, err
	}
	strategy, err := builder.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("generating graph",
		"size", cfg.Size, "edges", cfg.Edges, "mode", mode.String(),
		"strategy", strategy.String(), "seed", seed)

	return core.New(cfg.Size, cfg.Edges, mode,
		core.WithConnectivity(conn),
		core.WithBuilder(
			builder.WithSeed(seed),
			builder.WithStrategy(strategy),
			builder.WithMaxAttempts(cfg.MaxAttempts),
			builder.WithLogger(log),
		))
}

func (c *cli) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a random connected graph and print its adjacency matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := c.graph(cfg, c.logger(cfg))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg.Format, "generated", g)
		},
	}
}

func (c *cli) powerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Raise a graph's adjacency matrix to a power under a semiring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			log := c.logger(cfg)
			g, err := c.graph(cfg, log)
			if err != nil {
				return err
			}
			s, err := matrix.ParseSemiring(cfg.Op)
			if err != nil {
				return err
			}
			p, err := g.Powered(s, cfg.Power)
			if err != nil {
				return err
			}
			log.Debug("power computed", "op", s.String(), "power", cfg.Power, "type", p.GenType().String())

			out := cmd.OutOrStdout()
			if cfg.Format == formatYAML {
				return renderYAML(out, powerReport{
					Op:     s.String(),
					Power:  cfg.Power,
					Base:   g.Snapshot(),
					Result: p.Snapshot(),
				})
			}
			if err = renderTable(out, "base", g); err != nil {
				return err
			}

			return renderTable(out, fmt.Sprintf("%s power %d", s, cfg.Power), p)
		},
	}
	cmd.Flags().StringVar(&c.flags.Op, "op", c.flags.Op, "semiring: classic, logical or tropical")
	cmd.Flags().IntVar(&c.flags.Power, "power", c.flags.Power, "exponent (>= 1)")

	return cmd
}

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Classify an explicit matrix and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.Matrix == "" {
				return fmt.Errorf("classify requires --matrix")
			}
			g, err := c.graph(cfg, c.logger(cfg))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg.Format, "classified", g)
		},
	}
}

func (c *cli) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play a demonstration session: every power up to --levels, revealed cell by cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			log := c.logger(cfg)
			g, err := c.graph(cfg, log)
			if err != nil {
				return err
			}
			s, err := matrix.ParseSemiring(cfg.Op)
			if err != nil {
				return err
			}
			session, err := exercise.New(g, s,
				exercise.WithMaxLevel(cfg.Levels),
				exercise.WithLogger(log))
			if err != nil {
				return err
			}

			report := demoReport{ID: session.ID().String(), Op: s.String(), Base: g.Snapshot()}
			for {
				for {
					if _, _, ok := session.RevealNext(); !ok {
						break
					}
				}
				report.Levels = append(report.Levels, demoLevel{
					Power:  session.Level(),
					Answer: session.Answer().Snapshot(),
				})
				if session.Level() == session.MaxLevel() {
					break
				}
				if err = session.Advance(); err != nil {
					return err
				}
			}

			return renderDemo(cmd.OutOrStdout(), cfg.Format, report)
		},
	}
	cmd.Flags().StringVar(&c.flags.Op, "op", c.flags.Op, "semiring: classic, logical or tropical")
	cmd.Flags().IntVar(&c.flags.Levels, "levels", c.flags.Levels, "last power shown")

	return cmd
}
