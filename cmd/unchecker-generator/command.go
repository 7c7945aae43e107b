package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/config"
	"unchecker-generator/internal/gen"
	"unchecker-generator/internal/registry"
)

var log = commonlog.GetLogger("unchecker")

// Command returns the root command.
func Command() *cobra.Command {
	var (
		preset, configFile, logFile string
		typeFiles                   []string
		dump                        bool
		verbose                     int
	)

	ret := &cobra.Command{
		Use:   "unchecker-generator <output file>",
		Short: "Generate a Java class of unchecker helpers for SAM types",
		Args:  cobra.ExactArgs(1),
		PersistentPreRun: func(*cobra.Command, []string) {
			if logFile != "" {
				commonlog.Configure(verbose, &logFile)
			} else {
				commonlog.Configure(verbose, nil)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			target, err := loadTarget(preset, configFile, typeFiles)
			if err != nil {
				return err
			}

			job, err := target.Job(args[0])
			if err != nil {
				return err
			}

			g := gen.NewGenerator(job.Graph, job.Config)

			if dump {
				p, err := g.Plan(job.SamTypes)
				if err != nil {
					return err
				}

				dumpPlan(cmd.OutOrStdout(), p)
			}

			file, err := g.Generate(job.SamTypes)
			if err != nil {
				return err
			}

			if err := gen.WriteFile(job.Output, file.Content); err != nil {
				return err
			}

			log.Noticef("wrote %s: %d SAM types", job.Output, len(job.SamTypes))

			return nil
		},
	}

	ret.Flags().StringVarP(&preset, "preset", "p", config.PresetUncheckers,
		fmt.Sprintf("a built-in configuration %v", config.PresetNames()))
	ret.Flags().StringVarP(&configFile, "config", "c", "",
		"a YAML or TOML configuration file")
	ret.MarkFlagsMutuallyExclusive("preset", "config")
	ret.Flags().BoolVar(&dump, "dump", false, "print the resolved generation plan")
	ret.PersistentFlags().StringArrayVarP(&typeFiles, "types", "t", nil,
		"extra type descriptor files")
	ret.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	ret.PersistentFlags().StringVar(&logFile, "log", "", "log to a file instead of stderr")

	ret.AddCommand(batchCommand(), catalogCommand(&typeFiles))

	return ret
}

// loadTarget builds the target from a config file, or from a preset when
// no file is given. Extra type files are relative to the working directory.
func loadTarget(preset, configFile string, typeFiles []string) (*config.Target, error) {
	target := &config.Target{Preset: preset}

	if configFile != "" {
		t, err := config.LoadFile(configFile)
		if err != nil {
			return nil, err
		}

		target = t
	}

	for _, f := range typeFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}

		target.Types = append(target.Types, abs)
	}

	return target, nil
}

func dumpPlan(w io.Writer, p *gen.FilePlan) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(w, p)
}

func batchCommand() *cobra.Command {
	var workers int

	ret := &cobra.Command{
		Use:   "batch <batch file>",
		Short: "Generate every target of a batch file; nothing is written unless all succeed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			b, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}

			jobs, err := b.Jobs()
			if err != nil {
				return err
			}

			limit := b.Workers
			if cmd.Flags().Changed("workers") {
				limit = workers
			}

			if err := gen.GenerateAndWrite(cmd.Context(), jobs, limit); err != nil {
				return err
			}

			log.Noticef("wrote %d files", len(jobs))

			return nil
		},
	}

	ret.Flags().IntVarP(&workers, "workers", "w", 0,
		"maximum concurrent generators (0: one per target)")

	return ret
}

func catalogCommand(typeFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the known types and the single abstract method of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			paths := make([]string, len(*typeFiles))
			for i, f := range *typeFiles {
				abs, err := filepath.Abs(f)
				if err != nil {
					return err
				}

				paths[i] = abs
			}

			graph, err := registry.Load(paths...)
			if err != nil {
				return err
			}

			return printCatalog(cmd.OutOrStdout(), graph)
		},
	}
}

// printCatalog writes one line per type: the SAM signature of interfaces,
// the reason an interface is not a SAM type, or the class category.
func printCatalog(w io.Writer, graph *analyze.TypeGraph) error {
	g := gen.NewGenerator(graph, gen.DefaultConfig())

	for _, id := range graph.Order {
		info := graph.GetType(id)
		name := id.String() + analyze.DeclareTypeParams(info.TypeParams)

		var line string

		switch {
		case info.Kind == analyze.TypeKindClass && graph.IsSubtype(id, graph.Roots.Failure):
			if graph.IsChecked(id) {
				line = "checked exception"
			} else {
				line = "unchecked exception"
			}
		case info.Kind == analyze.TypeKindClass:
			line = "class"
		default:
			sp, err := g.ExtractSam(id)

			var merr *gen.MalformedSamTypeError

			switch {
			case err == nil:
				line = sp.Method.String()
			case errors.As(err, &merr):
				reason := merr.Message
				if reason == "" && merr.Cause != nil {
					reason = merr.Cause.Error()
				}

				line = "not a SAM type: " + reason
			default:
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", name, line); err != nil {
			return err
		}
	}

	return nil
}
