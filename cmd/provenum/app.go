package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ml4j/enums/internal/activation"
	"github.com/ml4j/enums/internal/catalog"
	"github.com/ml4j/enums/internal/config"
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/providers/ml4j"
	"github.com/ml4j/enums/internal/semantic"
	"github.com/ml4j/enums/internal/typeregistry"
)

type options struct {
	configPath  string
	catalogPath string
	logLevel    string
}

// app is the state shared by all subcommands.
type app struct {
	logger  *slog.Logger
	catalog *semantic.Catalog
	types   *typeregistry.Types
}

func newApp(opts *options, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(&config.Config{Catalog: opts.catalogPath, LogLevel: opts.logLevel})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	c := activation.Catalog
	if cfg.Catalog != "" {
		if c, err = catalog.NewLoader(logger).Load(cfg.Catalog); err != nil {
			return nil, err
		}
	}

	types := typeregistry.NewTypes(typeregistry.WithLogger(logger))
	for _, p := range cfg.LinkedProviders() {
		if err := link(types, p); err != nil {
			return nil, err
		}
		logger.Debug("Linked provider", slog.String("provider", string(p)))
	}

	return &app{logger: logger, catalog: c, types: types}, nil
}

func link(types *typeregistry.Types, p provider.Provider) error {
	switch p {
	case provider.ML4J:
		return ml4j.Register(types)
	default:
		return fmt.Errorf("provider %s cannot be linked", p)
	}
}

func runWithApp(opts *options, run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(opts, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return run(cmd, a, args)
	}
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every group and its provider references",
		Args:  cobra.NoArgs,
		RunE: runWithApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range a.catalog.Groups() {
				fmt.Fprintf(w, "%s\t%s\n", g.Key(), g.Label())
				for _, ref := range g.All() {
					state := "visible"
					if !ref.Visible() {
						state = "hidden"
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n", ref.Provider(), ref.QualifiedName(), state)
				}
			}
			return w.Flush()
		}),
	}
}

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve GROUP PROVIDER",
		Short: "Resolve the reference a provider supplies for a group",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(opts, func(cmd *cobra.Command, a *app, args []string) error {
			typ, ok := a.catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown group: %s", args[0])
			}
			ref, err := typ.ProvidedBy(provider.Provider(args[1]))
			if err != nil {
				return err
			}
			value, err := ref.Resolve(a.types)
			if err != nil {
				return err
			}
			a.logger.Debug("Resolved reference", slog.String("reference", ref.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", ref.DisplayName(), value)
			return nil
		}),
	}
}

func findCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find QUALIFIED_NAME",
		Short: "Find the group containing a qualified constant name",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(opts, func(cmd *cobra.Command, a *app, args []string) error {
			typ, ok := a.catalog.FindByQualifiedName(args[0])
			if !ok {
				return fmt.Errorf("no group contains %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", typ.String(), typ.Group().Label())
			return nil
		}),
	}
}

func exportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: runWithApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			data, err := catalog.Marshal(a.catalog)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
}
