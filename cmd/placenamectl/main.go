package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/placename-desk/placename-desk/client"
	"github.com/placename-desk/placename-desk/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debugFlag bool
		rawFlag   bool
		gazetteer *client.Client
	)
	rootCmd := &cobra.Command{
		Use:           "placenamectl",
		Short:         "Query the historical placename gazetteer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if debugFlag {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			var err error
			gazetteer, err = client.New(
				client.WithLogger(logger.NewWithWriter(cmd.ErrOrStderr(), "placenamectl")),
				client.WithDebugLogging(debugFlag),
			)
			return err
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Dump HTTP traffic to stderr")
	rootCmd.PersistentFlags().BoolVar(&rawFlag, "raw", false, "Print the gazetteer JSON instead of a summary")

	// search subcommand
	var (
		name, kind        string
		year, limit, page uint32
	)
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search placenames by name, type and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q client.SearchQuery
			flags := cmd.Flags()
			if flags.Changed("name") {
				q.Name = client.String(name)
			}
			if flags.Changed("type") {
				q.Kind = client.String(kind)
			}
			if flags.Changed("year") {
				q.Year = client.Uint32(year)
			}
			if flags.Changed("limit") {
				q.Limit = client.Uint32(limit)
			}
			if flags.Changed("page") {
				q.Page = client.Uint32(page)
			}
			return runSearch(cmd.Context(), gazetteer, q, rawFlag, cmd.OutOrStdout())
		},
	}
	searchCmd.Flags().StringVarP(&name, "name", "n", "", "Placename filter")
	searchCmd.Flags().StringVarP(&kind, "type", "t", "", "Feature type filter")
	searchCmd.Flags().Uint32VarP(&year, "year", "y", 0, "Year the name must be attested in")
	searchCmd.Flags().Uint32VarP(&limit, "limit", "l", 0, "Records per page")
	searchCmd.Flags().Uint32VarP(&page, "page", "p", 0, "1-based page number")
	rootCmd.AddCommand(searchCmd)

	// get subcommand
	getCmd := &cobra.Command{
		Use:   "get <sysId>",
		Short: "Show one placename record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), gazetteer, args[0], rawFlag, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(getCmd)

	return rootCmd
}
