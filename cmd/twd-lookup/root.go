package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"twd-lookup/internal/query"
)

type options struct {
	character string
	season    int
	episode   string
	json      bool
	html      bool
	dbPath    string
}

// request converts the parsed flags into a query request. Only flags given on the
// command line are set.
func (o *options) request(flags *pflag.FlagSet) query.Request {
	var req query.Request

	if flags.Changed("character") {
		req.Character = &o.character
	}
	if flags.Changed("season") {
		req.Season = &o.season
	}
	if flags.Changed("episode") {
		req.Episode = &o.episode
	}

	switch {
	case o.json:
		req.Mode = query.ModeJSON
	case o.html:
		req.Mode = query.ModeHTML
	default:
		req.Mode = query.ModeText
	}

	return req
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "twd-lookup",
		Short:         "Returns information about The Walking Dead characters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := opts.request(cmd.Flags())
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), req, opts.dbPath)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.character, "character", "", "Returns the character's first appearance and death")
	flags.IntVar(&opts.season, "season", 0, "Returns all the new characters and all the deaths of the season")
	flags.StringVar(&opts.episode, "episode", "", "Returns all new characters and all the deaths in the episode (S3x12 or a title)")
	flags.BoolVar(&opts.json, "json", false, "Print the result as JSON")
	flags.BoolVar(&opts.html, "html", false, "Print the result as an HTML fragment (useful for chat bots)")
	flags.StringVar(&opts.dbPath, "db", "", "Database file path (overrides DATABASE_PATH)")

	rootCmd.MarkFlagsMutuallyExclusive("json", "html")

	return rootCmd
}
