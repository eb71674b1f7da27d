package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/jer-go/internal/app"
	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/infrastructure/cli/commands"
	"github.com/doeshing/jer-go/internal/version"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned session must be
// closed once the command has run.
func NewRootCmd(_ context.Context, opts Options) (*cobra.Command, *commands.Session) {
	session := commands.NewSession(app.Options{Verbose: opts.Verbose})
	return newRootCmd(session), session
}

func newRootCmd(session *commands.Session) *cobra.Command {
	var (
		flags    commands.ExtractionFlags
		resource string
		debug    bool
	)

	root := &cobra.Command{
		Use:   "jer [archive] [-- program args...]",
		Short: "jer - Java extract runner",
		Long: "jer extracts an archive into a timestamped directory and launches a resource from it\n" +
			"with the command line of the current process.",
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				session.Options.Verbose = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, programArgs, err := commands.SplitArgs(cmd, args)
			if err != nil {
				return err
			}
			archive, err = commands.ResolveArchive(archive)
			if err != nil {
				return err
			}
			container, err := session.Container(cmd.Context())
			if err != nil {
				return err
			}
			svc, err := container.LaunchService(archive, programArgs)
			if err != nil {
				return err
			}
			resp, err := svc.Run(cmd.Context(), domain.LaunchRequest{
				Extraction: flags.Request(archive, container.Config.Extraction),
				Resource:   resource,
				Render:     container.Config.RenderOptions(),
			})
			RenderResponse(cmd.OutOrStdout(), resp)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("jer version {{.Version}}\n")

	flags.Bind(root.Flags())
	root.Flags().StringVarP(&resource, "jarResource", "r", "", "Resource inside the extraction directory to launch")
	root.PersistentFlags().StringVar(&session.Options.ConfigPath, "config", session.Options.ConfigPath, "Configuration file (default: $JER_CONFIG or ~/.jer/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging")

	root.AddCommand(
		commands.NewExtractCommand(session),
		commands.NewCmdlineCommand(session),
		commands.NewHistoryCommand(session),
		commands.NewConfigCommand(session),
		commands.NewDoctorCommand(session),
		commands.NewVersionCommand(),
	)
	return root
}
