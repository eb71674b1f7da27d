package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCmdlineCommand creates the cmdline command, which prints the command
// line a launch would run without extracting or starting anything.
func NewCmdlineCommand(session *Session) *cobra.Command {
	var (
		resource string
		flags    RenderFlags
	)

	cmd := &cobra.Command{
		Use:   "cmdline [archive] [-- program args...]",
		Short: "Print the command line used to launch a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, programArgs, err := SplitArgs(cmd, args)
			if err != nil {
				return err
			}
			archive, err = ResolveArchive(archive)
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
			line, err := svc.CommandLine(resource, flags.Options(container.Config.RenderOptions()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&resource, "resource", "r", "", "Resource to launch (default: the archive classpath only)")
	flags.Bind(cmd.Flags())
	return cmd
}
