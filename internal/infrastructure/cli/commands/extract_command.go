package commands

import (
	"github.com/spf13/cobra"
)

// NewExtractCommand creates the extract command, which unpacks an archive
// without launching anything.
func NewExtractCommand(session *Session) *cobra.Command {
	var flags ExtractionFlags

	cmd := &cobra.Command{
		Use:   "extract [archive]",
		Short: "Extract an archive into its timestamped destination",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var archive string
			if len(args) == 1 {
				archive = args[0]
			}
			archive, err := ResolveArchive(archive)
			if err != nil {
				return err
			}
			container, err := session.Container(cmd.Context())
			if err != nil {
				return err
			}
			result, err := container.ExtractService().Extract(flags.Request(archive, container.Config.Extraction))
			if err != nil {
				return err
			}
			RenderExtraction(cmd.OutOrStdout(), result)
			return nil
		},
	}

	flags.Bind(cmd.Flags())
	return cmd
}
