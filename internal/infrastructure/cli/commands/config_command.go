package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configapp "github.com/doeshing/jer-go/internal/application/config"
	"github.com/doeshing/jer-go/internal/domain"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(session *Session) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect jer configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, session)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(cmd, session)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := session.Container(cmd.Context())
				if err != nil {
					return err
				}
				if container.ConfigLoader == nil {
					return errors.New(ErrConfigLoaderUnavailable)
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := session.Container(cmd.Context())
				if err != nil {
					return err
				}
				if err := configapp.Validate(container.Config); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
				return nil
			},
		},
	)

	return configCmd
}

func showConfig(cmd *cobra.Command, session *Session) error {
	container, err := session.Container(cmd.Context())
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), container.Config)
}

func writeConfig(out io.Writer, cfg domain.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
