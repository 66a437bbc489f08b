package main

import (
	"github.com/spf13/cobra"

	"github.com/luhtfiimanal/go-ringbuffer/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ringctl config files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write a default config file unless one exists, then print it",
		Long: `Write the default configuration to path when the file does not exist yet.
An existing file is loaded and validated instead. Either way the effective
configuration is printed as YAML.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrCreate(args[0])
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return cmd
}
