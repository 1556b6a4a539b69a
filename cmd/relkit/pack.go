package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlerow/relkit/internal/config"
	"github.com/castlerow/relkit/internal/messages"
	"github.com/castlerow/relkit/internal/pack"
)

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.PackUse,
		Short: messages.PackShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			// Progress goes to stderr so stdout carries only the archive path.
			archive, err := pack.Pack(pack.Options{
				Root:    root,
				Manager: cfg.Manager(),
				Runner:  pack.ExecRunner{Stderr: cmd.ErrOrStderr()},
				System:  pack.RealSystem{},
				Out:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PackArchiveFmt, archive)
			return nil
		},
	}
}
