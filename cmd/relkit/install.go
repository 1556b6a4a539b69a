package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/castlerow/relkit/internal/config"
	"github.com/castlerow/relkit/internal/messages"
	"github.com/castlerow/relkit/internal/pack"
	"github.com/castlerow/relkit/internal/terminal"
)

var isTerminal = terminal.IsInteractive

func newInstallCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			opts := pack.Options{
				Root:        root,
				Manager:     cfg.Manager(),
				Runner:      pack.ExecRunner{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				System:      pack.RealSystem{},
				KeepArchive: cfg.KeepArchive(),
				Out:         cmd.OutOrStdout(),
			}

			archive, err := pack.Pack(opts)
			if err != nil {
				return err
			}

			if !yes && !cfg.AssumeYes() {
				if !isTerminal() {
					return errors.New(messages.InstallNonInteractive)
				}
				prompt := fmt.Sprintf(messages.InstallPromptFmt, filepath.Base(archive), cfg.Manager())
				ok, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, true)
				if err != nil {
					return err
				}
				if !ok {
					// The freshly packed archive stays on disk for inspection.
					return errors.New(messages.InstallPromptDecline)
				}
			}

			return pack.Install(opts, archive)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.InstallFlagYes)

	return cmd
}
