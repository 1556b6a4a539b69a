package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlerow/relkit/internal/config"
	"github.com/castlerow/relkit/internal/messages"
	"github.com/castlerow/relkit/internal/permset"
)

func newPermsCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   messages.PermsUse,
		Short: messages.PermsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			var updated, already, failed int
			for _, r := range permset.Apply(permset.RealSystem{}, root, cfg.Executables()) {
				switch {
				case r.Err != nil:
					failed++
					_, _ = fmt.Fprintf(errOut, messages.PermsFailedFmt, r.Path, r.Err)
				case r.Changed:
					updated++
					if !quiet {
						_, _ = fmt.Fprintf(out, messages.PermsMarkedFmt, r.Path, r.Mode)
					}
				default:
					already++
					if !quiet {
						_, _ = fmt.Fprintf(out, messages.PermsAlreadyFmt, r.Path, r.Mode)
					}
				}
			}

			// Per-path failures are isolated and never fail the run.
			_, _ = fmt.Fprintf(out, messages.PermsSummaryFmt, updated, already, failed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, messages.PermsFlagQuiet)

	return cmd
}
