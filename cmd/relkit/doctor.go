package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/castlerow/relkit/internal/config"
	"github.com/castlerow/relkit/internal/doctor"
	"github.com/castlerow/relkit/internal/messages"
	"github.com/castlerow/relkit/internal/update"
)

var checkForUpdate = update.Check

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			var allResults []doctor.Result
			allResults = append(allResults, doctor.CheckStructure(root)...)

			configResults, cfg := doctor.CheckConfig(root)
			allResults = append(allResults, configResults...)

			if cfg == nil {
				cfg = &config.Config{}
			}
			allResults = append(allResults, doctor.CheckManager(cfg)...)
			allResults = append(allResults, doctor.CheckArtifacts(root, cfg)...)
			allResults = append(allResults, updateResult(cmd))

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			_, _ = fmt.Fprintln(out)
			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// updateResult runs the best-effort release check. Network problems degrade
// to warnings so doctor stays usable offline.
func updateResult(cmd *cobra.Command) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, update.EnvNoNetwork)
		return result
	}

	check, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
	case check.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, check.Latest)
	case check.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, check.Latest, check.Current)
		result.Recommendation = messages.DoctorUpdateAvailableRec
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, check.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintln(out, messages.DoctorRecommendationPrefix+r.Recommendation)
	}
}
