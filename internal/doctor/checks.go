package doctor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/castlerow/relkit/internal/config"
	"github.com/castlerow/relkit/internal/messages"
	"github.com/castlerow/relkit/internal/permset"
)

var (
	loadConfigFunc        = config.Load
	loadConfigLenientFunc = config.LoadLenient
	lookPathFunc          = exec.LookPath
)

// CheckStructure verifies the package manifest exists at the project root.
func CheckStructure(root string) []Result {
	path := filepath.Join(root, config.ManifestName)
	info, err := os.Stat(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStructure,
			Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, config.ManifestName),
			Recommendation: messages.DoctorManifestMissingRecomm,
		}}
	}
	if !info.Mode().IsRegular() {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameStructure,
			Message:   fmt.Sprintf(messages.DoctorManifestNotFileFmt, config.ManifestName),
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStructure,
		Message:   fmt.Sprintf(messages.DoctorManifestExistsFmt, config.ManifestName),
	}}
}

// CheckConfig validates that the configuration loads. When strict loading
// fails, CheckConfig returns a FAIL result AND a leniently-loaded config so
// downstream checks still run against the user's intent.
func CheckConfig(root string) ([]Result, *config.Config) {
	cfg, err := loadConfigFunc(root)
	if err == nil {
		message := messages.DoctorConfigOK
		if _, statErr := os.Stat(filepath.Join(root, config.FileName)); statErr != nil {
			message = messages.DoctorConfigDefaults
		}
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   message,
		}}, cfg
	}

	result := Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
		Recommendation: messages.DoctorConfigRecommend,
	}
	if errors.Is(err, config.ErrConfigValidation) {
		if lenient, lenientErr := loadConfigLenientFunc(root); lenientErr == nil {
			return []Result{result}, lenient
		}
	}
	return []Result{result}, nil
}

// CheckManager verifies the configured package manager is on PATH.
func CheckManager(cfg *config.Config) []Result {
	manager := cfg.Manager()
	path, err := lookPathFunc(manager)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManager,
			Message:        fmt.Sprintf(messages.DoctorManagerMissingFmt, manager),
			Recommendation: messages.DoctorManagerMissingRecom,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManager,
		Message:   fmt.Sprintf(messages.DoctorManagerFoundFmt, manager, path),
	}}
}

// CheckArtifacts verifies each configured executable exists and carries
// execute bits. Missing execute bits are a warning, not a failure, since
// 'relkit perms' repairs them.
func CheckArtifacts(root string, cfg *config.Config) []Result {
	executables := cfg.Executables()
	if len(executables) == 0 {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameArtifacts,
			Message:   messages.DoctorArtifactNoneConfigured,
		}}
	}

	var results []Result
	for _, rel := range executables {
		results = append(results, checkArtifact(root, rel))
	}
	return results
}

func checkArtifact(root string, rel string) Result {
	info, err := os.Stat(filepath.Join(root, rel))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameArtifacts,
				Message:        fmt.Sprintf(messages.DoctorArtifactMissingFmt, rel),
				Recommendation: messages.DoctorArtifactMissingRecomm,
			}
		}
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameArtifacts,
			Message:   fmt.Sprintf(messages.DoctorArtifactStatFailedFmt, rel, err),
		}
	}
	if !info.Mode().IsRegular() {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameArtifacts,
			Message:   fmt.Sprintf(messages.DoctorArtifactNotRegularFmt, rel),
		}
	}
	if info.Mode().Perm()&permset.ExecBits != permset.ExecBits {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameArtifacts,
			Message:        fmt.Sprintf(messages.DoctorArtifactNotExecFmt, rel, info.Mode().Perm()),
			Recommendation: messages.DoctorArtifactNotExecRecomm,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameArtifacts,
		Message:   fmt.Sprintf(messages.DoctorArtifactOKFmt, rel),
	}
}
