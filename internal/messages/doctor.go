package messages

// Doctor messages for environment checks.
const (
	DoctorUse   = "doctor"
	DoctorShort = "Check the project and environment for release readiness"

	DoctorHealthCheckFmt = "Checking project at %s...\n\n"

	DoctorCheckNameStructure = "Structure"
	DoctorCheckNameManager   = "Manager"
	DoctorCheckNameArtifacts = "Artifacts"
	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameUpdate    = "Update"

	DoctorManifestExistsFmt     = "%s present"
	DoctorManifestMissingFmt    = "missing %s at project root"
	DoctorManifestMissingRecomm = "Run relkit from a package project, or add a package.json."
	DoctorManifestNotFileFmt    = "%s exists but is not a regular file"

	DoctorManagerFoundFmt     = "%s found at %s"
	DoctorManagerMissingFmt   = "%s not found on PATH"
	DoctorManagerMissingRecom = "Install the package manager or set package.manager in relkit.toml."

	DoctorArtifactOKFmt          = "%s is executable"
	DoctorArtifactNotExecFmt     = "%s is missing execute bits (%04o)"
	DoctorArtifactNotExecRecomm  = "Run 'relkit perms' to mark build artifacts executable."
	DoctorArtifactMissingFmt     = "%s does not exist"
	DoctorArtifactMissingRecomm  = "Build the project first, or fix artifacts.executables in relkit.toml."
	DoctorArtifactStatFailedFmt  = "stat %s: %v"
	DoctorArtifactNotRegularFmt  = "%s is not a regular file"
	DoctorArtifactNoneConfigured = "no artifacts configured"

	DoctorConfigOK            = "relkit.toml valid"
	DoctorConfigDefaults      = "no relkit.toml; using defaults"
	DoctorConfigLoadFailedFmt = "failed to load config: %v"
	DoctorConfigRecommend     = "Fix relkit.toml so all commands see the same settings."

	DoctorUpdateSkippedFmt   = "update check skipped (%s set)"
	DoctorUpdateRateLimited  = "update check rate limited by GitHub; try again later"
	DoctorUpdateFailedFmt    = "update check failed: %v"
	DoctorUpdateDevBuildFmt  = "running dev build; latest release is %s"
	DoctorUpdateAvailableFmt = "relkit update available: %s (current %s)"
	DoctorUpdateAvailableRec = "Upgrade: go install github.com/castlerow/relkit/cmd/relkit@latest"
	DoctorUpToDateFmt        = "relkit is up to date (%s)"

	DoctorFailureSummary = "Some checks failed. Address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed. Ready to release."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       -> "
)
