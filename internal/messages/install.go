package messages

// Install and pack messages for the packaging protocol.
const (
	PackUse   = "pack"
	PackShort = "Package the project and print the archive path"

	InstallUse   = "install"
	InstallShort = "Package the project and install the result globally"

	InstallFlagYes = "Install without prompting for confirmation"

	PackStepName    = "pack"
	VerifyStepName  = "verify"
	InstallStepName = "install"
	CleanupStepName = "cleanup"

	PackRunFailedFmt       = "run %s pack: %w"
	PackEmptyOutputFmt     = "%s pack produced no archive name"
	PackArchiveMissingFmt  = "archive %s not found after packing: %w"
	PackArchiveNotFileFmt  = "archive path %s is not a regular file"
	PackResolvePathFmt     = "resolve archive path %s: %w"
	InstallRunFailedFmt    = "run %s install: %w"
	InstallRemoveFmt       = "remove archive %s: %w"
	InstallPromptDecline   = "install cancelled"
	InstallPromptFmt       = "Install %s globally with %s?"
	InstallNonInteractive  = "install confirmation requires an interactive terminal; re-run with --yes"
	InstallRunnerRequired  = "command runner is required"
	InstallSystemRequired  = "install system is required"
	InstallManagerRequired = "package manager is required"
	InstallRootRequired    = "project root is required"

	PackPackingFmt    = "Packing with %s...\n"
	PackArchiveFmt    = "%s\n"
	InstallingFmt     = "Installing %s globally with %s...\n"
	InstallCleanedFmt = "Removed %s\n"
	InstallKeptFmt    = "Kept %s (install.keep_archive)\n"
	InstallDoneFmt    = "Installed %s\n"
)
