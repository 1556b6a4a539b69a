package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "relkit"
	// RootShort is the short description for the root command.
	RootShort             = "Release helper for package projects"
	RootVersionFlag       = "Print version and exit"
	RootMissingProjectFmt = "no package project found from %s (looked for package.json or relkit.toml in this directory and its parents)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "
	PromptInvalidResponseFmt = "unrecognized response %q"
	PromptRetryYesNo         = "Please answer 'y' or 'n'."
)
