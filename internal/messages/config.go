package messages

// Config messages for loading and validating relkit.toml.
const (
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "unrecognized keys in %s: %v."
	ConfigValidationGuidance  = "See relkit.toml in the project root; remove or fix the offending keys."
	ConfigReadFileFmt         = "read config %s: %w"
	ConfigResolveHomeFmt      = "resolve home dir: %w"

	ConfigManagerEmptyFmt        = "%s: package.manager must not be empty when set"
	ConfigManagerPathFmt         = "%s: package.manager %q must be a bare command name, not a path"
	ConfigExecutableEmptyFmt     = "%s: artifacts.executables[%d] must not be empty"
	ConfigExecutableAbsoluteFmt  = "%s: artifacts.executables[%d] %q must be relative to the project root"
	ConfigExecutableEscapesFmt   = "%s: artifacts.executables[%d] %q escapes the project root"
	ConfigExecutableDuplicateFmt = "%s: artifacts.executables contains %q more than once"
)
