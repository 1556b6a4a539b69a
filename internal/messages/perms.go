package messages

// Perms messages for the perms command and permset package.
const (
	PermsUse   = "perms"
	PermsShort = "Mark configured build artifacts executable"

	PermsFlagQuiet = "Suppress per-file OK output"

	PermsStatFailedFmt  = "stat %s: %w"
	PermsChmodFailedFmt = "chmod %s: %w"

	PermsMarkedFmt  = "Marked %s executable (%04o)\n"
	PermsAlreadyFmt = "%s already executable (%04o)\n"
	PermsFailedFmt  = "Warning: %s: %v\n"
	PermsSummaryFmt = "%d artifact(s) updated, %d already executable, %d failed\n"
)
