package messages

// Update messages for the release check.
const (
	UpdateFetchLatestFmt      = "fetch latest release: %w"
	UpdateUnexpectedStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeResponseFmt   = "decode latest release: %w"
	UpdateEmptyTag            = "latest release has no tag name"
	UpdateInvalidVersionFmt   = "invalid version %q"
)
