package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconCheck     = "" // check
	IconX         = "" // x
	IconInfo      = "" // info
	IconConfig    = "" // config
	IconLogs      = "" // file-text

	// Checkboxes
	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked
)
