package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" //  browser/web
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconTrash    = "" // trash
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconDesktop  = "" // desktop
	IconImage    = "" // image file

	// UI
	IconCursor = "" // chevron-right
	IconSearch = "" // search
	IconTheme  = "" // adjust
)

const (
	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸ Black right-pointing small triangle
)
