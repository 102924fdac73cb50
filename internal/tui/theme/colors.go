package theme

import "github.com/thenoetrevino/lanes/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	SelectedBorder string
	SelectedBg     string
	ItemBg         string
	DropTarget     string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	ItemBg = colors.ItemBackground
	DropTarget = colors.DropTarget
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
