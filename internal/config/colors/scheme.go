package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add item line
	Edit   string `yaml:"edit"`   // Blue - edit dialog
	Delete string `yaml:"delete"` // Red - errors and destructive hints

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	ItemBorder     string `yaml:"item_border"`
	ItemBackground string `yaml:"item_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DropTarget     string `yaml:"drop_target"` // Placeholder while dragging

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.ItemBorder, preset.ItemBorder)
	fill(&c.ItemBackground, preset.ItemBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides c with every non-empty value in other.
// A preset in other replaces c entirely before the overrides apply.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	override(&c.Accent, other.Accent)
	override(&c.Create, other.Create)
	override(&c.Edit, other.Edit)
	override(&c.Delete, other.Delete)
	override(&c.ColumnBorder, other.ColumnBorder)
	override(&c.ItemBorder, other.ItemBorder)
	override(&c.ItemBackground, other.ItemBackground)
	override(&c.SelectedBorder, other.SelectedBorder)
	override(&c.SelectedBg, other.SelectedBg)
	override(&c.DropTarget, other.DropTarget)
	override(&c.Title, other.Title)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
	override(&c.InfoFg, other.InfoFg)
	override(&c.InfoBg, other.InfoBg)
	override(&c.ErrorFg, other.ErrorFg)
	override(&c.ErrorBg, other.ErrorBg)
}

func fill(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
