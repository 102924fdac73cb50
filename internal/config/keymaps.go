package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	EditItem   string `yaml:"edit_item"`
	DeleteItem string `yaml:"delete_item"`
	PickUpItem string `yaml:"pick_up_item"` // starts a drag; the same key drops
	CancelDrag string `yaml:"cancel_drag"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:    "a",
		EditItem:   "e",
		DeleteItem: "d",
		PickUpItem: " ",
		CancelDrag: "esc",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		// Other
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.EditItem == "" {
		k.EditItem = defaults.EditItem
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.PickUpItem == "" {
		k.PickUpItem = defaults.PickUpItem
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
