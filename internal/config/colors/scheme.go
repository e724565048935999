package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Edit   string `yaml:"edit"`   // Blue - inline edit box
	Delete string `yaml:"delete"` // Red - delete confirmations

	// Board element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"`  // Floating duplicate of the held element
	DropTarget     string `yaml:"drop_target"` // Element currently under the cursor while dragging

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
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
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.DragBorder, preset.DragBorder)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides values with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	override(&c.Accent, other.Accent)
	override(&c.Edit, other.Edit)
	override(&c.Delete, other.Delete)
	override(&c.ColumnBorder, other.ColumnBorder)
	override(&c.TaskBorder, other.TaskBorder)
	override(&c.SelectedBorder, other.SelectedBorder)
	override(&c.DragBorder, other.DragBorder)
	override(&c.DropTarget, other.DropTarget)
	override(&c.Title, other.Title)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
