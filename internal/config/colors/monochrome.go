package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#808080",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#FFFFFF",
		DropTarget:     "#BCBCBC",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",
	}
}
