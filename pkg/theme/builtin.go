package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		nightTheme(),
		dayTheme(),
		gruvboxTheme(),
		nordTheme(),
	} {
		registry[t.Name] = t
	}
}

// nightTheme is the dark default with the collar's green chart line.
func nightTheme() Theme {
	return Theme{
		Name:       "night",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#A78BFA",

		CardSurface:  "#2a2a2a",
		CardExpanded: "#5b21b6",

		ChartLine: "#4CAF50",
		ChartAxis: "#6b6b6b",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// dayTheme is a light palette for bright rooms.
func dayTheme() Theme {
	return Theme{
		Name:       "day",
		Background: "#fafafa",
		Foreground: "#1f2937",
		Dim:        "#9ca3af",
		Accent:     "#6200EE",

		Border:      "#d1d5db",
		BorderFocus: "#6200EE",
		Title:       "#3700B3",

		CardSurface:  "#f3f4f6",
		CardExpanded: "#bb86fc",

		ChartLine: "#2e7d32",
		ChartAxis: "#9ca3af",

		StatusOK:    "#2e7d32",
		StatusWarn:  "#b45309",
		StatusError: "#b91c1c",

		HelpKey:  "#6200EE",
		HelpDesc: "#6b7280",
	}
}

// gruvboxTheme returns the warm retro Gruvbox palette.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#fabd2f",

		CardSurface:  "#3c3836",
		CardExpanded: "#d65d0e",

		ChartLine: "#b8bb26",
		ChartAxis: "#928374",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// nordTheme returns the arctic Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#8fbcbb",

		CardSurface:  "#3b4252",
		CardExpanded: "#5e81ac",

		ChartLine: "#a3be8c",
		ChartAxis: "#4c566a",

		StatusOK:    "#a3be8c",
		StatusWarn:  "#ebcb8b",
		StatusError: "#bf616a",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}
