package crownpages

var spacerSection = &SectionDefinition{
	Type:        "spacer",
	Name:        "Spacer",
	Description: "Empty vertical gap between sections.",
	Category:    CategoryLayout,
	Icon:        Icon{Mobile: "list-outline", Web: "FaListUl"},
	Fields: FieldList{
		SelectField{
			FieldMeta: FieldMeta{
				Name:     "size",
				Label:    "Size",
				Required: true,
			},
			Options: []SelectOption{
				{Label: "Small", Value: "small", Preview: "16px"},
				{Label: "Medium", Value: "medium", Preview: "32px"},
				{Label: "Large", Value: "large", Preview: "64px"},
			},
		},
	},
	DefaultData: map[string]any{
		"size": "medium",
	},
	StyleOptions: StyleOptions{},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "fixed", Layout: "stack", Responsive: true, ContainerWidth: "full"},
		Web:    PlatformHints{Height: "fixed", Layout: "stack", Responsive: true, ContainerWidth: "full"},
	},
	Version: "1.0.0",
}

var dividerSection = &SectionDefinition{
	Type:        "divider",
	Name:        "Divider",
	Description: "Horizontal rule separating two sections.",
	Category:    CategoryLayout,
	Icon:        Icon{Mobile: "list-outline", Web: "FaListUl"},
	Fields: FieldList{
		SelectField{
			FieldMeta: FieldMeta{
				Name:  "style",
				Label: "Style",
			},
			Options: []SelectOption{
				{Label: "Solid", Value: "solid"},
				{Label: "Dashed", Value: "dashed"},
				{Label: "Dotted", Value: "dotted"},
			},
		},
	},
	DefaultData: map[string]any{
		"style": "solid",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRoleSecondary},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "fixed", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "fixed", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.0.1",
}
