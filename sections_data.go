package crownpages

var statsSection = &SectionDefinition{
	Type:        "stats",
	Name:        "Statistics",
	Description: "Row of headline numbers with short labels.",
	Category:    CategoryData,
	Icon:        Icon{Mobile: "stats-chart-outline", Web: "FaChartBar"},
	Fields: FieldList{
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "stats",
				Label:    "Statistics",
				Required: true,
			},
			MinItems: 2,
			MaxItems: 6,
			ItemSchema: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "value", Label: "Value", Required: true, Placeholder: "250+"},
					MaxLength: 12,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "label", Label: "Label", Required: true, Placeholder: "Happy clients"},
					MaxLength: 40,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"stats": []any{
			map[string]any{"value": "250+", "label": "Happy clients"},
			map[string]any{"value": "10", "label": "Years in business"},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "grid", Responsive: true, ContainerWidth: "contained", Animation: true},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "grid", Responsive: true, ContainerWidth: "contained", Animation: true},
	},
	Version: "1.0.5",
}

var pricingSection = &SectionDefinition{
	Type:        "pricing",
	Name:        "Pricing",
	Description: "Price list or tiered plans.",
	Category:    CategoryData,
	Icon:        Icon{Mobile: "card-outline", Web: "FaCreditCard"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Pricing",
			},
			MaxLength: 80,
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "plans",
				Label:    "Plans",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 6,
			ItemSchema: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "name", Label: "Plan Name", Required: true},
					MaxLength: 50,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "price", Label: "Price", Required: true, Placeholder: "$49 / month"},
					MaxLength: 30,
				},
				TextareaField{
					FieldMeta: FieldMeta{Name: "features", Label: "Features", Description: "One feature per line."},
					MaxLength: 600,
					Rows:      5,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading": "Pricing",
		"plans": []any{
			map[string]any{"name": "Standard", "price": "$49 / month"},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleSecondary, ColorRoleBackground},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "carousel", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "grid", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.2.3",
}

var teamSection = &SectionDefinition{
	Type:        "team",
	Name:        "Team",
	Description: "Grid of team member cards.",
	Category:    CategoryData,
	Icon:        Icon{Mobile: "people-outline", Web: "FaUsers"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Meet the team",
			},
			MaxLength: 80,
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "members",
				Label:    "Members",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 16,
			ItemSchema: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "name", Label: "Name", Required: true},
					MaxLength: 60,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "role", Label: "Role"},
					MaxLength: 60,
				},
				ImageField{
					FieldMeta: FieldMeta{Name: "photo", Label: "Photo"},
					Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
					MaxSizeMB: 5,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading": "Meet the team",
		"members": []any{
			map[string]any{"name": "Alex Doe", "role": "Founder"},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisSpacing, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "carousel", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "grid", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.1.2",
}

var testimonialsSection = &SectionDefinition{
	Type:        "testimonials",
	Name:        "Testimonials",
	Description: "Rotating quotes from customers.",
	Category:    CategoryData,
	Icon:        Icon{Mobile: "chatbox-ellipses-outline", Web: "FaQuoteRight"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "What our customers say",
			},
			MaxLength: 80,
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "quotes",
				Label:    "Quotes",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 12,
			ItemSchema: FieldList{
				TextareaField{
					FieldMeta: FieldMeta{Name: "quote", Label: "Quote", Required: true},
					MaxLength: 500,
					Rows:      4,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "author", Label: "Author", Required: true},
					MaxLength: 60,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "context", Label: "Context", Placeholder: "Customer since 2021"},
					MaxLength: 80,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading": "What our customers say",
		"quotes": []any{
			map[string]any{"quote": "Fantastic service from start to finish.", "author": "Jamie L."},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRoleSecondary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "carousel", Responsive: true, ContainerWidth: "contained", Animation: true},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "carousel", Responsive: true, ContainerWidth: "narrow", Animation: true},
	},
	Version: "1.3.0",
}

var openingHoursSection = &SectionDefinition{
	Type:        "opening-hours",
	Name:        "Opening Hours",
	Description: "Weekly opening hours table.",
	Category:    CategoryData,
	Icon:        Icon{Mobile: "time-outline", Web: "FaClock"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Opening hours",
			},
			MaxLength: 60,
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "entries",
				Label:    "Entries",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 7,
			ItemSchema: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "days", Label: "Days", Required: true, Placeholder: "Mon - Fri"},
					MaxLength: 30,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "hours", Label: "Hours", Required: true, Placeholder: "9:00 - 17:00"},
					MaxLength: 30,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading": "Opening hours",
		"entries": []any{
			map[string]any{"days": "Mon - Fri", "hours": "9:00 - 17:00"},
			map[string]any{"days": "Sat - Sun", "hours": "Closed"},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "narrow"},
		Web:    PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "narrow"},
	},
	Version: "1.0.0",
}
