package crownpages

var heroSection = &SectionDefinition{
	Type:        "hero",
	Name:        "Hero",
	Description: "Large opening banner with a headline, supporting text and a call-to-action button.",
	Category:    CategoryContent,
	Icon:        Icon{Mobile: "sparkles-outline", Web: "FaMagic"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "title",
				Label:       "Main Title",
				Required:    true,
				Placeholder: "Welcome to our site",
				Description: "The headline visitors see first.",
			},
			MinLength: 2,
			MaxLength: 100,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:        "subtitle",
				Label:       "Subtitle",
				Placeholder: "A short supporting line",
			},
			MaxLength: 150,
		},
		ImageField{
			FieldMeta: FieldMeta{
				Name:        "backgroundImage",
				Label:       "Background Image",
				Description: "Shown behind the headline; a dark overlay is applied automatically.",
			},
			Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
			MaxSizeMB: 10,
		},
		SelectField{
			FieldMeta: FieldMeta{
				Name:  "alignment",
				Label: "Text Alignment",
			},
			Options: []SelectOption{
				{Label: "Left", Value: "left"},
				{Label: "Center", Value: "center"},
				{Label: "Right", Value: "right"},
			},
		},
		ButtonField{
			FieldMeta: FieldMeta{
				Name:  "ctaButton",
				Label: "Call to Action",
			},
			LinkTypes: []LinkType{LinkTypeURL, LinkTypeInternal},
		},
	},
	DefaultData: map[string]any{
		"title":     "Welcome",
		"subtitle":  "We are glad you are here",
		"alignment": "center",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography, StyleAxisSpacing},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "viewport", Spacing: "spacious", Layout: "stack", Responsive: true, ContainerWidth: "full", Animation: true},
		Web:    PlatformHints{Height: "viewport", Spacing: "spacious", Layout: "split", Responsive: true, ContainerWidth: "full", Animation: true},
	},
	Version: "1.4.0",
}

var aboutSection = &SectionDefinition{
	Type:        "about",
	Name:        "About",
	Description: "Introduction block pairing a portrait or team photo with a longer story.",
	Category:    CategoryContent,
	Icon:        Icon{Mobile: "person-outline", Web: "FaUser"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Required:    true,
				Placeholder: "About us",
			},
			MaxLength: 80,
		},
		TextareaField{
			FieldMeta: FieldMeta{
				Name:        "story",
				Label:       "Story",
				Required:    true,
				Placeholder: "Tell visitors who you are and what you do.",
			},
			MaxLength: 2000,
			Rows:      8,
		},
		ImageField{
			FieldMeta: FieldMeta{
				Name:  "photo",
				Label: "Photo",
			},
			Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
			MaxSizeMB: 8,
		},
	},
	DefaultData: map[string]any{
		"heading": "About us",
		"story":   "Write a few sentences about your background and what makes you different.",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "split", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.2.1",
}

var textBlockSection = &SectionDefinition{
	Type:        "text-block",
	Name:        "Text Block",
	Description: "Free-form paragraph of rich text with an optional heading.",
	Category:    CategoryContent,
	Icon:        Icon{Mobile: "text-outline", Web: "FaFont"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Optional heading",
			},
			MaxLength: 120,
		},
		TextareaField{
			FieldMeta: FieldMeta{
				Name:     "body",
				Label:    "Body",
				Required: true,
			},
			MaxLength: 5000,
			Rows:      10,
		},
	},
	DefaultData: map[string]any{
		"body": "Start writing here.",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisTypography, StyleAxisSpacing},
		ColorRoles: []ColorRole{ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "narrow"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "narrow"},
	},
	Version: "1.0.3",
}

var faqSection = &SectionDefinition{
	Type:        "faq",
	Name:        "FAQ",
	Description: "Expandable list of frequently asked questions.",
	Category:    CategoryContent,
	Icon:        Icon{Mobile: "help-circle-outline", Web: "FaQuestionCircle"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Frequently asked questions",
			},
			MaxLength: 100,
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "items",
				Label:    "Questions",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 20,
			ItemSchema: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "question", Label: "Question", Required: true},
					MaxLength: 200,
				},
				TextareaField{
					FieldMeta: FieldMeta{Name: "answer", Label: "Answer", Required: true},
					MaxLength: 1000,
					Rows:      4,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading": "Frequently asked questions",
		"items": []any{
			map[string]any{
				"question": "How do I get in touch?",
				"answer":   "Use the contact form below and we will reply within one business day.",
			},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "narrow"},
	},
	Version: "1.1.0",
}
