package crownpages

var callToActionSection = &SectionDefinition{
	Type:        "cta",
	Name:        "Call to Action",
	Description: "Prominent banner nudging visitors toward one action.",
	Category:    CategoryInteraction,
	Icon:        Icon{Mobile: "megaphone-outline", Web: "FaBullhorn"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "message",
				Label:       "Message",
				Required:    true,
				Placeholder: "Ready to get started?",
			},
			MaxLength: 120,
		},
		ButtonField{
			FieldMeta: FieldMeta{
				Name:     "button",
				Label:    "Button",
				Required: true,
			},
			LinkTypes: []LinkType{LinkTypeURL, LinkTypeEmail, LinkTypePhone, LinkTypeInternal},
		},
	},
	DefaultData: map[string]any{
		"message": "Ready to get started?",
		"button": map[string]any{
			"label":    "Contact us",
			"linkType": "internal",
			"target":   "contact",
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisSpacing},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleSecondary, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "spacious", Layout: "stack", Responsive: true, ContainerWidth: "full", Animation: true},
		Web:    PlatformHints{Height: "auto", Spacing: "spacious", Layout: "stack", Responsive: true, ContainerWidth: "full", Animation: true},
	},
	Version: "1.2.0",
}

var contactFormSection = &SectionDefinition{
	Type:        "contact",
	Name:        "Contact Form",
	Description: "Inquiry form plus the business contact details shown beside it.",
	Category:    CategoryInteraction,
	Icon:        Icon{Mobile: "mail-outline", Web: "FaEnvelope"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Get in touch",
			},
			MaxLength: 80,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:        "email",
				Label:       "Contact Email",
				Required:    true,
				Placeholder: "hello@example.com",
				Description: "Inquiries are delivered to this address.",
			},
			MaxLength: 254,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:        "phone",
				Label:       "Phone Number",
				Placeholder: "+1 555 000 0000",
			},
			MaxLength: 30,
		},
		TextareaField{
			FieldMeta: FieldMeta{
				Name:        "address",
				Label:       "Address",
				Placeholder: "Street, city, postal code",
			},
			MaxLength: 300,
			Rows:      3,
		},
		SelectField{
			FieldMeta: FieldMeta{
				Name:        "formStyle",
				Label:       "Form Style",
				Description: "How the form sits next to the contact details.",
			},
			Options: []SelectOption{
				{Label: "Side by side", Value: "split", Preview: "form | details"},
				{Label: "Stacked", Value: "stacked", Preview: "form above details"},
				{Label: "Form only", Value: "form-only"},
			},
		},
	},
	DefaultData: map[string]any{
		"heading":   "Get in touch",
		"email":     "hello@example.com",
		"formStyle": "split",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "split", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.5.0",
}

var newsletterSection = &SectionDefinition{
	Type:        "newsletter",
	Name:        "Newsletter Signup",
	Description: "Single email field capture strip.",
	Category:    CategoryInteraction,
	Icon:        Icon{Mobile: "mail-outline", Web: "FaEnvelope"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Required:    true,
				Placeholder: "Stay in the loop",
			},
			MaxLength: 80,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:        "buttonLabel",
				Label:       "Button Label",
				Placeholder: "Subscribe",
			},
			MaxLength: 30,
		},
	},
	DefaultData: map[string]any{
		"heading":     "Stay in the loop",
		"buttonLabel": "Subscribe",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "full"},
		Web:    PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.0.2",
}

var socialLinksSection = &SectionDefinition{
	Type:        "social-links",
	Name:        "Social Links",
	Description: "Row of social profile icons.",
	Category:    CategoryInteraction,
	Icon:        Icon{Mobile: "link-outline", Web: "FaLink"},
	Fields: FieldList{
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "links",
				Label:    "Links",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 8,
			ItemSchema: FieldList{
				SelectField{
					FieldMeta: FieldMeta{Name: "network", Label: "Network", Required: true},
					Options: []SelectOption{
						{Label: "Instagram", Value: "instagram"},
						{Label: "Facebook", Value: "facebook"},
						{Label: "TikTok", Value: "tiktok"},
						{Label: "YouTube", Value: "youtube"},
						{Label: "LinkedIn", Value: "linkedin"},
						{Label: "X", Value: "x"},
					},
				},
				TextField{
					FieldMeta: FieldMeta{Name: "url", Label: "Profile URL", Required: true},
					MaxLength: 300,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"links": []any{
			map[string]any{"network": "instagram", "url": "https://instagram.com/yourname"},
		},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisSpacing},
		ColorRoles: []ColorRole{ColorRolePrimary},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
		Web:    PlatformHints{Height: "auto", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.1.1",
}
