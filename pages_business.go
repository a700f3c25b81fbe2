package crownpages

var businessLandingPage = &FullPageDefinition{
	Type:        "business-landing",
	Name:        "Business Landing",
	Description: "Single-page company site: intro, services, proof, contact.",
	Category:    CategoryBusiness,
	Icon:        Icon{Mobile: "briefcase-outline", Web: "FaBriefcase"},
	Sections: []FullPageSection{
		{
			ID:   "intro",
			Name: "Intro",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "companyName", Label: "Company Name", Required: true},
					MaxLength: 80,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "tagline", Label: "Tagline", Placeholder: "What you do, in one line"},
					MaxLength: 120,
				},
				ImageField{
					FieldMeta: FieldMeta{Name: "logo", Label: "Logo"},
					Accept:    []string{".png", ".svg", ".webp"},
					MaxSizeMB: 2,
				},
			},
			DefaultData: map[string]any{
				"companyName": "Your Company",
				"tagline":     "We make it happen",
			},
		},
		{
			ID:   "services",
			Name: "Services",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "heading", Label: "Heading", Required: true},
					MaxLength: 80,
				},
				ArrayField{
					FieldMeta: FieldMeta{Name: "items", Label: "Services", Required: true},
					MinItems:  1,
					MaxItems:  9,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "title", Label: "Title", Required: true},
							MaxLength: 60,
						},
						TextareaField{
							FieldMeta: FieldMeta{Name: "summary", Label: "Summary"},
							MaxLength: 300,
							Rows:      3,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"heading": "What we do",
				"items": []any{
					map[string]any{"title": "Consulting"},
				},
			},
		},
		{
			ID:       "testimonials",
			Name:     "Testimonials",
			Optional: true,
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "quotes", Label: "Quotes"},
					MaxItems:  6,
					ItemSchema: FieldList{
						TextareaField{
							FieldMeta: FieldMeta{Name: "quote", Label: "Quote", Required: true},
							MaxLength: 400,
							Rows:      3,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "author", Label: "Author", Required: true},
							MaxLength: 60,
						},
					},
				},
			},
		},
		{
			ID:   "contact",
			Name: "Contact",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "email", Label: "Contact Email", Required: true},
					MaxLength: 254,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "phone", Label: "Phone Number"},
					MaxLength: 30,
				},
			},
			DefaultData: map[string]any{
				"email": "hello@example.com",
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleSecondary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "anchored", Transition: "fade", StickyNav: true},
	},
	SEO: &SEOMeta{
		Title:       "Business Landing",
		Description: "Company landing page template",
		Keywords:    []string{"business", "landing", "company"},
	},
	Version: "2.1.0",
}

var serviceBookingPage = &FullPageDefinition{
	Type:        "service-booking",
	Name:        "Service Booking",
	Description: "Page for trades and service providers with a booking call-to-action.",
	Category:    CategoryService,
	Icon:        Icon{Mobile: "build-outline", Web: "FaWrench"},
	Sections: []FullPageSection{
		{
			ID:   "intro",
			Name: "Intro",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "businessName", Label: "Business Name", Required: true},
					MaxLength: 80,
				},
				TextareaField{
					FieldMeta: FieldMeta{Name: "pitch", Label: "Pitch", Placeholder: "Why customers should book you"},
					MaxLength: 400,
					Rows:      4,
				},
			},
			DefaultData: map[string]any{
				"businessName": "Your Service",
			},
		},
		{
			ID:   "serviceArea",
			Name: "Service Area",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "area", Label: "Service Area", Required: true, Placeholder: "Greater Springfield"},
					MaxLength: 120,
				},
				SelectField{
					FieldMeta: FieldMeta{Name: "travel", Label: "Travel Policy"},
					Options: []SelectOption{
						{Label: "We come to you", Value: "mobile"},
						{Label: "Visit our location", Value: "onsite"},
						{Label: "Both", Value: "both"},
					},
				},
			},
			DefaultData: map[string]any{
				"area":   "Local area",
				"travel": "both",
			},
		},
		{
			ID:   "booking",
			Name: "Booking",
			Fields: FieldList{
				ButtonField{
					FieldMeta: FieldMeta{Name: "bookButton", Label: "Booking Button", Required: true},
					LinkTypes: []LinkType{LinkTypeURL, LinkTypePhone},
				},
				TextField{
					FieldMeta: FieldMeta{Name: "note", Label: "Booking Note", Placeholder: "Same-day slots often available"},
					MaxLength: 140,
				},
			},
			DefaultData: map[string]any{
				"bookButton": map[string]any{
					"label":    "Book now",
					"linkType": "phone",
					"target":   "+1 555 000 0000",
				},
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "scroll", Transition: "none"},
	},
	Version: "1.3.0",
}
