package crownpages

var personalPortfolioPage = &FullPageDefinition{
	Type:        "personal-portfolio",
	Name:        "Personal Portfolio",
	Description: "Personal site: bio, selected work, contact.",
	Category:    CategoryPersonal,
	Icon:        Icon{Mobile: "person-outline", Web: "FaUser"},
	Sections: []FullPageSection{
		{
			ID:   "bio",
			Name: "Bio",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "name", Label: "Name", Required: true},
					MaxLength: 60,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "headline", Label: "Headline", Placeholder: "Product designer in Berlin"},
					MaxLength: 100,
				},
				ImageField{
					FieldMeta: FieldMeta{Name: "portrait", Label: "Portrait"},
					Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
					MaxSizeMB: 5,
				},
			},
			DefaultData: map[string]any{
				"name": "Your Name",
			},
		},
		{
			ID:   "work",
			Name: "Selected Work",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "projects", Label: "Projects", Required: true},
					MinItems:  1,
					MaxItems:  12,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "title", Label: "Title", Required: true},
							MaxLength: 80,
						},
						TextareaField{
							FieldMeta: FieldMeta{Name: "summary", Label: "Summary"},
							MaxLength: 300,
							Rows:      3,
						},
						ImageField{
							FieldMeta: FieldMeta{Name: "cover", Label: "Cover Image"},
							Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
							MaxSizeMB: 8,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"projects": []any{
					map[string]any{"title": "First project"},
				},
			},
		},
		{
			ID:   "contact",
			Name: "Contact",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "email", Label: "Email", Required: true},
					MaxLength: 254,
				},
			},
			DefaultData: map[string]any{
				"email": "you@example.com",
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography, StyleAxisSpacing},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "scroll", Transition: "fade"},
	},
	Version: "1.4.2",
}

var studioShowcasePage = &FullPageDefinition{
	Type:        "studio-showcase",
	Name:        "Studio Showcase",
	Description: "Visual-first page for creative studios: reel, gallery, clients.",
	Category:    CategoryCreative,
	Icon:        Icon{Mobile: "color-palette-outline", Web: "FaPalette"},
	Sections: []FullPageSection{
		{
			ID:   "reel",
			Name: "Reel",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "studioName", Label: "Studio Name", Required: true},
					MaxLength: 80,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "reelUrl", Label: "Showreel URL", Placeholder: "https://vimeo.com/..."},
					MaxLength: 500,
				},
			},
			DefaultData: map[string]any{
				"studioName": "Your Studio",
			},
		},
		{
			ID:   "gallery",
			Name: "Gallery",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "pieces", Label: "Pieces", Required: true},
					MinItems:  1,
					MaxItems:  30,
					ItemSchema: FieldList{
						ImageField{
							FieldMeta: FieldMeta{Name: "image", Label: "Image", Required: true},
							Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
							MaxSizeMB: 12,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "title", Label: "Title"},
							MaxLength: 80,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"pieces": []any{
					map[string]any{"image": "placeholder://piece"},
				},
			},
		},
		{
			ID:       "clients",
			Name:     "Clients",
			Optional: true,
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "clients", Label: "Clients"},
					MaxItems:  20,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "name", Label: "Client Name", Required: true},
							MaxLength: 60,
						},
					},
				},
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "scroll", Transition: "slide"},
	},
	Version: "1.0.4",
}

var charityHomePage = &FullPageDefinition{
	Type:        "charity-home",
	Name:        "Charity Home",
	Description: "Nonprofit page: mission, impact numbers, donate.",
	Category:    CategoryNonprofit,
	Icon:        Icon{Mobile: "heart-outline", Web: "FaHeart"},
	Sections: []FullPageSection{
		{
			ID:   "mission",
			Name: "Mission",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "organizationName", Label: "Organization Name", Required: true},
					MaxLength: 100,
				},
				TextareaField{
					FieldMeta: FieldMeta{Name: "missionStatement", Label: "Mission Statement", Required: true},
					MaxLength: 800,
					Rows:      6,
				},
			},
			DefaultData: map[string]any{
				"organizationName": "Your Organization",
				"missionStatement": "Describe the change you are working toward.",
			},
		},
		{
			ID:   "impact",
			Name: "Impact",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "figures", Label: "Impact Figures", Required: true},
					MinItems:  1,
					MaxItems:  6,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "value", Label: "Value", Required: true, Placeholder: "1,200"},
							MaxLength: 12,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "label", Label: "Label", Required: true, Placeholder: "Meals served"},
							MaxLength: 40,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"figures": []any{
					map[string]any{"value": "1,200", "label": "Meals served"},
				},
			},
		},
		{
			ID:   "donate",
			Name: "Donate",
			Fields: FieldList{
				ButtonField{
					FieldMeta: FieldMeta{Name: "donateButton", Label: "Donate Button", Required: true},
					LinkTypes: []LinkType{LinkTypeURL},
				},
				TextField{
					FieldMeta: FieldMeta{Name: "note", Label: "Note", Placeholder: "Donations are tax deductible"},
					MaxLength: 140,
				},
			},
			DefaultData: map[string]any{
				"donateButton": map[string]any{
					"label":    "Donate",
					"linkType": "url",
					"target":   "https://donate.example.com",
				},
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleSecondary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "anchored", Transition: "fade", StickyNav: true},
	},
	SEO: &SEOMeta{
		Title:    "Charity Home",
		Keywords: []string{"nonprofit", "charity", "donate"},
	},
	Version: "1.2.0",
}
