package crownpages

var restaurantHomePage = &FullPageDefinition{
	Type:        "restaurant-home",
	Name:        "Restaurant Home",
	Description: "Restaurant front page: welcome, menu highlights, hours, reservations.",
	Category:    CategoryRestaurant,
	Icon:        Icon{Mobile: "restaurant-outline", Web: "FaUtensils"},
	Sections: []FullPageSection{
		{
			ID:   "welcome",
			Name: "Welcome",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "restaurantName", Label: "Restaurant Name", Required: true},
					MaxLength: 80,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "cuisine", Label: "Cuisine", Placeholder: "Modern Italian"},
					MaxLength: 60,
				},
				ImageField{
					FieldMeta: FieldMeta{Name: "heroImage", Label: "Hero Image"},
					Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
					MaxSizeMB: 10,
				},
			},
			DefaultData: map[string]any{
				"restaurantName": "Your Restaurant",
			},
		},
		{
			ID:   "menuHighlights",
			Name: "Menu Highlights",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "dishes", Label: "Dishes", Required: true},
					MinItems:  1,
					MaxItems:  12,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "name", Label: "Dish Name", Required: true},
							MaxLength: 80,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "price", Label: "Price", Required: true, Placeholder: "$18"},
							MaxLength: 12,
						},
						TextareaField{
							FieldMeta: FieldMeta{Name: "description", Label: "Description"},
							MaxLength: 200,
							Rows:      2,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"dishes": []any{
					map[string]any{"name": "House special", "price": "$18"},
				},
			},
		},
		{
			ID:   "hours",
			Name: "Hours",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "entries", Label: "Entries", Required: true},
					MinItems:  1,
					MaxItems:  7,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "days", Label: "Days", Required: true},
							MaxLength: 30,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "hours", Label: "Hours", Required: true},
							MaxLength: 30,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"entries": []any{
					map[string]any{"days": "Tue - Sun", "hours": "17:00 - 23:00"},
				},
			},
		},
		{
			ID:       "reservations",
			Name:     "Reservations",
			Optional: true,
			Fields: FieldList{
				ButtonField{
					FieldMeta: FieldMeta{Name: "reserveButton", Label: "Reserve Button"},
					LinkTypes: []LinkType{LinkTypeURL, LinkTypePhone},
				},
				TextField{
					FieldMeta: FieldMeta{Name: "policy", Label: "Reservation Policy", Placeholder: "Parties of 6+ please call"},
					MaxLength: 140,
				},
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors, StyleAxisTypography},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "anchored", Transition: "fade", StickyNav: true},
	},
	SEO: &SEOMeta{
		Title:    "Restaurant Home",
		Keywords: []string{"restaurant", "menu", "reservations"},
	},
	Version: "2.0.1",
}

var clinicHomePage = &FullPageDefinition{
	Type:        "clinic-home",
	Name:        "Clinic Home",
	Description: "Healthcare practice page: practice intro, treatments, practitioners, appointments.",
	Category:    CategoryHealthcare,
	Icon:        Icon{Mobile: "medkit-outline", Web: "FaBriefcaseMedical"},
	Sections: []FullPageSection{
		{
			ID:   "practice",
			Name: "Practice",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "practiceName", Label: "Practice Name", Required: true},
					MaxLength: 100,
				},
				TextareaField{
					FieldMeta: FieldMeta{Name: "welcomeText", Label: "Welcome Text"},
					MaxLength: 600,
					Rows:      5,
				},
			},
			DefaultData: map[string]any{
				"practiceName": "Your Practice",
			},
		},
		{
			ID:   "treatments",
			Name: "Treatments",
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "treatments", Label: "Treatments", Required: true},
					MinItems:  1,
					MaxItems:  15,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "name", Label: "Treatment", Required: true},
							MaxLength: 80,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "duration", Label: "Duration", Placeholder: "30 min"},
							MaxLength: 20,
						},
					},
				},
			},
			DefaultData: map[string]any{
				"treatments": []any{
					map[string]any{"name": "Initial consultation", "duration": "45 min"},
				},
			},
		},
		{
			ID:       "practitioners",
			Name:     "Practitioners",
			Optional: true,
			Fields: FieldList{
				ArrayField{
					FieldMeta: FieldMeta{Name: "people", Label: "Practitioners"},
					MaxItems:  10,
					ItemSchema: FieldList{
						TextField{
							FieldMeta: FieldMeta{Name: "name", Label: "Name", Required: true},
							MaxLength: 60,
						},
						TextField{
							FieldMeta: FieldMeta{Name: "title", Label: "Title", Placeholder: "Physiotherapist"},
							MaxLength: 60,
						},
					},
				},
			},
		},
		{
			ID:   "appointments",
			Name: "Appointments",
			Fields: FieldList{
				TextField{
					FieldMeta: FieldMeta{Name: "phone", Label: "Phone Number", Required: true},
					MaxLength: 30,
				},
				ButtonField{
					FieldMeta: FieldMeta{Name: "bookButton", Label: "Online Booking"},
					LinkTypes: []LinkType{LinkTypeURL},
				},
			},
			DefaultData: map[string]any{
				"phone": "+1 555 000 0000",
			},
		},
	},
	GlobalStyles: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRolePrimary, ColorRoleBackground, ColorRoleText},
	},
	RenderingHints: PageRenderingHints{
		FullPage: PageNavigationHints{Navigation: "tabs", Transition: "slide"},
	},
	Version: "1.1.0",
}
