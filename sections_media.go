package crownpages

var gallerySection = &SectionDefinition{
	Type:        "gallery",
	Name:        "Gallery",
	Description: "Grid or carousel of images with optional captions.",
	Category:    CategoryMedia,
	Icon:        Icon{Mobile: "image-outline", Web: "FaImage"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "heading",
				Label:       "Heading",
				Placeholder: "Our work",
			},
			MaxLength: 100,
		},
		SelectField{
			FieldMeta: FieldMeta{
				Name:  "displayMode",
				Label: "Display Mode",
			},
			Options: []SelectOption{
				{Label: "Grid", Value: "grid", Icon: "grid"},
				{Label: "Carousel", Value: "carousel", Icon: "arrow"},
				{Label: "Masonry", Value: "masonry", Icon: "image"},
			},
		},
		ArrayField{
			FieldMeta: FieldMeta{
				Name:     "images",
				Label:    "Images",
				Required: true,
			},
			MinItems: 1,
			MaxItems: 24,
			ItemSchema: FieldList{
				ImageField{
					FieldMeta: FieldMeta{Name: "image", Label: "Image", Required: true},
					Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
					MaxSizeMB: 8,
				},
				TextField{
					FieldMeta: FieldMeta{Name: "caption", Label: "Caption"},
					MaxLength: 120,
				},
			},
		},
	},
	DefaultData: map[string]any{
		"heading":     "Gallery",
		"displayMode": "grid",
		"images":      []any{},
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisSpacing, StyleAxisLayout},
		ColorRoles: []ColorRole{ColorRoleBackground},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "auto", Spacing: "compact", Layout: "carousel", Responsive: true, ContainerWidth: "full"},
		Web:    PlatformHints{Height: "auto", Spacing: "normal", Layout: "grid", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.3.2",
}

var videoEmbedSection = &SectionDefinition{
	Type:        "video-embed",
	Name:        "Video",
	Description: "Embedded video player with an optional poster image.",
	Category:    CategoryMedia,
	Icon:        Icon{Mobile: "videocam-outline", Web: "FaVideo"},
	Fields: FieldList{
		TextField{
			FieldMeta: FieldMeta{
				Name:        "videoUrl",
				Label:       "Video URL",
				Required:    true,
				Placeholder: "https://youtube.com/watch?v=...",
				Description: "YouTube and Vimeo links are supported.",
			},
			MaxLength: 500,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:  "caption",
				Label: "Caption",
			},
			MaxLength: 150,
		},
		ImageField{
			FieldMeta: FieldMeta{
				Name:        "poster",
				Label:       "Poster Image",
				Description: "Shown before playback starts.",
			},
			Accept:    []string{".jpg", ".jpeg", ".png"},
			MaxSizeMB: 5,
		},
	},
	DefaultData: map[string]any{
		"videoUrl": "https://youtube.com/watch?v=dQw4w9WgXcQ",
	},
	StyleOptions: StyleOptions{
		Axes: []StyleAxis{StyleAxisSpacing},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "fixed", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "full"},
		Web:    PlatformHints{Height: "fixed", Spacing: "normal", Layout: "stack", Responsive: true, ContainerWidth: "contained"},
	},
	Version: "1.0.1",
}

var imageBannerSection = &SectionDefinition{
	Type:        "image-banner",
	Name:        "Image Banner",
	Description: "Full-width image strip with overlay text.",
	Category:    CategoryMedia,
	Icon:        Icon{Mobile: "camera-outline", Web: "FaCamera"},
	Fields: FieldList{
		ImageField{
			FieldMeta: FieldMeta{
				Name:     "image",
				Label:    "Banner Image",
				Required: true,
			},
			Accept:    []string{".jpg", ".jpeg", ".png", ".webp"},
			MaxSizeMB: 12,
		},
		TextField{
			FieldMeta: FieldMeta{
				Name:  "overlayText",
				Label: "Overlay Text",
			},
			MaxLength: 90,
		},
	},
	DefaultData: map[string]any{
		"image": "placeholder://banner",
	},
	StyleOptions: StyleOptions{
		Axes:       []StyleAxis{StyleAxisColors},
		ColorRoles: []ColorRole{ColorRoleText},
	},
	RenderingHints: RenderingHints{
		Mobile: PlatformHints{Height: "fixed", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "full", Animation: true},
		Web:    PlatformHints{Height: "fixed", Spacing: "compact", Layout: "stack", Responsive: true, ContainerWidth: "full", Animation: true},
	},
	Version: "1.1.4",
}
