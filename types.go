package crownpages

// Category groups content types for editor palettes and filtered listings.
// The first five apply to composable sections; the rest are page-level
// categories used only by full page definitions.
type Category string

const (
	CategoryContent     Category = "content"
	CategoryMedia       Category = "media"
	CategoryInteraction Category = "interaction"
	CategoryData        Category = "data"
	CategoryLayout      Category = "layout"

	CategoryBusiness   Category = "business"
	CategoryPersonal   Category = "personal"
	CategoryHealthcare Category = "healthcare"
	CategoryRestaurant Category = "restaurant"
	CategoryService    Category = "service"
	CategoryCreative   Category = "creative"
	CategoryNonprofit  Category = "nonprofit"
)

// SectionCategories lists the categories composable sections may use, in
// palette order.
func SectionCategories() []Category {
	return []Category{
		CategoryContent,
		CategoryMedia,
		CategoryInteraction,
		CategoryData,
		CategoryLayout,
	}
}

// FullPageCategories lists the page-level categories, in palette order.
func FullPageCategories() []Category {
	return []Category{
		CategoryBusiness,
		CategoryPersonal,
		CategoryHealthcare,
		CategoryRestaurant,
		CategoryService,
		CategoryCreative,
		CategoryNonprofit,
	}
}

// Platform identifies which front end is asking for a platform-specific
// value.
type Platform string

const (
	PlatformMobile Platform = "mobile"
	PlatformWeb    Platform = "web"
)

// Icon is a pair of platform-specific icon identifiers. The strings are raw
// names in each platform's icon library; this package never validates them
// against a real icon set.
type Icon struct {
	Mobile string `json:"mobile"`
	Web    string `json:"web"`
}

// For returns the identifier for the given platform. Unknown platforms fall
// back to the web identifier.
func (i Icon) For(platform Platform) string {
	if platform == PlatformMobile {
		return i.Mobile
	}
	return i.Web
}

// StyleAxis is one style dimension an editor may let the user override.
type StyleAxis string

const (
	StyleAxisColors     StyleAxis = "colors"
	StyleAxisTypography StyleAxis = "typography"
	StyleAxisSpacing    StyleAxis = "spacing"
	StyleAxisLayout     StyleAxis = "layout"
)

// ColorRole is a semantic color slot a content type exposes for theming.
type ColorRole string

const (
	ColorRolePrimary    ColorRole = "primary"
	ColorRoleSecondary  ColorRole = "secondary"
	ColorRoleBackground ColorRole = "background"
	ColorRoleText       ColorRole = "text"
)

// StyleOptions declares which style axes a consuming editor may surface for
// user overrides and which semantic color roles apply to the content type.
type StyleOptions struct {
	Axes       []StyleAxis `json:"axes,omitempty"`
	ColorRoles []ColorRole `json:"colorRoles,omitempty"`
}

// PlatformHints are per-platform layout hints. They are advisory metadata
// for renderers; nothing in this package interprets them.
type PlatformHints struct {
	Height         string `json:"height,omitempty"` // auto, fixed, viewport
	Spacing        string `json:"spacing,omitempty"` // compact, normal, spacious
	Layout         string `json:"layout,omitempty"` // stack, grid, carousel, split
	Responsive     bool   `json:"responsive"`
	ContainerWidth string `json:"containerWidth,omitempty"` // full, contained, narrow
	Animation      bool   `json:"animation"`
}

// RenderingHints holds the layout hints for both platforms.
type RenderingHints struct {
	Mobile PlatformHints `json:"mobile"`
	Web    PlatformHints `json:"web"`
}

// SectionDefinition is the schema for one kind of composable content block.
// Consumers may reorder section instances freely inside their own container;
// that concern lives entirely outside this package.
type SectionDefinition struct {
	Type           string         `json:"type"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Category       Category       `json:"category"`
	Icon           Icon           `json:"icon"`
	Fields         FieldList      `json:"fields"`
	DefaultData    map[string]any `json:"defaultData,omitempty"`
	StyleOptions   StyleOptions   `json:"styleOptions"`
	RenderingHints RenderingHints `json:"renderingHints"`
	Version        string         `json:"version"`
}

func (d *SectionDefinition) TypeName() string       { return d.Type }
func (d *SectionDefinition) CategoryName() Category { return d.Category }

// FullPageSection is one entry in a full page's fixed section sequence. It
// carries its own fields and defaults; Optional marks sections an editor may
// hide without failing validation of the page as a whole.
type FullPageSection struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Optional    bool           `json:"optional,omitempty"`
	Fields      FieldList      `json:"fields"`
	DefaultData map[string]any `json:"defaultData,omitempty"`
}

// PageNavigationHints are the page-level rendering options for a full page.
type PageNavigationHints struct {
	Navigation string `json:"navigation,omitempty"` // anchored, tabs, scroll
	Transition string `json:"transition,omitempty"` // none, fade, slide
	StickyNav  bool   `json:"stickyNav,omitempty"`
}

// PageRenderingHints wraps the full-page hint block; the nesting mirrors the
// wire shape both front ends already consume.
type PageRenderingHints struct {
	FullPage PageNavigationHints `json:"fullPage"`
}

// SEOMeta is optional search metadata for a full page.
type SEOMeta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// FullPageDefinition is the schema for a complete, non-rearrangeable page.
// The order of Sections is the authoritative rendering order: consuming
// editors must never reorder it. That fixed sequence is what distinguishes a
// full page from composable sections.
type FullPageDefinition struct {
	Type           string             `json:"type"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Category       Category           `json:"category"`
	Icon           Icon               `json:"icon"`
	Sections       []FullPageSection  `json:"sections"`
	GlobalStyles   StyleOptions       `json:"globalStyles"`
	RenderingHints PageRenderingHints `json:"renderingHints"`
	SEO            *SEOMeta           `json:"seo,omitempty"`
	Version        string             `json:"version"`
}

func (d *FullPageDefinition) TypeName() string       { return d.Type }
func (d *FullPageDefinition) CategoryName() Category { return d.Category }

// Section returns the page section with the given id, or false.
func (d *FullPageDefinition) Section(id string) (FullPageSection, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return FullPageSection{}, false
}
