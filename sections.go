package crownpages

// allSections returns the static section catalog in the order editors list
// it: content, media, interaction, data, layout. Registration order is the
// listing order, so keep new sections grouped with their category.
func allSections() []*SectionDefinition {
	return []*SectionDefinition{
		// content
		heroSection,
		aboutSection,
		textBlockSection,
		faqSection,
		// media
		gallerySection,
		videoEmbedSection,
		imageBannerSection,
		// interaction
		callToActionSection,
		contactFormSection,
		newsletterSection,
		socialLinksSection,
		// data
		statsSection,
		pricingSection,
		teamSection,
		testimonialsSection,
		openingHoursSection,
		// layout
		spacerSection,
		dividerSection,
	}
}
