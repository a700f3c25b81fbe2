package crownpages

// allFullPages returns the static full page catalog. Unlike sections, a full
// page's internal section order is fixed; the order here only controls how
// the templates are listed in pickers.
func allFullPages() []*FullPageDefinition {
	return []*FullPageDefinition{
		businessLandingPage,
		serviceBookingPage,
		restaurantHomePage,
		clinicHomePage,
		personalPortfolioPage,
		studioShowcasePage,
		charityHomePage,
	}
}
