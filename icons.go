package crownpages

import "sort"

// iconOptions maps abstract icon identifiers, as used in definitions and
// select options, to their platform-specific names. Mobile names target the
// Ionicons set shipped with the mobile app; web names target react-icons.
var iconOptions = map[string]Icon{
	"star":      {Mobile: "star-outline", Web: "FaStar"},
	"heart":     {Mobile: "heart-outline", Web: "FaHeart"},
	"home":      {Mobile: "home-outline", Web: "FaHome"},
	"user":      {Mobile: "person-outline", Web: "FaUser"},
	"users":     {Mobile: "people-outline", Web: "FaUsers"},
	"phone":     {Mobile: "call-outline", Web: "FaPhone"},
	"mail":      {Mobile: "mail-outline", Web: "FaEnvelope"},
	"location":  {Mobile: "location-outline", Web: "FaMapMarkerAlt"},
	"clock":     {Mobile: "time-outline", Web: "FaClock"},
	"calendar":  {Mobile: "calendar-outline", Web: "FaCalendarAlt"},
	"camera":    {Mobile: "camera-outline", Web: "FaCamera"},
	"image":     {Mobile: "image-outline", Web: "FaImage"},
	"video":     {Mobile: "videocam-outline", Web: "FaVideo"},
	"text":      {Mobile: "text-outline", Web: "FaFont"},
	"grid":      {Mobile: "grid-outline", Web: "FaTh"},
	"list":      {Mobile: "list-outline", Web: "FaListUl"},
	"link":      {Mobile: "link-outline", Web: "FaLink"},
	"cart":      {Mobile: "cart-outline", Web: "FaShoppingCart"},
	"card":      {Mobile: "card-outline", Web: "FaCreditCard"},
	"chat":      {Mobile: "chatbubble-outline", Web: "FaComment"},
	"megaphone": {Mobile: "megaphone-outline", Web: "FaBullhorn"},
	"sparkles":  {Mobile: "sparkles-outline", Web: "FaMagic"},
	"leaf":      {Mobile: "leaf-outline", Web: "FaLeaf"},
	"medkit":    {Mobile: "medkit-outline", Web: "FaBriefcaseMedical"},
	"utensils":  {Mobile: "restaurant-outline", Web: "FaUtensils"},
	"wrench":    {Mobile: "build-outline", Web: "FaWrench"},
	"palette":   {Mobile: "color-palette-outline", Web: "FaPalette"},
	"gift":      {Mobile: "gift-outline", Web: "FaGift"},
	"shield":    {Mobile: "shield-checkmark-outline", Web: "FaShieldAlt"},
	"chart":     {Mobile: "stats-chart-outline", Web: "FaChartBar"},
	"quote":     {Mobile: "chatbox-ellipses-outline", Web: "FaQuoteRight"},
	"question":  {Mobile: "help-circle-outline", Web: "FaQuestionCircle"},
	"arrow":     {Mobile: "arrow-forward-outline", Web: "FaArrowRight"},
	"check":     {Mobile: "checkmark-circle-outline", Web: "FaCheckCircle"},
	"globe":     {Mobile: "globe-outline", Web: "FaGlobe"},
	"briefcase": {Mobile: "briefcase-outline", Web: "FaBriefcase"},
}

// ResolveIcon maps an abstract icon identifier to its platform-specific
// name. Unrecognized identifiers pass through unchanged so rendering
// degrades gracefully instead of failing a whole content block; the same
// applies to an unrecognized platform.
func ResolveIcon(value string, platform Platform) string {
	icon, ok := iconOptions[value]
	if !ok {
		return value
	}
	switch platform {
	case PlatformMobile:
		return icon.Mobile
	case PlatformWeb:
		return icon.Web
	default:
		return value
	}
}

// IconValues returns the abstract icon identifiers this package can resolve,
// sorted for stable editor pickers.
func IconValues() []string {
	values := make([]string, 0, len(iconOptions))
	for v := range iconOptions {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
