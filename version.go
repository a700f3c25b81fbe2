package crownpages

// SchemaVersion identifies the content schema bundle shipped in this
// package. Both front ends embed the version they were built against and
// compare it with the bundle they fetch.
const SchemaVersion = "2.4.0"

// IsCompatible reports whether version matches the bundled schema exactly.
// This is a deliberately coarse gate: there is no range or semver
// comparison, and a newer version is just as incompatible as an older one.
// Consumers that see false should refresh their bundled schemas.
func IsCompatible(version string) bool {
	return version == SchemaVersion
}
