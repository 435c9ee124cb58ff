package gnprofiles

var (
	// Version of GNprofiles, set during the build.
	Version = "v0.1.0"

	// Build timestamp, set during the build.
	Build = "n/a"
)
