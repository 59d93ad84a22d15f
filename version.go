package conf

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the library version, set via ldflags.
	Version = "dev"
)
