package usage

// Config holds configuration for usage discovery.
type Config struct {
	// Root is the directory scanned for translation lookups.
	Root string `mapstructure:"root" default:"app"`
	// Extensions lists the file extensions that are scanned (comma separated in env).
	Extensions []string `mapstructure:"extensions" default:".rb,.erb"`
}
