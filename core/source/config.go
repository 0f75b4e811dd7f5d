package source

// Config holds configuration for the current-tree source.
type Config struct {
	// Kind selects the source: files, database or bundle.
	Kind string `mapstructure:"kind" default:"files"`
	// Dirs lists the directories searched by the files source (comma separated in env).
	Dirs []string `mapstructure:"dirs" default:"config/locales"`
	// BundleDir is the directory holding go-i18n message files.
	BundleDir string `mapstructure:"bundle_dir" default:"locales"`
	// AutoMigrate creates the translations table instead of verifying it.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"false"`
	// CacheTTLSeconds enables caching of loaded trees. Zero disables it.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

const (
	KindFiles    = "files"
	KindDatabase = "database"
	KindBundle   = "bundle"
)
