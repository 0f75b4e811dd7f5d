package localefile

// Config holds configuration for locale file persistence.
type Config struct {
	// Backend selects the store: "fs" or "bucket".
	Backend string `mapstructure:"backend" default:"fs"`
	// Dir is the directory (or object prefix) holding the locale files.
	Dir string `mapstructure:"dir" default:"config/locales"`
	// Format is the codec used when a file name has no known extension.
	Format string `mapstructure:"format" default:"yaml"`
	// BaseFile is the reference file used by the subtract-base recipe.
	BaseFile string `mapstructure:"base_file" default:"base.yml"`
}

const (
	BackendFS     = "fs"
	BackendBucket = "bucket"
)

// LocaleFile returns the default file name of a locale, e.g. "en.yml".
func (c Config) LocaleFile(locale string) (string, error) {
	codec, err := CodecFor(c.Format)
	if err != nil {
		return "", err
	}
	return locale + "." + codec.Extension(), nil
}
