//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package config

const (
	DefaultSearchPath = "/home/el-rafa/VSCode/Rhythin"
	DefaultCacheFile  = "CMakeCache.txt"
	DefaultMarker     = "# Generated with gencmake.py"
)

type Config struct {
	SearchPath string `yaml:"search-path"`
	CacheFile  string `yaml:"cache-file"`
	Marker     string `yaml:"marker"`
	Once       bool   `yaml:"once"`
	Backup     bool   `yaml:"backup"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

func Default() *Config {
	return &Config{
		SearchPath: DefaultSearchPath,
		CacheFile:  DefaultCacheFile,
		Marker:     DefaultMarker,
	}
}

// FillDefaults sets every empty field of cfg to its default value.
func (c *Config) FillDefaults() {
	def := Default()
	if c.SearchPath == "" {
		c.SearchPath = def.SearchPath
	}
	if c.CacheFile == "" {
		c.CacheFile = def.CacheFile
	}
	if c.Marker == "" {
		c.Marker = def.Marker
	}
}
