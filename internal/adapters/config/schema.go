package config

// SettingsFile represents the structure of the settings file.
type SettingsFile struct {
	Configurable ConfigurableDTO `yaml:"configurable"`
	Internal     *InternalDTO    `yaml:"internal"`
	Paths        []string        `yaml:"paths"`
	Cache        CacheDTO        `yaml:"cache"`
}

// ConfigurableDTO holds the user-editable part of the settings.
type ConfigurableDTO struct {
	IgnorePaths    ValuesDTO         `yaml:"ignorePaths"`
	IgnorePatterns ValuesDTO         `yaml:"ignorePatterns"`
	NameOverrides  map[string]string `yaml:"nameOverrides"`
}

// ValuesDTO wraps a list of values.
type ValuesDTO struct {
	Values []string `yaml:"values"`
}

// InternalDTO splits the search roots into stable and volatile groups.
type InternalDTO struct {
	Cached  []string `yaml:"cached"`
	Updated []string `yaml:"updated"`
}

// CacheDTO configures where the stable walk output is stored.
type CacheDTO struct {
	File string `yaml:"file"`
	Dir  string `yaml:"dir"`
}
