package config

// Base application details.
const AppName = "glint"
const ConfigDirName = "glint"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "glint.log"

// Rendering defaults; these can be moved into NewDefaultConfig later.
const DefaultSeparatorWidth = 80
const DefaultSecondaryColor = "purple"
