package cli

import "hellodock/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	ConfigFile  string
	Filter      string
	Quiet         bool
	WithDB        bool
	RequireServer bool
	Interactive   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:    f.ConfigFile,
		Filter:        f.Filter,
		Quiet:         f.Quiet,
		WithDB:        f.WithDB,
		RequireServer: f.RequireServer,
		Interactive:   f.Interactive,
	}
}
