package config

// ClientProfile holds client-specific output settings.
// Some clients want HTML for their portal, others a Markdown copy in a
// shared folder; the profile is picked by the report's client company.
type ClientProfile struct {
	// OutputFormat overrides the global output format for this client.
	OutputFormat string `yaml:"output_format,omitempty"`

	// OutputDir overrides the global output directory for this client.
	OutputDir string `yaml:"output_dir,omitempty"`

	// ShowWarnings lists section warnings in this client's documents.
	ShowWarnings bool `yaml:"show_warnings,omitempty"`

	// CC lists extra formats written next to the main document
	// (for example a JSON copy for the client's job-management import).
	CC []string `yaml:"cc,omitempty"`
}

// Settings are the global settings in the config file.
type Settings struct {
	CompanyName   string `yaml:"company_name,omitempty"`
	FormVersion   string `yaml:"form_version,omitempty"`
	OutputFormat  string `yaml:"output_format,omitempty"`
	OutputDir     string `yaml:"output_dir,omitempty"`
	DBDir         string `yaml:"db_dir,omitempty"`
	BatchSize     int    `yaml:"batch_size,omitempty"`
	PreviewWidth  int    `yaml:"preview_width,omitempty"`
	RecordHistory bool   `yaml:"record_history,omitempty"`
	ShowWarnings  bool   `yaml:"show_warnings,omitempty"`
}

// File represents the structure of the .locatereport configuration file.
type File struct {
	// Settings are applied to Config by Config.ApplyFile.
	Settings Settings `yaml:"settings,omitempty"`

	// Clients maps client company names to their profiles.
	Clients map[string]ClientProfile `yaml:"clients,omitempty"`

	// Defaults is applied to every client unless overridden.
	Defaults ClientProfile `yaml:"defaults,omitempty"`
}

// GetClientProfile returns the profile for a client company.
// It merges the client-specific profile with defaults.
func (cf *File) GetClientProfile(clientCompany string) ClientProfile {
	result := cf.Defaults
	result.CC = append([]string(nil), cf.Defaults.CC...)

	if profile, ok := cf.Clients[clientCompany]; ok {
		if profile.OutputFormat != "" {
			result.OutputFormat = profile.OutputFormat
		}
		if profile.OutputDir != "" {
			result.OutputDir = profile.OutputDir
		}
		if profile.ShowWarnings {
			result.ShowWarnings = true
		}
		if len(profile.CC) > 0 {
			result.CC = append([]string(nil), profile.CC...)
		}
	}

	return result
}
