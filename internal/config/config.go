package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
}

// StorageConfig locates the three record files.
// File names are resolved relative to DataDir.
type StorageConfig struct {
	DataDir         string `mapstructure:"data_dir" validate:"required"`
	StudentsFile    string `mapstructure:"students_file" validate:"required,excludesall=/\\"`
	CoursesFile     string `mapstructure:"courses_file" validate:"required,excludesall=/\\"`
	EnrollmentsFile string `mapstructure:"enrollments_file" validate:"required,excludesall=/\\"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	// File receives log output when set; stderr is used otherwise.
	File string `mapstructure:"file"`
	// RedactEmails masks student email addresses in the audit log.
	RedactEmails bool `mapstructure:"redact_emails"`
}
