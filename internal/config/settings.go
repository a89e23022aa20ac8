package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto settings keys. Flags only override
// the other sources when they were set explicitly.
var flagKeys = map[string]string{
	FlagOutput:    KeyOutput,
	FlagReckoning: KeyReckoning,
	FlagArabic:    KeyArabic,
	FlagLang:      KeyLanguage,
	FlagDays:      KeyUpcomingDays,
	FlagMonths:    KeyMonthEvents,
	FlagSource:    KeySourceMode,
	FlagPath:      KeyLocalPath,
	FlagURL:       KeyWebURL,
	FlagUser:      KeyWebUser,
	FlagPort:      KeyPort,
}

// Settings is the user-facing configuration, merged from defaults, an optional
// YAML file, a .env file and GO_HIJRI_* environment variables (highest wins).
type Settings struct {
	SourceMode     string `mapstructure:"source_mode" yaml:"source_mode" validate:"omitempty,oneof=local web"`
	LocalPath      string `mapstructure:"local_path" yaml:"local_path" validate:"required_if=SourceMode local"`
	WebURL         string `mapstructure:"web_url" yaml:"web_url" validate:"required_if=SourceMode web"`
	WebUser        string `mapstructure:"web_user" yaml:"web_user"`
	WebPass        string `mapstructure:"web_pass" yaml:"-"`
	ReminderDays   int    `mapstructure:"reminder_days" yaml:"reminder_days" validate:"min=0,max=30"`
	Port           int    `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	RefreshMinutes int    `mapstructure:"refresh_minutes" yaml:"refresh_minutes" validate:"min=0"`
	Reckoning      string `mapstructure:"reckoning" yaml:"reckoning" validate:"oneof=civil astronomical"`
	Arabic         bool   `mapstructure:"arabic" yaml:"arabic"`
	MonthEvents    bool   `mapstructure:"month_events" yaml:"month_events"`
	Output         string `mapstructure:"output" yaml:"output" validate:"oneof=text json yaml"`
	UpcomingDays   int    `mapstructure:"upcoming_days" yaml:"upcoming_days" validate:"min=1,max=3660"`
	Language       string `mapstructure:"language" yaml:"language" validate:"required,bcp47_language_tag"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		ReminderDays:   0,
		Port:           DefaultPort,
		RefreshMinutes: DefaultRefreshMin,
		Reckoning:      DefaultReckoning,
		MonthEvents:    true,
		Output:         DefaultOutput,
		UpcomingDays:   DefaultUpcomingDays,
		Language:       DefaultLanguage,
	}
}

// Load reads the settings. An explicit path must exist; otherwise the file is
// looked up in the user config directory and may be absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	// The .env file is optional.
	_ = godotenv.Load(DotEnvFile)

	v := newViper()
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrConfigRead, err)
		}
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, BinaryName))
		}
		v.SetConfigName(ConfigFileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%s: %w", ErrConfigRead, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigDecode, err)
	}
	s.Reckoning = strings.ToLower(strings.TrimSpace(s.Reckoning))
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))

	if err := s.Validate(); err != nil {
		return nil, err
	}

	slog.Debug(MsgSettings,
		LogKeyFile, v.ConfigFileUsed(),
		LogKeyMode, s.SourceMode,
		LogKeyReckoning, s.Reckoning,
		LogKeyComponent, CompSettings)

	return &s, nil
}

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%s: %w", ErrConfigInvalid, err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%s: %w", ErrConfigDecode, err)
		}
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(ConfigFileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeySourceMode, d.SourceMode)
	v.SetDefault(KeyLocalPath, d.LocalPath)
	v.SetDefault(KeyWebURL, d.WebURL)
	v.SetDefault(KeyWebUser, d.WebUser)
	v.SetDefault(KeyWebPass, d.WebPass)
	v.SetDefault(KeyReminderDays, d.ReminderDays)
	v.SetDefault(KeyPort, d.Port)
	v.SetDefault(KeyRefreshMinutes, d.RefreshMinutes)
	v.SetDefault(KeyReckoning, d.Reckoning)
	v.SetDefault(KeyArabic, d.Arabic)
	v.SetDefault(KeyMonthEvents, d.MonthEvents)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyUpcomingDays, d.UpcomingDays)
	v.SetDefault(KeyLanguage, d.Language)
	return v
}
