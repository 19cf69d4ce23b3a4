package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Rorical/RoriChat/internal/chatconfig"
)

var (
	ErrNoProfiles      = errors.New("no profiles defined")
	ErrProfileNotFound = errors.New("profile does not exist")
	ErrProfileExists   = errors.New("profile already exists")
)

// DefaultProfile is created on first run and whenever the last profile is deleted.
const DefaultProfile = "default"

type Profile struct {
	APIKey  string                   `json:"api_key"`
	BaseURL string                   `json:"base_url,omitempty"`
	Chat    chatconfig.Configuration `json:"chat"`

	// Model is the pre-chat-settings location of the model name. It is
	// moved into Chat.Model on load and never written back.
	Model string `json:"model,omitempty"`
}

type Config struct {
	Profiles      map[string]Profile `json:"profiles"`
	ActiveProfile string             `json:"active_profile"`
	path          string
}

// LoadConfig reads the profiles file, creating it with a default profile
// when it does not exist yet. Token limits are clamped to the ceilings of
// each profile's model as resolved by models, which may be nil.
func LoadConfig(e Env, models chatconfig.ModelLookup) (*Config, error) {
	configPath := e.ConfigPath()

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.normalize(models); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// NewDefaultProfile returns an empty profile with default chat settings.
func NewDefaultProfile() Profile {
	return Profile{Chat: chatconfig.Default()}
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) IsValid() bool {
	p, ok := c.Profiles[c.ActiveProfile]
	return ok && p.APIKey != ""
}

// Current returns the active profile.
func (c *Config) Current() Profile {
	return c.Profiles[c.ActiveProfile]
}

func (c *Config) GetAPIKey() string {
	return c.Current().APIKey
}

func (c *Config) GetModel() string {
	if m := c.Current().Chat.Model; m != "" {
		return m
	}
	return chatconfig.Default().Model
}

func (c *Config) GetBaseURL() string {
	return c.Current().BaseURL
}

// ChatConfig returns the generation settings of the active profile.
func (c *Config) ChatConfig() chatconfig.Configuration {
	p, ok := c.Profiles[c.ActiveProfile]
	if !ok {
		return chatconfig.Default()
	}
	return p.Chat
}

// SetChatConfig validates cfg and stores it in the active profile. It does
// not write the file.
func (c *Config) SetChatConfig(cfg chatconfig.Configuration) error {
	p, ok := c.Profiles[c.ActiveProfile]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, c.ActiveProfile)
	}
	if err := chatconfig.Validate(cfg); err != nil {
		return err
	}
	p.Chat = cfg
	c.Profiles[c.ActiveProfile] = p
	return nil
}

// ProfileNames lists profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) AddProfile(name string, p Profile) error {
	if _, exists := c.Profiles[name]; exists {
		return fmt.Errorf("%w: %s", ErrProfileExists, name)
	}
	if p.Chat == (chatconfig.Configuration{}) {
		p.Chat = chatconfig.Default()
	}
	if err := chatconfig.Validate(p.Chat); err != nil {
		return fmt.Errorf("profile %s: %w", name, err)
	}
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	c.Profiles[name] = p
	return nil
}

// UseProfile makes name the active profile.
func (c *Config) UseProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	c.ActiveProfile = name
	return nil
}

// DeleteProfile removes name. Deleting the active profile activates another
// one; deleting the last profile recreates the default profile.
func (c *Config) DeleteProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	delete(c.Profiles, name)

	if len(c.Profiles) == 0 {
		c.Profiles[DefaultProfile] = NewDefaultProfile()
	}
	if c.ActiveProfile == name {
		c.ActiveProfile = c.ProfileNames()[0]
	}
	return nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0o755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	config.path = configPath

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: NewDefaultProfile(),
		},
		ActiveProfile: DefaultProfile,
		path:          configPath,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("failed to save config: no path")
	}
	return saveConfig(c, c.path)
}

// normalize migrates old profiles, clamps token limits to the model's
// ceilings and validates every profile's settings.
func (c *Config) normalize(models chatconfig.ModelLookup) error {
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}

	for name, p := range c.Profiles {
		if p.Chat == (chatconfig.Configuration{}) {
			p.Chat = chatconfig.Default()
		}
		if p.Model != "" {
			p.Chat.Model = p.Model
			p.Model = ""
		}
		p.Chat = chatconfig.NewSession(p.Chat, models).Draft()
		if err := chatconfig.Validate(p.Chat); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
		c.Profiles[name] = p
	}
	return nil
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}

	if _, exists := c.Profiles[c.ActiveProfile]; !exists {
		// fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
	}

	return nil
}
