package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Registries RegistriesConfig `yaml:"registries"`
	Harvest    HarvestConfig    `yaml:"harvest"`
}

type ServiceConfig struct {
	Port string `yaml:"port"`
}

type CatalogConfig struct {
	URL      string        `yaml:"url"`
	APIToken string        `yaml:"api_token"`
	Timeout  time.Duration `yaml:"timeout"`
}

type RegistriesConfig struct {
	Zenodo      ZenodoConfig      `yaml:"zenodo"`
	DataCite    DataCiteConfig    `yaml:"datacite"`
	OBIS        OBISConfig        `yaml:"obis"`
	OceanExpert OceanExpertConfig `yaml:"oceanexpert"`
}

type ZenodoConfig struct {
	APIURL     string        `yaml:"api_url"`
	LandingURL string        `yaml:"landing_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

type DataCiteConfig struct {
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Fallback bool          `yaml:"fallback"`
}

type OBISConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type OceanExpertConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
	Delay   time.Duration `yaml:"delay"`
}

type HarvestConfig struct {
	DefaultOrg    string `yaml:"default_org"`
	WhitelistPath string `yaml:"whitelist_path"`
	JournalPath   string `yaml:"journal_path"`
	ResumeEvery   int    `yaml:"resume_every"`
}

func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Port: "8880",
		},
		Catalog: CatalogConfig{
			URL:     "http://localhost:5000",
			Timeout: 30 * time.Second,
		},
		Registries: RegistriesConfig{
			Zenodo: ZenodoConfig{
				APIURL:     "https://zenodo.org/api",
				LandingURL: "https://zenodo.org/records",
				Timeout:    30 * time.Second,
			},
			DataCite: DataCiteConfig{
				APIURL:  "https://api.datacite.org",
				Timeout: 30 * time.Second,
			},
			OBIS: OBISConfig{
				APIURL:  "https://api.obis.org/v3",
				Timeout: 60 * time.Second,
			},
			OceanExpert: OceanExpertConfig{
				APIURL:  "https://oceanexpert.org/api/v1",
				Timeout: 10 * time.Second,
				Delay:   1 * time.Second,
			},
		},
		Harvest: HarvestConfig{
			DefaultOrg:    "obis-community",
			WhitelistPath: "doi_whitelist.txt",
			JournalPath:   "harvest_journal.db",
			ResumeEvery:   10,
		},
	}
}

// Load starts from the defaults, applies the YAML file at path (if any) after
// expanding environment variables in it, and finally applies environment
// variable overrides.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		expanded := os.ExpandEnv(string(b))
		if err = yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(ctx); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *Config) applyEnvironment(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	cfg.Service.Port = env.GetVariableOrDefault(log, "SERVICE_PORT", cfg.Service.Port)

	cfg.Catalog.URL = env.GetVariableOrDefault(log, "CKAN_URL", cfg.Catalog.URL)
	cfg.Catalog.APIToken = env.GetVariableOrDefault(log, "CKAN_API_TOKEN", cfg.Catalog.APIToken)

	cfg.Registries.Zenodo.APIURL = env.GetVariableOrDefault(log, "ZENODO_API_URL", cfg.Registries.Zenodo.APIURL)
	cfg.Registries.Zenodo.LandingURL = env.GetVariableOrDefault(log, "ZENODO_LANDING_URL", cfg.Registries.Zenodo.LandingURL)
	cfg.Registries.DataCite.APIURL = env.GetVariableOrDefault(log, "DATACITE_API_URL", cfg.Registries.DataCite.APIURL)
	cfg.Registries.OBIS.APIURL = env.GetVariableOrDefault(log, "OBIS_API_URL", cfg.Registries.OBIS.APIURL)
	cfg.Registries.OceanExpert.APIURL = env.GetVariableOrDefault(log, "OCEANEXPERT_API_URL", cfg.Registries.OceanExpert.APIURL)

	fallback := env.GetVariableOrDefault(log, "DATACITE_FALLBACK", strconv.FormatBool(cfg.Registries.DataCite.Fallback))
	cfg.Registries.DataCite.Fallback = (fallback == "true")

	timeout := env.GetVariableOrDefault(log, "REGISTRY_TIMEOUT", "")
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid REGISTRY_TIMEOUT %q: %w", timeout, err)
		}
		cfg.Registries.Zenodo.Timeout = d
		cfg.Registries.DataCite.Timeout = d
	}

	cfg.Harvest.DefaultOrg = env.GetVariableOrDefault(log, "HARVEST_DEFAULT_ORG", cfg.Harvest.DefaultOrg)
	cfg.Harvest.WhitelistPath = env.GetVariableOrDefault(log, "DOI_WHITELIST_PATH", cfg.Harvest.WhitelistPath)
	cfg.Harvest.JournalPath = env.GetVariableOrDefault(log, "HARVEST_JOURNAL_PATH", cfg.Harvest.JournalPath)

	return nil
}

func (cfg *Config) validate() error {
	if cfg.Catalog.URL == "" {
		return fmt.Errorf("no catalog url configured")
	}
	if cfg.Registries.Zenodo.APIURL == "" {
		return fmt.Errorf("no zenodo api url configured")
	}
	if cfg.Harvest.ResumeEvery <= 0 {
		cfg.Harvest.ResumeEvery = 10
	}
	return nil
}
