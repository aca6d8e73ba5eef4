package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/cbslab/serverbilling/internal/billing"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Pricing struct {
		StoragePerTB        float64 `mapstructure:"storage_per_tb"`
		FirstPowerUser      float64 `mapstructure:"first_power_user"`
		AdditionalPowerUser float64 `mapstructure:"additional_power_user"`
	} `mapstructure:"pricing"`
}

// Load reads the optional YAML config at path. An empty path means
// defaults only. Every key can be overridden through ENV (CBSBILL_*).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("app.env", "prod")
	v.SetDefault("pricing.storage_per_tb", billing.DefaultStoragePricePerTB)
	v.SetDefault("pricing.first_power_user", billing.DefaultFirstPowerUserPrice)
	v.SetDefault("pricing.additional_power_user", billing.DefaultAdditionalPowerUserPrice)

	v.SetEnvPrefix("CBSBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Rates converts the configured prices into the billing engine's form.
func (c Config) Rates() billing.Pricing {
	return billing.Pricing{
		StoragePricePerTB:        c.Pricing.StoragePerTB,
		FirstPowerUserPrice:      c.Pricing.FirstPowerUser,
		AdditionalPowerUserPrice: c.Pricing.AdditionalPowerUser,
	}
}
