// Package config loads primer design settings, unmarshalled from
// Viper.  Every setting has a default, so a config file is optional;
// a YAML file given to Load overrides defaults field by field.
package config

import (
	"github.com/grailbio/base/errors"
	"github.com/mascpcr/masc/primercandidate"
	"github.com/mascpcr/masc/thermo"
	"github.com/spf13/viper"
)

// PrimerSettings are the candidate search parameters.
type PrimerSettings struct {
	// acceptable primer melting temperature bounds, Celsius
	TmMin float64 `mapstructure:"tm-min"`
	TmMax float64 `mapstructure:"tm-max"`

	// hairpin/homodimer Tm ceiling, Celsius
	SpuriousTmClip float64 `mapstructure:"spurious-tm-clip"`

	// primer length bounds, bases
	MinSize int `mapstructure:"min-size"`
	MaxSize int `mapstructure:"max-size"`

	// minimum designed mismatches in a discriminatory footprint
	MinNumMismatches int `mapstructure:"min-num-mismatches"`

	// skip thermodynamic rejection for discriminatory searches
	LenientMode bool `mapstructure:"lenient-mode"`

	// 3'-proximal mismatch weights, nearest first
	MismatchWeights []float64 `mapstructure:"mismatch-weights"`
}

// ThermoSettings are solution conditions for melting temperature
// prediction, as concentration strings ("50mM", "250nM").
type ThermoSettings struct {
	Na     string `mapstructure:"na"`
	Mg     string `mapstructure:"mg"`
	Primer string `mapstructure:"primer"`
}

// Config is the root settings struct.
type Config struct {
	Primer PrimerSettings `mapstructure:"primer"`
	Thermo ThermoSettings `mapstructure:"thermo"`
}

// Opts converts the primer settings into search options.
func (c Config) Opts() primercandidate.Opts {
	return primercandidate.Opts{
		TmMin:            c.Primer.TmMin,
		TmMax:            c.Primer.TmMax,
		SpuriousTmClip:   c.Primer.SpuriousTmClip,
		MinSize:          c.Primer.MinSize,
		MaxSize:          c.Primer.MaxSize,
		MinNumMismatches: c.Primer.MinNumMismatches,
		LenientMode:      c.Primer.LenientMode,
		MismatchWeights:  c.Primer.MismatchWeights,
	}
}

// Conditions converts the thermo settings into solution conditions.
func (c Config) Conditions() (thermo.Conditions, error) {
	na, err := thermo.ParseConc(c.Thermo.Na)
	if err != nil {
		return thermo.Conditions{}, errors.E(err, "parsing thermo.na")
	}
	mg, err := thermo.ParseConc(c.Thermo.Mg)
	if err != nil {
		return thermo.Conditions{}, errors.E(err, "parsing thermo.mg")
	}
	primer, err := thermo.ParseConc(c.Thermo.Primer)
	if err != nil {
		return thermo.Conditions{}, errors.E(err, "parsing thermo.primer")
	}
	return thermo.Conditions{NaM: na, MgM: mg, PrimerM: primer}, nil
}

func setDefaults(v *viper.Viper) {
	opts := primercandidate.DefaultOpts
	v.SetDefault("primer.tm-min", opts.TmMin)
	v.SetDefault("primer.tm-max", opts.TmMax)
	v.SetDefault("primer.spurious-tm-clip", opts.SpuriousTmClip)
	v.SetDefault("primer.min-size", opts.MinSize)
	v.SetDefault("primer.max-size", opts.MaxSize)
	v.SetDefault("primer.min-num-mismatches", opts.MinNumMismatches)
	v.SetDefault("primer.lenient-mode", opts.LenientMode)
	v.SetDefault("primer.mismatch-weights", opts.MismatchWeights)
	v.SetDefault("thermo.na", "50mM")
	v.SetDefault("thermo.mg", "1.5mM")
	v.SetDefault("thermo.primer", "250nM")
}

// Load returns a Config populated from the YAML file at path, or from
// defaults alone when path is empty.  The primer settings are
// validated before returning.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.E(err, "reading config", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.E(err, "decoding config")
	}
	opts := c.Opts()
	if err := opts.Validate(); err != nil {
		return Config{}, err
	}
	if _, err := c.Conditions(); err != nil {
		return Config{}, err
	}
	return c, nil
}
