// Package config loads the persisted configuration of the tldr client.
//
// The configuration is a YAML file, by default <user config dir>/tldr/config.yaml:
//
//	cache:
//	  languages: [de, fr]
//	  auto_update: true
//	  max_age_hours: 168
//	display:
//	  color: auto
//	  quiet: false
//
// A missing file is not an error; Load returns Default() instead. Unknown keys
// and invalid values are rejected with ErrInvalidConfig.
//
// The configured languages feed language resolution:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//		return err
//	}
//	langs := cfg.Languages(nil) // [de fr en], or derived from LANG/LANGUAGE when unset
package config
