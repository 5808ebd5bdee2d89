// Package config loads environment variables into typed configuration structs.
//
// Structs are described with caarlos0/env tags. A .env file in the working directory is
// loaded once via godotenv before the first parse; variables already present in the process
// environment win. Parsed values are cached per type and prefix, so repeated Load calls are
// cheap and return identical values.
//
//	type Storefront struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//		Lang string `env:"LANG" envDefault:"vi"`
//	}
//
//	var cfg Storefront
//	if err := config.Load(&cfg, config.WithPrefix("STOREFRONT_")); err != nil {
//		return err
//	}
package config
