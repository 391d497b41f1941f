package repository_test

import "hotel/config"

func configWithDriver(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = driver

	return cfg
}
