package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	AppName  string `env:"APP_NAME" env-default:"veterinaria-backend"`
	HTTPAddr string `env:"HTTP_ADDR" env-default:":8080"`

	// Si DB_DSN viene vacío, el router usa los repos in-memory (modo dev).
	DBDSN string `env:"DB_DSN" env-default:""`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
