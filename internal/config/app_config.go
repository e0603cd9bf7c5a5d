package config

type AppConfig struct {
	User string `yaml:"user" env:"WEBSH_USER" env-default:"guest"`
	Host string `yaml:"host" env:"WEBSH_HOST" env-default:"websh"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"WEBSH_LOG_LEVEL" env-default:"info"`
	File   string `yaml:"file" env:"WEBSH_LOG_FILE" env-default:"websh.log"`
	Pretty bool   `yaml:"pretty" env:"WEBSH_LOG_PRETTY" env-default:"true"`
}
