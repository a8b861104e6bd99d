package config

type config struct {
	Server  server  `yaml:"server" mapstructure:"server"`
	Mysql   mysql   `yaml:"mysql" mapstructure:"mysql"`
	Sqlite  sqlite  `yaml:"sqlite" mapstructure:"sqlite"`
	Redis   redis   `yaml:"redis" mapstructure:"redis"`
	Jwt     jwtConf `yaml:"jwt" mapstructure:"jwt"`
	Ipfs    ipfs    `yaml:"ipfs" mapstructure:"ipfs"`
	Metrics metrics `yaml:"metrics" mapstructure:"metrics"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type sqlite struct {
	Path string `yaml:"path"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type jwtConf struct {
	Secret string `yaml:"secret"`
}

type ipfs struct {
	ServiceURL string `yaml:"service_url"`
}

type metrics struct {
	Addr string `yaml:"addr"`
}
