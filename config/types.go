package config

import "time"

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Store    store    `yaml:"store" mapstructure:"store"`
	Upload   upload   `yaml:"upload" mapstructure:"upload"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Elastic  elastic  `yaml:"elastic" mapstructure:"elastic"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Limit    limit    `yaml:"ratelimit" mapstructure:"ratelimit"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

// store.backend is one of file, redis or mysql.
type store struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
	Seed    bool   `yaml:"seed"`
}

// upload.backend is one of local or minio.
type upload struct {
	Backend      string `yaml:"backend"`
	Dir          string `yaml:"dir"`
	PublicPrefix string `yaml:"public_prefix" mapstructure:"public_prefix"`
	Thumbnails   bool   `yaml:"thumbnails"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type elastic struct {
	Addr  string `yaml:"addr"`
	Index string `yaml:"index"`
}

type jwt struct {
	Secret  string        `yaml:"secret"`
	Timeout time.Duration `yaml:"timeout"`
}

type limit struct {
	Enabled     bool          `yaml:"enabled"`
	Window      time.Duration `yaml:"window"`
	MaxRequests int64         `yaml:"max_requests"`
}
