package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"FlowTube.com/pkg/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

var defaultConfigPaths = []string{
	"../../config",
	"./config",
	"../config",
	".",
}

// Init reads config.yml from the usual locations. A missing file is not fatal: the
// defaults below describe a self-contained file-backed deployment.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)
	Load(defaultConfigPaths...)
}

func Load(paths ...string) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")
	v.SetEnvPrefix("FLOWTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, path := range paths {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = v.GetStringSlice("server.allow_origins")

	ConfigInfo.Store.Backend = strings.ToLower(v.GetString("store.backend"))
	ConfigInfo.Store.Dir = v.GetString("store.dir")
	ConfigInfo.Store.Seed = v.GetBool("store.seed")

	ConfigInfo.Upload.Backend = strings.ToLower(v.GetString("upload.backend"))
	ConfigInfo.Upload.Dir = v.GetString("upload.dir")
	ConfigInfo.Upload.PublicPrefix = strings.TrimRight(v.GetString("upload.public_prefix"), "/")
	ConfigInfo.Upload.Thumbnails = v.GetBool("upload.thumbnails")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")
	ConfigInfo.Redis.Prefix = v.GetString("redis.prefix")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Bucket = v.GetString("minio.bucket")
	ConfigInfo.Minio.PublicURL = v.GetString("minio.public_url")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Elastic.Addr = v.GetString("elastic.addr")
	ConfigInfo.Elastic.Index = v.GetString("elastic.index")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = v.GetDuration("jwt.timeout")

	ConfigInfo.Limit.Enabled = v.GetBool("ratelimit.enabled")
	ConfigInfo.Limit.Window = v.GetDuration("ratelimit.window")
	ConfigInfo.Limit.MaxRequests = v.GetInt64("ratelimit.max_requests")

	logrus.Infof("Config loaded - store backend: %s, upload backend: %s",
		ConfigInfo.Store.Backend, ConfigInfo.Upload.Backend)
	if ConfigInfo.Store.Backend == "mysql" {
		logrus.Infof("MySQL: %s:%s@%s/%s",
			ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	}
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt.secret configured, tokens will not survive a restart")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8888")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.dir", constants.DefaultStoreDir)
	v.SetDefault("upload.backend", "local")
	v.SetDefault("upload.dir", constants.DefaultUploadDir)
	v.SetDefault("upload.public_prefix", constants.DefaultPublicPrefix)
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("redis.prefix", constants.DefaultRedisPrefix)
	v.SetDefault("minio.bucket", constants.DefaultMinioBucket)
	v.SetDefault("elastic.index", constants.DefaultSearchIndex)
	v.SetDefault("jwt.timeout", 24*time.Hour)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("ratelimit.max_requests", 10)
}
