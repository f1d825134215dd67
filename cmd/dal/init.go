package dal

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/config"
	"FlowTube.com/pkg/store"
	"FlowTube.com/pkg/utils"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init init the record store selected by store.backend
func Init() {
	s, err := NewStore(context.Background())
	if err != nil {
		panic(err)
	}
	db.Init(s)
	if config.ConfigInfo.Store.Seed {
		if err := db.Seed(context.Background()); err != nil {
			logrus.Errorf("seed store: %v", err)
		}
	}
}

func NewStore(ctx context.Context) (store.Store, error) {
	switch config.ConfigInfo.Store.Backend {
	case "", "file":
		logrus.Infof("store: flat files under %s", config.ConfigInfo.Store.Dir)
		return store.NewFileStore(config.ConfigInfo.Store.Dir)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.ConfigInfo.Redis.Addr,
			Password: config.ConfigInfo.Redis.Password,
			DB:       config.ConfigInfo.Redis.DB,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			return nil, errors.Wrap(err, "Could not connect to redis")
		}
		logrus.Infof("Connected to redis : %s", pong)
		return store.NewRedisStore(rdb, config.ConfigInfo.Redis.Prefix), nil
	case "mysql":
		gdb, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()),
			&gorm.Config{
				PrepareStmt:            true,
				SkipDefaultTransaction: true,
			},
		)
		if err != nil {
			return nil, errors.Wrap(err, "open mysql")
		}
		return store.NewGormStore(gdb)
	}
	return nil, errors.Errorf("unknown store backend %q", config.ConfigInfo.Store.Backend)
}
