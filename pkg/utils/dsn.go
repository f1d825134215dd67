package utils

import (
	"strings"

	"FlowTube.com/config"
)

func GetMysqlDsn() string {
	m := config.ConfigInfo.Mysql
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return strings.Join([]string{m.Username, ":", m.Password, "@tcp(", m.Addr, ")/",
		m.Database, "?charset=" + charset + "&parseTime=True&loc=Local"}, "")
}

func GetRabbitMqUrl() string {
	r := config.ConfigInfo.RabbitMq
	if r.Addr == "" {
		return ""
	}
	if strings.HasPrefix(r.Addr, "amqp://") || strings.HasPrefix(r.Addr, "amqps://") {
		return r.Addr
	}
	return "amqp://" + r.Username + ":" + r.Password + "@" + r.Addr + "/"
}
