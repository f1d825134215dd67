package search

import (
	"context"

	"FlowTube.com/config"
	"github.com/sirupsen/logrus"
)

// Init connects Default to Elasticsearch when elastic.addr is set. A connection
// failure is logged and search falls back to Filter.
func Init(ctx context.Context) {
	cfg := config.ConfigInfo.Elastic
	if cfg.Addr == "" {
		return
	}
	s, err := NewElasticSearcher(ctx, cfg.Addr, cfg.Index)
	if err != nil {
		logrus.Warnf("search disabled: %v", err)
		return
	}
	Default = s
}
