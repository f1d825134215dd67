package search

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"id":          {"type": "keyword"},
			"type":        {"type": "keyword"},
			"title":       {"type": "text"},
			"description": {"type": "text"},
			"caption":     {"type": "text"},
			"createdAt":   {"type": "date"}
		}
	}
}`

type ElasticSearcher struct {
	client *elastic.Client
	index  string
}

func NewElasticSearcher(ctx context.Context, addr, index string) (*ElasticSearcher, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(addr),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "elastic.NewClient failed")
	}
	s := &ElasticSearcher{client: client, index: index}
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ElasticSearcher) ensureIndex(ctx context.Context) error {
	exists, err := s.client.IndexExists(s.index).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "check index %s", s.index)
	}
	if exists {
		return nil
	}
	if _, err := s.client.CreateIndex(s.index).BodyString(indexMapping).Do(ctx); err != nil {
		return errors.Wrapf(err, "create index %s", s.index)
	}
	logrus.Infof("created search index %s", s.index)
	return nil
}

func (s *ElasticSearcher) Index(ctx context.Context, doc *Document) error {
	_, err := s.client.Index().Index(s.index).Id(doc.Id).BodyJson(doc).Do(ctx)
	return errors.Wrapf(err, "index %s", doc.Id)
}

func (s *ElasticSearcher) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete().Index(s.index).Id(id).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return errors.Wrapf(err, "delete %s", id)
}

func (s *ElasticSearcher) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	q := elastic.NewMultiMatchQuery(query, "title", "description", "caption").Type("phrase_prefix")
	res, err := s.client.Search().Index(s.index).Query(q).Size(limit).Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "search failed")
	}
	hits := make([]Hit, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			logrus.Warnf("skip search hit %s: %v", h.Id, err)
			continue
		}
		hits = append(hits, Hit{Id: doc.Id, Type: doc.Type})
	}
	return hits, nil
}
