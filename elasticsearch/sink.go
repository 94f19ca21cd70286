// Package elasticsearch implements a record sink backed by an Elasticsearch
// index.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fwojciec/storecrawl"
)

// DefaultIndex is the index name used when none is configured.
const DefaultIndex = "products"

// Mapping is the index mapping for product records. Name and description
// are analyzed for search; the remaining fields are exact-match only.
const Mapping = `{
	"mappings": {
		"properties": {
			"source_url": {"type": "keyword"},
			"name": {"type": "text"},
			"price": {"type": "float"},
			"description": {"type": "text"},
			"rating": {"type": "float"},
			"category": {"type": "keyword"},
			"availability": {"type": "keyword"},
			"image_url": {"type": "keyword"}
		}
	}
}`

// Ensure Sink implements storecrawl.RecordSink at compile time.
var _ storecrawl.RecordSink = (*Sink)(nil)

// Sink indexes product records into Elasticsearch. Each Store call drops
// and recreates the index, mirroring the replace-all snapshot semantics of
// the other sinks.
type Sink struct {
	es    *elasticsearch.Client
	index string
}

// Option configures a Sink.
type Option func(*Sink)

// WithIndex sets the index name. Defaults to DefaultIndex.
func WithIndex(name string) Option {
	return func(s *Sink) {
		s.index = name
	}
}

// NewSink creates a sink for the cluster at the given addresses.
func NewSink(addresses []string, opts ...Option) (*Sink, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	s := &Sink{es: es, index: DefaultIndex}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Store recreates the index and indexes records with position-based IDs.
func (s *Sink) Store(ctx context.Context, records []*storecrawl.ProductRecord) error {
	if err := s.recreateIndex(ctx); err != nil {
		return err
	}

	for i, rec := range records {
		body, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		res, err := s.es.Index(s.index, bytes.NewReader(body),
			s.es.Index.WithDocumentID(strconv.Itoa(i)),
			s.es.Index.WithContext(ctx),
		)
		if err != nil {
			return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "indexing record %d: %s", i, err)
		}
		if res.IsError() {
			res.Body.Close()
			return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "indexing record %d: %s", i, res.Status())
		}
		res.Body.Close()
	}

	return nil
}

// recreateIndex drops the index if it exists and creates it with Mapping.
func (s *Sink) recreateIndex(ctx context.Context) error {
	exists, err := s.es.Indices.Exists([]string{s.index},
		s.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "checking index: %s", err)
	}
	exists.Body.Close()

	if exists.StatusCode == 200 {
		del, err := s.es.Indices.Delete([]string{s.index},
			s.es.Indices.Delete.WithContext(ctx),
		)
		if err != nil {
			return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "deleting index: %s", err)
		}
		del.Body.Close()
		if del.IsError() {
			return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "deleting index: %s", del.Status())
		}
	}

	create, err := s.es.Indices.Create(s.index,
		s.es.Indices.Create.WithBody(bytes.NewReader([]byte(Mapping))),
		s.es.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "creating index: %s", err)
	}
	create.Body.Close()
	if create.IsError() {
		return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "creating index: %s", create.Status())
	}

	return nil
}
