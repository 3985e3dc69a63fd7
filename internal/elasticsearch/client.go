package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"alertdesk-backend/config"

	"github.com/cenkalti/backoff"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"
)

func clientConfig(cfg *config.Config) elasticsearch.Config {
	transport := &http.Transport{
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: 10 * time.Second,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
	}
	return elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Transport: transport,
	}
}

// Connect builds a client and retries until the cluster answers Info().
func Connect(cfg *config.Config) (*elasticsearch.Client, error) {
	if len(cfg.Elasticsearch.Addresses) == 0 {
		return nil, errors.New("elasticsearch configuration missing")
	}
	esCfg := clientConfig(cfg)

	var client *elasticsearch.Client
	operation := func() error {
		c, err := elasticsearch.NewClient(esCfg)
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Error creating the Elasticsearch client")
			return err
		}
		res, err := c.Info(c.Info.WithContext(context.Background()))
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Elasticsearch Info() call")
			return err
		}
		defer res.Body.Close()
		if res.IsError() {
			err := fmt.Errorf("elasticsearch Info() returned error status: %s", res.Status())
			log.Warn().Err(err).Msg("Attempt failed: Elasticsearch ping returned error status")
			return err
		}
		client = c
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 2 * time.Second
	connectBackoff.MaxInterval = 15 * time.Second
	connectBackoff.MaxElapsedTime = 90 * time.Second

	log.Info().Strs("addresses", cfg.Elasticsearch.Addresses).Msg("Connecting to Elasticsearch with retries...")
	if err := backoff.Retry(operation, connectBackoff); err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	log.Info().Msg("Elasticsearch connection verified")
	return client, nil
}

func NewTypedClient(cfg *config.Config) (*elasticsearch.TypedClient, error) {
	client, err := elasticsearch.NewTypedClient(clientConfig(cfg))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create typed Elasticsearch client")
		return nil, err
	}
	return client, nil
}
