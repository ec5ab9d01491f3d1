// Package redis serves the reference catalog and the record store from Redis.
//
// Key layout, under a configurable prefix (default "logframe:"):
//
//	ecosystem:<theme>                          JSON EcosystemPattern
//	toc:<theme>                                JSON PathwayPattern
//	state:<state>                              JSON []Challenge
//	district:<state>:<district>                JSON []string
//	indicators:<type>:<theme>:<stakeholder>    JSON []string
//	methodologies:<theme>                      JSON []Methodology
//	stakeholders                               JSON []Stakeholder
//	practices:<stakeholder>:<theme>            JSON PracticeTemplate
//	competencies:<theme>:<grade range>         JSON []string
//	policies                                   JSON []string
//	records:<organization>                     list of JSON Record
//	records:index                              ZSET of organizations by expiry
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/logframe/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "logframe:"
	// farFuture scores index entries that never expire (2100-01-01).
	farFuture = 4102444800
)

// Store implements ports.ReferenceCatalog and ports.RecordStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of recorded evaluations.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) ecosystemKey(theme string) string { return s.prefix + "ecosystem:" + theme }
func (s *Store) pathwayKey(theme string) string   { return s.prefix + "toc:" + theme }
func (s *Store) stateKey(state string) string     { return s.prefix + "state:" + domain.RegionKey(state) }

func (s *Store) districtKey(state, district string) string {
	return s.prefix + "district:" + domain.RegionKey(state) + ":" + domain.RegionKey(district)
}

func (s *Store) indicatorKey(k domain.IndicatorKey) string {
	return fmt.Sprintf("%sindicators:%s:%s:%s", s.prefix, k.Scope, k.Theme, k.StakeholderID)
}

func (s *Store) methodologiesKey(theme string) string { return s.prefix + "methodologies:" + theme }
func (s *Store) stakeholdersKey() string              { return s.prefix + "stakeholders" }
func (s *Store) policiesKey() string                  { return s.prefix + "policies" }

func (s *Store) practiceKey(stakeholderID, theme string) string {
	return s.prefix + "practices:" + stakeholderID + ":" + theme
}

func (s *Store) competenciesKey(theme, gradeRange string) string {
	return s.prefix + "competencies:" + theme + ":" + gradeRange
}

func (s *Store) recordsKey(organizationID string) string {
	return s.prefix + "records:" + organizationID
}
func (s *Store) indexKey() string { return s.prefix + "records:index" }

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
