//go:build integration

package person_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"parcours/internal/adapters/person"
	"parcours/internal/ports"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis     *containers.RedisContainer
	directory *person.InMemoryDirectory
	cache     *person.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.directory = person.NewInMemoryDirectory(ports.Person{Matricule: "0123456", FirstName: "Ada", LastName: "Lovelace", Language: "en"})
	s.cache = person.NewRedisCache(s.directory, s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) TestReadThrough() {
	ctx := context.Background()
	found, err := s.cache.Get(ctx, "0123456")
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", found.FullName())

	s.directory.Put(ports.Person{Matricule: "0123456", FirstName: "Changed"})
	cached, err := s.cache.Get(ctx, "0123456")
	s.Require().NoError(err)
	s.Equal("Ada", cached.FirstName, "served from cache")

	s.Require().NoError(s.cache.Invalidate(ctx, "0123456"))
	fresh, err := s.cache.Get(ctx, "0123456")
	s.Require().NoError(err)
	s.Equal("Changed", fresh.FirstName)
}

func (s *RedisCacheSuite) TestUnknownIsNotCached() {
	_, err := s.cache.Get(context.Background(), "9999999")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
