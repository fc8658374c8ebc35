package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestUpsertCreatesUser() {
	user, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Guardian",
	})
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("discord-123", user.ExternalID)
	s.Equal("Guardian", user.DisplayName)
	s.False(user.CreatedAt.IsZero())

	retrieved, err := s.repo.GetUser(context.Background(), &GetUserInput{
		UserID: user.ID,
	})
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal("Guardian", retrieved.DisplayName)
}

func (s *RedisRepositoryTestSuite) TestUpsertRefreshesDisplayName() {
	first, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Guardian",
	})
	s.Require().NoError(err)

	second, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Renamed Guardian",
	})
	s.Require().NoError(err)

	// Same user record, refreshed name
	s.Equal(first.ID, second.ID)
	s.Equal("Renamed Guardian", second.DisplayName)

	retrieved, err := s.repo.GetUser(context.Background(), &GetUserInput{
		UserID: first.ID,
	})
	s.Require().NoError(err)
	s.Equal("Renamed Guardian", retrieved.DisplayName)
}

func (s *RedisRepositoryTestSuite) TestUpsertDistinctIdentities() {
	first, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Guardian One",
	})
	s.Require().NoError(err)

	second, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-456",
		DisplayName: "Guardian Two",
	})
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *RedisRepositoryTestSuite) TestGetUserNotFound() {
	_, err := s.repo.GetUser(context.Background(), &GetUserInput{
		UserID: "missing-user",
	})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpsertUpdatedAtAdvances() {
	first, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Guardian",
	})
	s.Require().NoError(err)

	time.Sleep(2 * time.Millisecond)

	second, err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{
		ExternalID:  "discord-123",
		DisplayName: "Guardian",
	})
	s.Require().NoError(err)

	s.True(second.UpdatedAt.After(first.UpdatedAt))
	s.True(second.CreatedAt.Equal(first.CreatedAt))
}
