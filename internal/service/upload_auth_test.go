package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/service/imagekit"
)

type tokenStoreStub struct {
	keys []string
	ttls []time.Duration
	ok   bool
	err  error
}

func (s *tokenStoreStub) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	s.keys = append(s.keys, key)
	s.ttls = append(s.ttls, expiration)
	cmd := redis.NewBoolCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal(s.ok)
	}
	return cmd
}

func TestUploadAuthIssue(t *testing.T) {
	ik := imagekit.NewClient(config.ImageKitConfig{
		PublicKey:  "public_test_key",
		PrivateKey: "private_test_key",
	})

	t.Run("issues signed single-use params", func(t *testing.T) {
		store := &tokenStoreStub{ok: true}
		s := newUploadAuthService(ik, store, 10*time.Minute)

		before := time.Now().Add(10 * time.Minute).Unix()
		params, err := s.Issue(context.Background())
		require.NoError(t, err)

		_, err = uuid.Parse(params.Token)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, params.Expire, before)
		assert.Equal(t, ik.SignToken(params.Token, params.Expire), params.Signature)
		assert.Equal(t, "public_test_key", params.PublicKey)

		require.Len(t, store.keys, 1)
		assert.Equal(t, "upload-auth:"+params.Token, store.keys[0])
		assert.Equal(t, 10*time.Minute, store.ttls[0])
	})

	t.Run("token collision fails the issue", func(t *testing.T) {
		store := &tokenStoreStub{ok: false}
		s := newUploadAuthService(ik, store, 10*time.Minute)

		_, err := s.Issue(context.Background())
		require.Error(t, err)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := &tokenStoreStub{err: context.DeadlineExceeded}
		s := newUploadAuthService(ik, store, 10*time.Minute)

		_, err := s.Issue(context.Background())
		require.Error(t, err)
	})
}
