package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vopial/kyc-backend/internal/service/imagekit"
)

// UploadAuthParams is the short-lived credential set a browser exchanges for
// a direct-to-CDN upload.
type UploadAuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

// tokenStore is the slice of the redis API the service needs; satisfied by
// redis.UniversalClient.
type tokenStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type uploadAuthService struct {
	imagekit *imagekit.Client
	store    tokenStore
	tokenTTL time.Duration
}

func newUploadAuthService(ik *imagekit.Client, store tokenStore, tokenTTL time.Duration) *uploadAuthService {
	return &uploadAuthService{
		imagekit: ik,
		store:    store,
		tokenTTL: tokenTTL,
	}
}

// Issue mints a single-use upload token and its signature. The token is
// recorded in redis for the credential's lifetime so a reissued token can
// never collide with a live one.
func (s *uploadAuthService) Issue(ctx context.Context) (*UploadAuthParams, error) {
	token := uuid.NewString()
	expire := time.Now().Add(s.tokenTTL).Unix()

	ok, err := s.store.SetNX(ctx, "upload-auth:"+token, 1, s.tokenTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("record upload token failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("upload token collision")
	}

	return &UploadAuthParams{
		Token:     token,
		Expire:    expire,
		Signature: s.imagekit.SignToken(token, expire),
		PublicKey: s.imagekit.PublicKey(),
	}, nil
}
