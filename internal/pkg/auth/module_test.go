package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ovenlight/bakeshop/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategyHMAC(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{SessionSecret: "top-secret", TokenStrategy: "hmac", SessionTTL: time.Hour}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategyJWT(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{SessionSecret: "top-secret", TokenStrategy: "jwt"}})
	if _, ok := strategy.(*JWTStrategy); !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
}
