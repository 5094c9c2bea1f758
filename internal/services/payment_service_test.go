package services

import (
	"errors"
	"strings"
	"testing"

	"tasteTribeBack/internal/models"
)

func newPaymentService() *PaymentService {
	return &PaymentService{
		MerchantID: "taste-tribe",
		SecretKey:  "test-secret",
		Currency:   "usd",
		Packages:   map[string]int64{"monthly": 999, "yearly": 9900},
	}
}

func TestPriceOf(t *testing.T) {
	svc := newPaymentService()

	t.Run("known package", func(t *testing.T) {
		amount, err := svc.PriceOf("yearly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != 9900 {
			t.Fatalf("expected 9900, got %d", amount)
		}
	})

	t.Run("name is case and space insensitive", func(t *testing.T) {
		if _, err := svc.PriceOf("  Monthly "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown package rejected", func(t *testing.T) {
		if _, err := svc.PriceOf("platinum"); !errors.Is(err, models.ErrInvalidPackage) {
			t.Fatalf("expected ErrInvalidPackage, got %v", err)
		}
	})
}

func TestCreateIntent(t *testing.T) {
	svc := newPaymentService()

	intent, err := svc.CreateIntent(999, "monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(intent.ClientSecret, "pi_") || !strings.Contains(intent.ClientSecret, "_secret_") {
		t.Fatalf("unexpected client secret shape: %s", intent.ClientSecret)
	}
	if intent.Amount != 999 || intent.Currency != "usd" {
		t.Fatalf("unexpected intent: %+v", intent)
	}

	t.Run("secret verifies for the issued amount only", func(t *testing.T) {
		if !svc.VerifyIntentSecret(intent.ClientSecret, 999) {
			t.Fatal("expected secret to verify")
		}
		if svc.VerifyIntentSecret(intent.ClientSecret, 9900) {
			t.Fatal("secret must not verify for a different amount")
		}
	})

	t.Run("tampered secret rejected", func(t *testing.T) {
		if svc.VerifyIntentSecret("pi_fake_secret_deadbeef", 999) {
			t.Fatal("tampered secret must not verify")
		}
		if svc.VerifyIntentSecret("not-a-secret", 999) {
			t.Fatal("malformed secret must not verify")
		}
	})

	t.Run("intents are unique", func(t *testing.T) {
		other, _ := svc.CreateIntent(999, "monthly")
		if other.ClientSecret == intent.ClientSecret {
			t.Fatal("expected distinct client secrets per intent")
		}
	})
}
