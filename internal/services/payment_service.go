package services

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tasteTribeBack/internal/models"
)

// PaymentService is the boundary to the payment provider. The core only
// needs two capabilities from it: a price lookup by package name and an
// intent whose client secret the frontend can confirm against the
// provider. The charge lifecycle itself lives with the provider.
type PaymentService struct {
	MerchantID string
	SecretKey  string
	Currency   string
	Packages   map[string]int64 // package name -> amount in minor units
}

// PriceOf fails with ErrInvalidPackage for unrecognized names.
func (s *PaymentService) PriceOf(packageName string) (int64, error) {
	amount, ok := s.Packages[strings.ToLower(strings.TrimSpace(packageName))]
	if !ok {
		return 0, models.ErrInvalidPackage
	}
	return amount, nil
}

// CreateIntent mints a provider-opaque client secret. The signature binds
// merchant, amount and intent id so the confirmation callback can be
// checked the same way the intent was issued.
func (s *PaymentService) CreateIntent(amount int64, packageName string) (models.PaymentIntentResponse, error) {
	intentID := uuid.NewString()
	sig := s.sign(amount, intentID)
	return models.PaymentIntentResponse{
		ClientSecret: fmt.Sprintf("pi_%s_secret_%s", intentID, sig),
		Amount:       amount,
		Currency:     s.Currency,
	}, nil
}

// VerifyIntentSecret validates a client secret previously issued by
// CreateIntent.
func (s *PaymentService) VerifyIntentSecret(clientSecret string, amount int64) bool {
	var intentID, sig string
	rest, ok := strings.CutPrefix(clientSecret, "pi_")
	if !ok {
		return false
	}
	intentID, sig, ok = strings.Cut(rest, "_secret_")
	if !ok {
		return false
	}
	return strings.EqualFold(sig, s.sign(amount, intentID))
}

func (s *PaymentService) sign(amount int64, intentID string) string {
	raw := fmt.Sprintf("%s:%d:%s:%s", s.MerchantID, amount, intentID, s.SecretKey)
	return fmt.Sprintf("%x", md5.Sum([]byte(raw)))
}
