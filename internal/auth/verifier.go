package auth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt"
	"google.golang.org/api/option"

	"tasteTribeBack/internal/models"
)

// Claims is what the rest of the system is allowed to know about the
// caller. Email is the only trusted identity signal for authorization.
type Claims struct {
	Email string
	Name  string
}

// TokenVerifier validates a raw bearer credential against the identity
// authority and extracts the verified claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// FirebaseVerifier checks ID tokens with the Firebase Admin SDK.
type FirebaseVerifier struct {
	Client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseVerifier{Client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return Claims{}, models.ErrUnauthenticated
	}
	decoded, err := v.Client.VerifyIDToken(ctx, token)
	if err != nil {
		return Claims{}, models.ErrUnauthenticated
	}
	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return Claims{}, models.ErrUnauthenticated
	}
	name, _ := decoded.Claims["name"].(string)
	return Claims{Email: strings.ToLower(email), Name: name}, nil
}

// JWTVerifier validates HS256 tokens signed with a shared key. Used by
// deployments without Firebase credentials and by the test suite.
type JWTVerifier struct {
	SigningKey string
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return Claims{}, models.ErrUnauthenticated
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.SigningKey), nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, models.ErrUnauthenticated
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, models.ErrUnauthenticated
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return Claims{}, models.ErrUnauthenticated
	}
	name, _ := claims["name"].(string)
	return Claims{Email: strings.ToLower(email), Name: name}, nil
}

// NewToken signs an HS256 token carrying the email claim. Only the JWT
// driver ever verifies these; Firebase tokens are issued by the provider.
func (v *JWTVerifier) NewToken(email, name string, expiresAt int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"name":  name,
		"exp":   expiresAt,
	})
	return token.SignedString([]byte(v.SigningKey))
}
