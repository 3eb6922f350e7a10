// api/middleware/actor_auth.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

// ActorClaims is carried by both client and employee tokens. Each realm signs
// with its own secret.
type ActorClaims struct {
	jwt.RegisteredClaims
	Kind       string `json:"kind,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// TokenResolver turns a bearer token into at most one actor.
type TokenResolver struct {
	clientSecret   []byte
	employeeSecret []byte
}

func NewTokenResolver(clientSecret, employeeSecret string) *TokenResolver {
	return &TokenResolver{
		clientSecret:   []byte(clientSecret),
		employeeSecret: []byte(employeeSecret),
	}
}

// ResolveClientActor fails with ErrUnauthenticated when the request carries
// no valid client token.
func (r *TokenResolver) ResolveClientActor(req *http.Request) (*model.ClientActor, error) {
	claims, err := r.parse(req, r.clientSecret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != "" && claims.Kind != model.ActorKindClient.String() {
		return nil, fmt.Errorf("%w: not a client token", shop_errors.ErrUnauthenticated)
	}
	return &model.ClientActor{ID: claims.Subject, Email: claims.Email}, nil
}

// ResolveEmployeeActor fails with ErrUnauthenticated when the request carries
// no valid employee token.
func (r *TokenResolver) ResolveEmployeeActor(req *http.Request) (*model.EmployeeActor, error) {
	claims, err := r.parse(req, r.employeeSecret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != "" && claims.Kind != model.ActorKindEmployee.String() {
		return nil, fmt.Errorf("%w: not an employee token", shop_errors.ErrUnauthenticated)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: employee token has no role", shop_errors.ErrUnauthenticated)
	}
	return &model.EmployeeActor{
		ID:         claims.Subject,
		Email:      claims.Email,
		Role:       claims.Role,
		Department: claims.Department,
	}, nil
}

// ResolveActor requires exactly one realm to accept the request.
func (r *TokenResolver) ResolveActor(req *http.Request) (model.Actor, error) {
	client, clientErr := r.ResolveClientActor(req)
	employee, employeeErr := r.ResolveEmployeeActor(req)

	switch {
	case clientErr == nil && employeeErr == nil:
		return nil, shop_errors.ErrAmbiguousActor
	case clientErr == nil:
		return client, nil
	case employeeErr == nil:
		return employee, nil
	default:
		return nil, errors.Join(clientErr, employeeErr)
	}
}

func (r *TokenResolver) parse(req *http.Request, secret []byte) (*ActorClaims, error) {
	header := req.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, fmt.Errorf("%w: missing bearer token", shop_errors.ErrUnauthenticated)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: realm disabled", shop_errors.ErrUnauthenticated)
	}

	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", shop_errors.ErrUnauthenticated)
	}
	return claims, nil
}

// IssueToken signs a token for actor with secret.
func IssueToken(actor model.Actor, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ActorID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: actor.Kind().String(),
	}
	switch a := actor.(type) {
	case *model.ClientActor:
		claims.Email = a.Email
	case *model.EmployeeActor:
		claims.Email = a.Email
		claims.Role = a.Role
		claims.Department = a.Department
	}

	signed, err := signClaims(claims, secret)
	if err != nil {
		return "", fmt.Errorf("sign actor token: %w", err)
	}
	return signed, nil
}

// ActorAuth resolves the requester and stores it on the context.
func ActorAuth(resolver *TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolver.ResolveActor(c.Request)
		if err != nil {
			logger.Warn("Actor resolution failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		util.SetActor(c, actor)
		logger.Debug("Actor resolved",
			zap.String("actorID", actor.ActorID()),
			zap.String("actorKind", actor.Kind().String()))
		c.Next()
	}
}

func signClaims(claims ActorClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
