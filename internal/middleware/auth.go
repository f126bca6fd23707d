package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

type Principal struct {
	UserID    string
	Role      string
	Anonymous bool
}

type principalKey struct{}

const anonymousHeader = "X-Anonymous-Token"

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Auth требует валидный Bearer токен
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := parseBearer(r, secret)
			if !ok {
				utils.WriteError(w, "UNAUTHORIZED", "missing or invalid token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
		})
	}
}

// AuthOptional пускает и анонимов: личность берется из токена, иначе из
// анонимного заголовка. Корзина до логина живет под анонимным токеном
func AuthOptional(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := parseBearer(r, secret); ok {
				next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
				return
			}
			if token := r.Header.Get(anonymousHeader); token != "" {
				p := Principal{UserID: "anon:" + token, Role: "buyer", Anonymous: true}
				next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
				return
			}
			utils.WriteError(w, "UNAUTHORIZED", "missing or invalid token", http.StatusUnauthorized)
		})
	}
}

// RequireRole пропускает только перечисленные роли
func RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "UNAUTHORIZED", "missing or invalid token", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteError(w, "FORBIDDEN", "insufficient permissions", http.StatusForbidden)
		})
	}
}

func withPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func parseBearer(r *http.Request, secret string) (Principal, bool) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return Principal{}, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Principal{}, false
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = "buyer"
	}
	return Principal{UserID: sub, Role: role}, true
}
