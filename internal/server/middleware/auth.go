// Package middleware содержит HTTP middleware локального API.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ctxKey - тип ключа контекста, чтобы не пересекаться с другими пакетами.
type ctxKey string

// clientIDKey - ключ контекста с идентификатором клиента из токена.
const clientIDKey ctxKey = "client_id"

// JWTVerifier проверяет access-токены API:
//   - подпись HS256;
//   - issuer и audience;
//   - непустой subject.
type JWTVerifier struct {
	SigningKey string
	Issuer     string // пустой - не проверяется
	Audience   string // пустой - не проверяется
}

// NewJWTVerifier создаёт JWTVerifier.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// ClientIDFromContext достаёт идентификатор клиента, записанный AuthMiddleware.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(clientIDKey).(string)
	return v, ok
}

// ContextWithClientID кладёт идентификатор клиента в контекст.
func ContextWithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// AuthMiddleware пропускает запрос дальше только с валидным
// заголовком Authorization: Bearer <token>. Иначе 401 с JSON-ошибкой.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims := &jwt.RegisteredClaims{}
			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					unauthorized(w, "token expired")
					return
				}
				unauthorized(w, "invalid token")
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				unauthorized(w, "invalid token issuer")
				return
			}
			if v.Audience != "" && !hasAudience(claims.Audience, v.Audience) {
				unauthorized(w, "invalid token audience")
				return
			}

			clientID := strings.TrimSpace(claims.Subject)
			if clientID == "" {
				unauthorized(w, "invalid token subject")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClientID(r.Context(), clientID)))
		})
	}
}

// ExtractBearer извлекает токен из "Bearer <token>". Пустая строка - формат неверный.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func hasAudience(got jwt.ClaimStrings, want string) bool {
	for _, aud := range got {
		if aud == want {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
