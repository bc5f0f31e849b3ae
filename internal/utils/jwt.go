package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"os-blog-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	loginTokenType = "login"
	tokenIssuer    = "os-blog-server"
)

// TokenErrorKind 描述令牌解码失败的类别。
type TokenErrorKind string

const (
	TokenMalformed        TokenErrorKind = "malformed"
	TokenExpired          TokenErrorKind = "expired"
	TokenSignatureInvalid TokenErrorKind = "signature_invalid"
)

// DecodeError 令牌无法解码时返回，Kind 指明失败原因。
type DecodeError struct {
	Kind TokenErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "token " + string(e.Kind)
	}
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LoginClaims 只携带用户 ID（subject）和类型，角色与状态每次请求都从数据库读取。
type LoginClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec 负责会话令牌的签发与校验，无服务端会话存储。
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(cfg config.JWTConfig) *TokenCodec {
	hours := cfg.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return &TokenCodec{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(hours) * time.Hour,
	}
}

// TTL 返回令牌有效期。
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Encode 为指定用户签发 HS256 登录令牌。
func (c *TokenCodec) Encode(userID uint) (string, error) {
	now := time.Now()
	claims := LoginClaims{
		Type: loginTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode 校验令牌并返回其中的用户 ID；失败时返回 *DecodeError。
func (c *TokenCodec) Decode(tokenString string) (uint, error) {
	claims := &LoginClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, &DecodeError{Kind: TokenExpired, Err: err}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, &DecodeError{Kind: TokenSignatureInvalid, Err: err}
		default:
			return 0, &DecodeError{Kind: TokenMalformed, Err: err}
		}
	}

	if claims.Type != loginTokenType {
		return 0, &DecodeError{Kind: TokenMalformed, Err: errors.New("invalid token type")}
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, &DecodeError{Kind: TokenMalformed, Err: errors.New("invalid subject")}
	}
	return uint(id), nil
}

// AsDecodeError 从错误链中提取 *DecodeError。
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}
