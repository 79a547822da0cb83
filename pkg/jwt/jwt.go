package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad del usuario.
// RoleID viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	RoleID   int    `json:"role_id"` // 1 admin | 2 trabajador | 3 usuario
}

// Identity datos del usuario extraídos de un token válido.
type Identity struct {
	UserID   int64
	Username string
	RoleID   int
}

// Generate genera un token JWT firmado (HS256) con la identidad y el rol del usuario.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   id.UserID,
		Username: id.Username,
		RoleID:   id.RoleID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve la identidad.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	return claims.identity(), nil
}

// ParseUnverified decodifica el token SIN verificar la firma.
// Solo sirve para que el cliente decida qué comandos mostrar; no es un control de seguridad.
func ParseUnverified(tokenString string) (Identity, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return Identity{}, err
	}
	return claims.identity(), nil
}

func (c *Claims) identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username, RoleID: c.RoleID}
}
