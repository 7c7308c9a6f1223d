package api

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/safeshift-health/safeshift-api/store"
)

// requestJWT generates a JWT for a worker account from an
// email/password pair
func (s *Server) requestJWT(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	account, err := s.store.AuthenticateAccount(req.Email, req.Password)
	if err != nil {
		if err == store.ErrInvalidCredentials {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	now := time.Now()
	exp := now.Add(time.Duration(viper.GetInt("jwt.expire")) * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   account.ID,
		IssuedAt:  now.Unix(),
		ExpiresAt: exp.Unix(),
		Issuer:    "safeshift-api",
	})

	tokenString, err := token.SignedString(s.jwtPrivateKey)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt_token":  tokenString,
		"expire_in":  exp.Unix() - now.Unix(),
		"worker_id":  account.ID,
		"first_name": account.FirstName,
	})
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &jwt.StandardClaims{}
		token, err := jwtrequest.ParseFromRequest(c.Request,
			jwtrequest.AuthorizationHeaderExtractor,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
				}

				return &s.jwtPrivateKey.PublicKey, nil
			},
			jwtrequest.WithClaims(claims),
		)

		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAuthorizationFormat, err)
			return
		}

		if !token.Valid {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
			return
		}

		c.Set("requester", claims.Subject)
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("API-KEY") != key {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAPIKey)
			return
		}
		c.Next()
	}
}
