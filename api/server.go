package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/safeshift-health/safeshift-api/external/insight"
	"github.com/safeshift-health/safeshift-api/logmodule"
	"github.com/safeshift-health/safeshift-api/pipeline"
	"github.com/safeshift-health/safeshift-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SafeShiftCore
	mongoStore store.MongoStore

	// Risk pipeline
	pipeline *pipeline.Pipeline

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// Optional text-generation collaborator
	insightClient insight.Insight
}

// NewServer new instance of server
func NewServer(
	safeshiftStore store.SafeShiftCore,
	mongoStore store.MongoStore,
	jwtKey *rsa.PrivateKey,
	insightClient insight.Insight) *Server {
	return &Server{
		store:         safeshiftStore,
		mongoStore:    mongoStore,
		pipeline:      pipeline.New(mongoStore, mongoStore, insightClient),
		jwtPrivateKey: jwtKey,
		insightClient: insightClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	// api routes below require a valid token
	apiRoute.Use(s.authMiddleware())

	accountRoute.Use(s.authMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
		accountRoute.DELETE("/me", s.accountDeactivate)
	}

	shiftRoute := apiRoute.Group("/shifts")
	{
		shiftRoute.POST("", s.createShift)
		shiftRoute.GET("", s.listShifts)
		shiftRoute.PATCH("/:shiftID", s.updateShift)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("", s.listAlerts)
		alertRoute.GET("/summary", s.alertSummary)
		alertRoute.PATCH("/:alertID", s.resolveAlert)
	}

	apiRoute.GET("/forecast", s.forecast)

	timeOffRoute := apiRoute.Group("/timeoff")
	{
		timeOffRoute.POST("", s.requestTimeOff)
		timeOffRoute.GET("", s.listTimeOff)
	}

	dashboardRoute := r.Group("/dashboard")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	dashboardRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		dashboardRoute.PATCH("/timeoff/:requestID", s.decideTimeOff)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"insight_available": s.insightClient != nil && s.insightClient.Available(),
			"system_version":    "SafeShift 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
