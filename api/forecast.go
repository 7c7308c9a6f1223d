package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultForecastDays = 14

// forecast projects the requester's risk trajectory. It runs on demand
// against the trailing 30-day window and is never tied to a write.
func (s *Server) forecast(c *gin.Context) {
	requester := c.GetString("requester")

	daysAhead := defaultForecastDays
	if d := c.Query("days_ahead"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 || parsed > 90 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		daysAhead = parsed
	}

	result, err := s.pipeline.Forecast(requester, daysAhead)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": result})
}
