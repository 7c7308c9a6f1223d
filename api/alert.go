package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safeshift-health/safeshift-api/store"
)

const defaultAlertLimit = 10

func (s *Server) listAlerts(c *gin.Context) {
	requester := c.GetString("requester")

	limit := defaultAlertLimit
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = parsed
	}

	alerts, err := s.mongoStore.ListActiveAlerts(requester, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (s *Server) alertSummary(c *gin.Context) {
	requester := c.GetString("requester")

	summary, err := s.mongoStore.AlertSummary(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// resolveAlert closes an open alert with a recorded action. Resolution
// is always an explicit actor decision; the pipeline never resolves
// alerts on its own.
func (s *Server) resolveAlert(c *gin.Context) {
	requester := c.GetString("requester")
	alertID := c.Param("alertID")

	var params struct {
		Action string `json:"action"`
		Note   string `json:"note"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.mongoStore.ResolveAlert(requester, alertID, params.Action, params.Note); err != nil {
		if err == store.ErrAlertNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAlertNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
