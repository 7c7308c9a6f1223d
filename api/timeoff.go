package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/store"
)

func (s *Server) requestTimeOff(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		StartDate string               `json:"start_date"`
		EndDate   string               `json:"end_date"`
		Reason    schema.TimeOffReason `json:"reason"`
		Notes     string               `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	start, err := time.Parse(shiftDateLayout, params.StartDate)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	end, err := time.Parse(shiftDateLayout, params.EndDate)
	if err != nil || end.Before(start) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch params.Reason {
	case schema.ReasonRestRecovery, schema.ReasonBurnoutRisk, schema.ReasonPersonal:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.store.RequestTimeOff(requester, start, end, params.Reason, params.Notes)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": request})
}

func (s *Server) listTimeOff(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.store.ListTimeOff(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// decideTimeOff approves or rejects a pending request. Admin only.
func (s *Server) decideTimeOff(c *gin.Context) {
	requestID := c.Param("requestID")

	var params struct {
		Status schema.TimeOffStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Status != schema.TimeOffApproved && params.Status != schema.TimeOffRejected {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.DecideTimeOff(requestID, params.Status); err != nil {
		if err == store.ErrTimeOffNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorTimeOffNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
