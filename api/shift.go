package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/store"
)

const shiftDateLayout = "2006-01-02"

type shiftParams struct {
	ShiftDate     *string           `json:"shift_date"`
	HoursSlept    *float64          `json:"hours_slept"`
	ShiftType     *schema.ShiftType `json:"shift_type"`
	ShiftHours    *int              `json:"shift_hours"`
	PatientsCount *int              `json:"patients_count"`
	StressLevel   *int              `json:"stress_level"`
	Note          *string           `json:"note"`
}

// apply overlays the provided fields onto an attribute set and reports
// the merged result.
func (p shiftParams) apply(attrs schema.ShiftAttributes) (schema.ShiftAttributes, error) {
	if p.ShiftDate != nil {
		d, err := time.Parse(shiftDateLayout, *p.ShiftDate)
		if err != nil {
			return attrs, err
		}
		attrs.ShiftDate = d
	}
	if p.HoursSlept != nil {
		attrs.HoursSlept = *p.HoursSlept
	}
	if p.ShiftType != nil {
		attrs.ShiftType = *p.ShiftType
	}
	if p.ShiftHours != nil {
		attrs.ShiftHours = *p.ShiftHours
	}
	if p.PatientsCount != nil {
		attrs.PatientsCount = *p.PatientsCount
	}
	if p.StressLevel != nil {
		attrs.StressLevel = *p.StressLevel
	}
	if p.Note != nil {
		attrs.Note = *p.Note
	}
	return attrs, nil
}

// createShift logs a shift: validate, score, attach insight texts,
// persist, then re-scan the worker's recent window. The scan runs after
// the write so it observes the record it was triggered by.
func (s *Server) createShift(c *gin.Context) {
	requester := c.GetString("requester")

	var params shiftParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	attrs, err := params.apply(schema.ShiftAttributes{})
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	index, zone, err := s.pipeline.ScoreShift(attrs)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	explanation, tips := s.pipeline.ShiftTexts(c.Request.Context(), attrs, index, zone)

	shift := schema.Shift{
		WorkerID:    requester,
		Attributes:  attrs,
		Index:       index,
		Zone:        zone,
		Explanation: explanation,
		Tips:        tips,
	}

	if err := s.mongoStore.CreateShift(&shift); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	alerts, err := s.pipeline.ScanPatterns(c.Request.Context(), requester)
	if err != nil {
		// the shift is saved; a failed scan must still reach the caller
		// so the finding is not silently lost
		abortWithEncoding(c, http.StatusInternalServerError, errorPatternScan, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": shift,
		"alerts": alerts,
	})
}

// updateShift edits a logged shift. Index and zone are recomputed only
// when a scoring-relevant field changed; a note-only edit keeps them.
func (s *Server) updateShift(c *gin.Context) {
	requester := c.GetString("requester")
	shiftID := c.Param("shiftID")

	var params shiftParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	shift, err := s.mongoStore.GetShift(requester, shiftID)
	if err != nil {
		if err == store.ErrShiftNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorShiftNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	attrs, err := params.apply(shift.Attributes)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rescore := !attrs.ScoringEqual(shift.Attributes)
	shift.Attributes = attrs

	if rescore {
		index, zone, err := s.pipeline.ScoreShift(attrs)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		shift.Index = index
		shift.Zone = zone
		shift.Explanation, shift.Tips = s.pipeline.ShiftTexts(c.Request.Context(), attrs, index, zone)
	}

	if err := s.mongoStore.UpdateShift(shift); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	var alerts []schema.Alert
	if rescore {
		if alerts, err = s.pipeline.ScanPatterns(c.Request.Context(), requester); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorPatternScan, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": shift,
		"alerts": alerts,
	})
}

func (s *Server) listShifts(c *gin.Context) {
	requester := c.GetString("requester")

	days := schema.PatternWindowDays
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		days = parsed
	}

	shifts, err := s.mongoStore.GetRecentShifts(requester, days)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorShiftHistory, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}
