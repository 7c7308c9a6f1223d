package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/store"
)

func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Email      string            `json:"email"`
		Password   string            `json:"password"`
		FirstName  string            `json:"first_name"`
		LastName   string            `json:"last_name"`
		Role       schema.WorkerRole `json:"role"`
		Department string            `json:"department"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Email == "" || len(params.Password) < 8 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch params.Role {
	case schema.RoleNurse, schema.RoleDoctor, schema.RoleStudent:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	account, err := s.store.RegisterAccount(params.Email, params.Password,
		params.FirstName, params.LastName, params.Role, params.Department)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": account})
}

func (s *Server) accountDetail(c *gin.Context) {
	requester := c.GetString("requester")

	account, err := s.store.GetAccount(requester)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

func (s *Server) accountUpdate(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Department string `json:"department"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.UpdateAccountProfile(requester, params.FirstName, params.LastName, params.Department); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) accountDeactivate(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.DeactivateAccount(requester); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
