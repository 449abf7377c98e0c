package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
)

type StakeholderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var requiredTextSchema = z.String().Required().Match(nonBlank)

func (rs *RestfulServer) AddStakeholder(c *gin.Context) {
	var req StakeholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.writeError(c, bindError(err))
		return
	}
	if issues := requiredTextSchema.Validate(&req.Name); len(issues) > 0 {
		rs.writeError(c, errs.Validation("name", "must not be blank"))
		return
	}
	if issues := requiredTextSchema.Validate(&req.Email); len(issues) > 0 {
		rs.writeError(c, errs.Validation("email", "must not be blank"))
		return
	}

	stakeholder, err := rs.Inventory.Stakeholder.Add(req.Name, req.Email)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stakeholder)
}

// UpdateStakeholderRequest leaves a field untouched when it is omitted.
type UpdateStakeholderRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (rs *RestfulServer) UpdateStakeholder(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	var req UpdateStakeholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.writeError(c, bindError(err))
		return
	}

	stakeholder, err := rs.Inventory.Stakeholder.Update(id, req.Name, req.Email)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stakeholder)
}

func (rs *RestfulServer) DeleteStakeholder(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	removed, err := rs.Inventory.Stakeholder.Delete(id)
	if err != nil {
		rs.writeError(c, err)
		return
	}
	if !removed {
		rs.writeError(c, errs.NotFound("stakeholder", id))
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) ListStakeholders(c *gin.Context) {
	stakeholders, err := rs.Inventory.Stakeholder.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stakeholders)
}
