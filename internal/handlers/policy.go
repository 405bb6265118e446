package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PolicyHandler struct {
	log           *logger.Logger
	policyService services.PolicyService
}

func NewPolicyHandler(log *logger.Logger, policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		log:           log.With("handler", "PolicyHandler"),
		policyService: policyService,
	}
}

func (h *PolicyHandler) Create(c *gin.Context) {
	var policy types.PlanningPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	policy.ID = uuid.Nil
	created, err := h.policyService.Create(c.Request.Context(), nil, &policy)
	if err != nil {
		h.log.Error("Create policy failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_policy_failed", err)
		return
	}
	RespondCreated(c, gin.H{"policy": created})
}

func (h *PolicyHandler) List(c *gin.Context) {
	policies, err := h.policyService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List policies failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_policies_failed", err)
		return
	}
	RespondOK(c, gin.H{"policies": policies})
}

func (h *PolicyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	policy, err := h.policyService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_policy_failed", err)
		return
	}
	if policy == nil {
		RespondError(c, http.StatusNotFound, "policy_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"policy": policy})
}

// GetByPair resolves the effective policy for one (sku, warehouse) pair.
func (h *PolicyHandler) GetByPair(c *gin.Context) {
	sku := c.Query("sku")
	warehouseCode := c.Query("warehouse_code")
	if sku == "" || warehouseCode == "" {
		RespondError(c, http.StatusBadRequest, "missing_pair", nil)
		return
	}
	policy, err := h.policyService.GetByPair(c.Request.Context(), nil, sku, warehouseCode)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_policy_failed", err)
		return
	}
	if policy == nil {
		RespondError(c, http.StatusNotFound, "policy_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"policy": policy})
}

func (h *PolicyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	existing, err := h.policyService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_policy_failed", err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "policy_not_found", nil)
		return
	}
	var policy types.PlanningPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	policy.ID = existing.ID
	policy.CreatedAt = existing.CreatedAt
	updated, err := h.policyService.Update(c.Request.Context(), nil, &policy)
	if err != nil {
		h.log.Error("Update policy failed", "id", id, "error", err)
		RespondError(c, http.StatusBadRequest, "update_policy_failed", err)
		return
	}
	RespondOK(c, gin.H{"policy": updated})
}

func (h *PolicyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.policyService.Delete(c.Request.Context(), nil, id); err != nil {
		h.log.Error("Delete policy failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_policy_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
