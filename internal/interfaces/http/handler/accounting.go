package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appaccounting "github.com/gescom/backend/internal/application/accounting"
	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// AccountingHandler exposes the chart of accounts, role configuration
// and journal queries
type AccountingHandler struct {
	BaseHandler
	coa      *appaccounting.ChartOfAccountsService
	journals *appaccounting.JournalQueryService
}

// NewAccountingHandler creates a new AccountingHandler
func NewAccountingHandler(coa *appaccounting.ChartOfAccountsService, journals *appaccounting.JournalQueryService) *AccountingHandler {
	return &AccountingHandler{coa: coa, journals: journals}
}

// CreateAccountClass handles POST /accounting/classes
func (h *AccountingHandler) CreateAccountClass(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req appaccounting.CreateAccountClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	class, err := h.coa.CreateAccountClass(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appaccounting.ToAccountClassResponse(class))
}

// ListAccountClasses handles GET /accounting/classes
func (h *AccountingHandler) ListAccountClasses(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()

	classes, err := h.coa.ListAccountClasses(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]appaccounting.AccountClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, appaccounting.ToAccountClassResponse(&classes[i]))
	}
	h.List(c, responses, filter, len(responses))
}

// CreateAccount handles POST /accounting/accounts
func (h *AccountingHandler) CreateAccount(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req appaccounting.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	account, err := h.coa.CreateAccount(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appaccounting.ToAccountResponse(account))
}

// ListAccounts handles GET /accounting/accounts
func (h *AccountingHandler) ListAccounts(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()

	accounts, err := h.coa.ListAccounts(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]appaccounting.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, appaccounting.ToAccountResponse(&accounts[i]))
	}
	h.List(c, responses, filter, len(responses))
}

// ConfigureRoles handles PUT /accounting/config
func (h *AccountingHandler) ConfigureRoles(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req appaccounting.ConfigureRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	roles := make(map[accounting.ConfigRole]uuid.UUID, len(req.Roles))
	for role, accountID := range req.Roles {
		roles[accounting.ConfigRole(role)] = accountID
	}

	config, err := h.coa.ConfigureRoles(c.Request.Context(), enterpriseID, req.POSID, roles)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appaccounting.ToConfigResponse(config))
}

// GetConfig handles GET /accounting/config, resolving the effective
// configuration for the pos_id query parameter
func (h *AccountingHandler) GetConfig(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	posID, err := uuid.Parse(c.Query("pos_id"))
	if err != nil {
		h.BadRequest(c, "Invalid POS ID")
		return
	}

	config, err := h.coa.ResolveConfig(c.Request.Context(), enterpriseID, posID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appaccounting.ToConfigResponse(config))
}

// GetJournal handles GET /accounting/journals/:id
func (h *AccountingHandler) GetJournal(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	journalID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid journal ID")
		return
	}

	journal, err := h.journals.GetByID(c.Request.Context(), enterpriseID, journalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, journal)
}

// ListJournals handles GET /accounting/journals with optional type and
// reference query filters
func (h *AccountingHandler) ListJournals(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	journalType := c.Query("type")
	reference := c.Query("reference")
	if journalType != "" && reference != "" {
		journal, err := h.journals.GetByReference(c.Request.Context(), enterpriseID,
			accounting.JournalType(journalType), reference)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, journal)
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()
	if journalType != "" {
		filter.Filters["type"] = journalType
	}
	if reference != "" {
		filter.Filters["reference"] = reference
	}

	journals, err := h.journals.List(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, journals, filter, len(journals))
}
