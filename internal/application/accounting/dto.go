package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gescom/backend/internal/domain/accounting"
)

// CreateAccountClassRequest creates an account class
type CreateAccountClassRequest struct {
	Code     string `json:"code" binding:"required,max=20"`
	Name     string `json:"name" binding:"required,max=200"`
	Nature   string `json:"nature" binding:"required,oneof=asset liability mixed charge product"`
	Document string `json:"document" binding:"required,oneof=balance income"`
}

// CreateAccountRequest creates an account under a class
type CreateAccountRequest struct {
	ClassID uuid.UUID `json:"class_id" binding:"required"`
	Number  string    `json:"number" binding:"required,max=20"`
	Name    string    `json:"name" binding:"required,max=200"`
}

// ConfigureRolesRequest maps semantic roles to accounts for a POS.
// POSID omitted targets the enterprise-level fallback configuration.
type ConfigureRolesRequest struct {
	POSID *uuid.UUID           `json:"pos_id"`
	Roles map[string]uuid.UUID `json:"roles" binding:"required"`
}

// AccountClassResponse is the API view of an account class
type AccountClassResponse struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Nature   string    `json:"nature"`
	Document string    `json:"document"`
}

// AccountResponse is the API view of an account
type AccountResponse struct {
	ID      uuid.UUID `json:"id"`
	ClassID uuid.UUID `json:"class_id"`
	Number  string    `json:"number"`
	Name    string    `json:"name"`
}

// ConfigResponse is the API view of an accounting configuration
type ConfigResponse struct {
	ID           uuid.UUID             `json:"id"`
	EnterpriseID uuid.UUID             `json:"enterprise_id"`
	POSID        *uuid.UUID            `json:"pos_id,omitempty"`
	Roles        map[string]*uuid.UUID `json:"roles"`
}

// JournalEntryResponse is the API view of one journal entry
type JournalEntryResponse struct {
	ID         uuid.UUID       `json:"id"`
	AccountID  uuid.UUID       `json:"account_id"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	OrderIndex int             `json:"order_index"`
	Label      string          `json:"label,omitempty"`
}

// JournalResponse is the API view of a journal with its entries
type JournalResponse struct {
	ID          uuid.UUID              `json:"id"`
	Type        string                 `json:"type"`
	Reference   string                 `json:"reference"`
	Label       string                 `json:"label,omitempty"`
	Date        time.Time              `json:"date"`
	Amount      decimal.Decimal        `json:"amount"`
	DebitTotal  decimal.Decimal        `json:"debit_total"`
	CreditTotal decimal.Decimal        `json:"credit_total"`
	Entries     []JournalEntryResponse `json:"entries,omitempty"`
}

// ToAccountClassResponse converts an AccountClass to its response DTO
func ToAccountClassResponse(class *accounting.AccountClass) AccountClassResponse {
	return AccountClassResponse{
		ID:       class.ID,
		Code:     class.Code,
		Name:     class.Name,
		Nature:   string(class.Nature),
		Document: string(class.Document),
	}
}

// ToAccountResponse converts an Account to its response DTO
func ToAccountResponse(account *accounting.Account) AccountResponse {
	return AccountResponse{
		ID:      account.ID,
		ClassID: account.ClassID,
		Number:  account.Number,
		Name:    account.Name,
	}
}

// ToConfigResponse converts an AccountingConfig to its response DTO
func ToConfigResponse(config *accounting.AccountingConfig) ConfigResponse {
	roles := make(map[string]*uuid.UUID)
	for role, accountID := range config.Roles() {
		roles[string(role)] = accountID
	}
	return ConfigResponse{
		ID:           config.ID,
		EnterpriseID: config.EnterpriseID,
		POSID:        config.POSID,
		Roles:        roles,
	}
}

// ToJournalResponse converts a Journal to its response DTO
func ToJournalResponse(journal *accounting.Journal) JournalResponse {
	entries := make([]JournalEntryResponse, 0, len(journal.Entries))
	for _, e := range journal.Entries {
		entries = append(entries, JournalEntryResponse{
			ID:         e.ID,
			AccountID:  e.AccountID,
			Debit:      e.Debit,
			Credit:     e.Credit,
			OrderIndex: e.OrderIndex,
			Label:      e.Label,
		})
	}
	return JournalResponse{
		ID:          journal.ID,
		Type:        string(journal.Type),
		Reference:   journal.Reference,
		Label:       journal.Label,
		Date:        journal.Date,
		Amount:      journal.Amount,
		DebitTotal:  journal.DebitTotal(),
		CreditTotal: journal.CreditTotal(),
		Entries:     entries,
	}
}
