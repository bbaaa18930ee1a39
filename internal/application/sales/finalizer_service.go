package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appaccounting "github.com/gescom/backend/internal/application/accounting"
	appinventory "github.com/gescom/backend/internal/application/inventory"
	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/sales"
	"github.com/gescom/backend/internal/domain/shared"
)

// FinalizerService turns an open cart into a validated sale: balanced
// sale, stock and optional payment journals plus the outbound stock
// movements, all inside one transaction. The cart reference is the
// idempotence key; retries of a finalized cart are reported as already
// finalized instead of double-posting.
type FinalizerService struct {
	scope    TransactionScope
	resolver *appinventory.WarehouseResolver
	coa      *appaccounting.ChartOfAccountsService
	writer   *appaccounting.JournalWriter
	logger   *zap.Logger
}

// NewFinalizerService creates a new FinalizerService
func NewFinalizerService(
	scope TransactionScope,
	resolver *appinventory.WarehouseResolver,
	coa *appaccounting.ChartOfAccountsService,
	writer *appaccounting.JournalWriter,
	logger *zap.Logger,
) *FinalizerService {
	return &FinalizerService{
		scope:    scope,
		resolver: resolver,
		coa:      coa,
		writer:   writer,
		logger:   logger,
	}
}

// FinalizeSale finalizes an open cart. A zero payment amount finalizes
// the full total on credit; an oversize payment is capped at the total
// and the change reported back.
func (s *FinalizerService) FinalizeSale(ctx context.Context, enterpriseID, cartID uuid.UUID, userID *uuid.UUID, req FinalizeSaleRequest) (*FinalizeResult, error) {
	if req.PaymentAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}

	method := sales.PaymentMethodCash
	if req.PaymentMethod != "" {
		method = sales.PaymentMethod(req.PaymentMethod)
		if !method.IsValid() {
			return nil, shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
		}
	}

	var result *FinalizeResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		cart, err := repos.Carts().FindByIDForEnterprise(ctx, enterpriseID, cartID)
		if err != nil {
			return err
		}
		saleRef := cart.Reference()

		// Idempotence probe before anything else: a retry of a finalized
		// cart is informational, not an error.
		exists, err := s.writer.Exists(ctx, repos.Journals(), enterpriseID, accounting.JournalTypeSale, saleRef)
		if err != nil {
			return err
		}
		if exists {
			result = alreadyFinalizedResult(cart)
			return nil
		}

		if !cart.IsOpen() {
			return shared.NewDomainError("INVALID_STATE",
				fmt.Sprintf("Cannot finalize a %s cart", cart.Status))
		}
		if cart.IsEmpty() {
			return shared.NewDomainError(shared.ErrCodeEmptyCart, "Cannot finalize a cart with no lines")
		}

		// Stored totals are untrusted; recompute from lines and discount
		cart.RecalculateTotals()
		total := cart.TotalFinal
		discount := cart.DiscountAmount

		config, err := s.coa.ResolveConfig(ctx, enterpriseID, cart.POSID)
		if err != nil {
			return err
		}
		required := []accounting.ConfigRole{
			accounting.RoleSalesRevenue,
			accounting.RoleClientReceivable,
			accounting.RoleCOGS,
			accounting.RoleInventoryAsset,
		}
		if discount.IsPositive() {
			required = append(required, accounting.RoleDiscountGranted)
		}
		if req.PaymentAmount.IsPositive() {
			required = append(required, settlementRole(method))
		}
		if err := s.coa.RequireRoles(config, required); err != nil {
			return err
		}

		warehouse, err := s.resolver.ResolveForPOS(ctx, enterpriseID, cart.POSID)
		if err != nil {
			return err
		}

		ledger := inventory.NewLedger(repos.InventoryItems(), repos.Movements())
		shortages, err := ledger.CheckAvailability(ctx, enterpriseID, warehouse.ID, aggregateDemands(cart.Lines))
		if err != nil {
			return err
		}
		if len(shortages) > 0 {
			return &inventory.InsufficientStockError{Shortages: shortages}
		}

		payment := req.PaymentAmount
		change := decimal.Zero
		if payment.GreaterThan(total) {
			change = payment.Sub(total)
			payment = total
		}

		// Sale journal: revenue is booked gross per line, discount as a
		// separate charge; the client is debited net.
		saleEntries := make([]appaccounting.EntryDraft, 0, len(cart.Lines)+2)
		for _, line := range cart.Lines {
			saleEntries = append(saleEntries, appaccounting.EntryDraft{
				AccountID: *config.AccountForRole(accounting.RoleSalesRevenue),
				Credit:    line.LineTotal,
				Label:     fmt.Sprintf("Line %d", line.LineNumber),
			})
		}
		if discount.IsPositive() {
			saleEntries = append(saleEntries, appaccounting.EntryDraft{
				AccountID: *config.AccountForRole(accounting.RoleDiscountGranted),
				Debit:     discount,
				Label:     "Discount granted",
			})
		}
		saleEntries = append(saleEntries, appaccounting.EntryDraft{
			AccountID: *config.AccountForRole(accounting.RoleClientReceivable),
			Debit:     total,
			Label:     "Client receivable",
		})

		_, err = s.writer.Write(ctx, repos.Journals(), appaccounting.JournalDraft{
			EnterpriseID: enterpriseID,
			Type:         accounting.JournalTypeSale,
			Reference:    saleRef,
			Label:        fmt.Sprintf("Sale %s", saleRef),
			Amount:       total,
			RecordedBy:   userID,
			Entries:      saleEntries,
		})
		if err != nil {
			// Raced retry between probe and write: nothing from this
			// transaction has been persisted, report as already finalized
			if shared.IsDomainErrorWithCode(err, shared.ErrCodeDuplicateJournal) {
				result = alreadyFinalizedResult(cart)
				return nil
			}
			return err
		}

		// Stock journal at sale price, one debit/credit pair per line
		stockEntries := make([]appaccounting.EntryDraft, 0, 2*len(cart.Lines))
		for _, line := range cart.Lines {
			stockEntries = append(stockEntries,
				appaccounting.EntryDraft{
					AccountID: *config.AccountForRole(accounting.RoleCOGS),
					Debit:     line.LineTotal,
					Label:     fmt.Sprintf("Line %d", line.LineNumber),
				},
				appaccounting.EntryDraft{
					AccountID: *config.AccountForRole(accounting.RoleInventoryAsset),
					Credit:    line.LineTotal,
					Label:     fmt.Sprintf("Line %d", line.LineNumber),
				})
		}
		_, err = s.writer.Write(ctx, repos.Journals(), appaccounting.JournalDraft{
			EnterpriseID: enterpriseID,
			Type:         accounting.JournalTypeStock,
			Reference:    saleRef,
			Label:        fmt.Sprintf("Stock out %s", saleRef),
			Amount:       total,
			RecordedBy:   userID,
			Entries:      stockEntries,
		})
		if err != nil {
			return err
		}

		for _, line := range cart.Lines {
			if _, err := ledger.ApplyOut(ctx, enterpriseID, warehouse.ID, line.ProductID,
				line.Quantity, line.UnitPrice, saleRef, userID); err != nil {
				return err
			}
		}

		if payment.IsPositive() {
			paymentRef := cart.PaymentReference(cart.NextPaymentSequence())
			if err := s.writePaymentJournal(ctx, repos, config, enterpriseID, paymentRef, payment, method, userID); err != nil {
				return err
			}
			if _, err := cart.AppendPayment(payment, method, userID); err != nil {
				return err
			}
		}

		if err := cart.MarkValidated(); err != nil {
			return err
		}
		if err := repos.Carts().Save(ctx, cart); err != nil {
			return err
		}

		message := fmt.Sprintf("Sale %s finalized (%s)", saleRef, cart.PaymentTag)
		if change.IsPositive() {
			message += fmt.Sprintf(", change due %s", change.String())
		}

		response := ToCartResponse(cart)
		result = &FinalizeResult{
			Status:  StatusValidated,
			Message: message,
			Change:  change,
			Cart:    &response,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == StatusValidated {
		s.logger.Info("sale finalized",
			zap.String("enterprise_id", enterpriseID.String()),
			zap.String("cart_id", cartID.String()),
			zap.String("payment_tag", result.Cart.PaymentTag),
			zap.String("total_final", result.Cart.TotalFinal.String()))
	}

	return result, nil
}

// AddPayment records a settlement against a validated cart. It writes
// only a payment journal; sale and stock journals are never re-posted.
// An oversize payment is capped at the outstanding balance.
func (s *FinalizerService) AddPayment(ctx context.Context, enterpriseID, cartID uuid.UUID, userID *uuid.UUID, req AddPaymentRequest) (*FinalizeResult, error) {
	method := sales.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	var result *FinalizeResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		cart, err := repos.Carts().FindByIDForEnterprise(ctx, enterpriseID, cartID)
		if err != nil {
			return err
		}

		if cart.Status != sales.CartStatusValidated {
			return shared.NewDomainError("INVALID_STATE",
				fmt.Sprintf("Cannot record a payment on a %s cart; finalize it first", cart.Status))
		}

		outstanding := cart.Outstanding()
		if outstanding.IsZero() {
			return shared.NewDomainError("INVALID_STATE", "Cart is already fully paid")
		}

		amount := req.Amount
		change := decimal.Zero
		if amount.GreaterThan(outstanding) {
			change = amount.Sub(outstanding)
			amount = outstanding
		}

		config, err := s.coa.ResolveConfig(ctx, enterpriseID, cart.POSID)
		if err != nil {
			return err
		}
		if err := s.coa.RequireRoles(config, []accounting.ConfigRole{
			accounting.RoleClientReceivable,
			settlementRole(method),
		}); err != nil {
			return err
		}

		paymentRef := cart.PaymentReference(cart.NextPaymentSequence())
		if err := s.writePaymentJournal(ctx, repos, config, enterpriseID, paymentRef, amount, method, userID); err != nil {
			return err
		}
		if _, err := cart.AppendPayment(amount, method, userID); err != nil {
			return err
		}
		if err := repos.Carts().Save(ctx, cart); err != nil {
			return err
		}

		message := fmt.Sprintf("Payment %s recorded (%s)", amount.String(), cart.PaymentTag)
		if change.IsPositive() {
			message += fmt.Sprintf(", change due %s", change.String())
		}

		response := ToCartResponse(cart)
		result = &FinalizeResult{
			Status:  StatusPaymentRecorded,
			Message: message,
			Change:  change,
			Cart:    &response,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("cart_id", cartID.String()),
		zap.String("amount", result.Cart.TotalPaid.String()))

	return result, nil
}

// CheckAvailability previews whether the cart's demand is covered by the
// POS warehouse, without writing anything
func (s *FinalizerService) CheckAvailability(ctx context.Context, enterpriseID, cartID uuid.UUID) (*AvailabilityResponse, error) {
	var response *AvailabilityResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		cart, err := repos.Carts().FindByIDForEnterprise(ctx, enterpriseID, cartID)
		if err != nil {
			return err
		}

		warehouse, err := s.resolver.ResolveForPOS(ctx, enterpriseID, cart.POSID)
		if err != nil {
			return err
		}

		ledger := inventory.NewLedger(repos.InventoryItems(), repos.Movements())
		shortages, err := ledger.CheckAvailability(ctx, enterpriseID, warehouse.ID, aggregateDemands(cart.Lines))
		if err != nil {
			return err
		}

		response = &AvailabilityResponse{
			Available: len(shortages) == 0,
			Shortages: shortages,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *FinalizerService) writePaymentJournal(
	ctx context.Context,
	repos TransactionalRepositories,
	config *accounting.AccountingConfig,
	enterpriseID uuid.UUID,
	reference string,
	amount decimal.Decimal,
	method sales.PaymentMethod,
	userID *uuid.UUID,
) error {
	_, err := s.writer.Write(ctx, repos.Journals(), appaccounting.JournalDraft{
		EnterpriseID: enterpriseID,
		Type:         accounting.JournalTypePayment,
		Reference:    reference,
		Label:        fmt.Sprintf("Payment %s", reference),
		Amount:       amount,
		RecordedBy:   userID,
		Entries: []appaccounting.EntryDraft{
			{
				AccountID: *config.AccountForRole(settlementRole(method)),
				Debit:     amount,
				Label:     string(method),
			},
			{
				AccountID: *config.AccountForRole(accounting.RoleClientReceivable),
				Credit:    amount,
				Label:     "Client receivable",
			},
		},
	})
	return err
}

// aggregateDemands sums line quantities per product, keeping first-seen
// order. A product split across several lines must be checked against
// the row once, with its combined quantity.
func aggregateDemands(lines []sales.CartLine) []inventory.Demand {
	demands := make([]inventory.Demand, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			demands[i].Quantity = demands[i].Quantity.Add(line.Quantity)
			continue
		}
		index[line.ProductID] = len(demands)
		demands = append(demands, inventory.Demand{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return demands
}

func settlementRole(method sales.PaymentMethod) accounting.ConfigRole {
	if method == sales.PaymentMethodBank {
		return accounting.RoleBank
	}
	return accounting.RoleCash
}

func alreadyFinalizedResult(cart *sales.Cart) *FinalizeResult {
	response := ToCartResponse(cart)
	return &FinalizeResult{
		Status:  StatusAlreadyFinalized,
		Message: fmt.Sprintf("Sale %s is already finalized", cart.Reference()),
		Change:  decimal.Zero,
		Cart:    &response,
	}
}
