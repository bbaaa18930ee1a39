package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/sales"
	"github.com/gescom/backend/internal/domain/shared"
)

// in-memory repositories shared by the service tests

type memCartRepo struct {
	carts map[uuid.UUID]*sales.Cart
	saves int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[uuid.UUID]*sales.Cart)}
}

func (r *memCartRepo) FindByID(_ context.Context, id uuid.UUID) (*sales.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cart, nil
}

func (r *memCartRepo) FindByIDForEnterprise(_ context.Context, enterpriseID, id uuid.UUID) (*sales.Cart, error) {
	cart, ok := r.carts[id]
	if !ok || cart.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	return cart, nil
}

func (r *memCartRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]sales.Cart, error) {
	var out []sales.Cart
	for _, cart := range r.carts {
		if cart.EnterpriseID == enterpriseID {
			out = append(out, *cart)
		}
	}
	return out, nil
}

func (r *memCartRepo) Save(_ context.Context, cart *sales.Cart) error {
	r.carts[cart.ID] = cart
	r.saves++
	return nil
}

type memJournalRepo struct {
	journals []*accounting.Journal
}

func (r *memJournalRepo) FindByID(_ context.Context, id uuid.UUID) (*accounting.Journal, error) {
	for _, j := range r.journals {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memJournalRepo) FindByTypeAndReference(_ context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (*accounting.Journal, error) {
	for _, j := range r.journals {
		if j.EnterpriseID == enterpriseID && j.Type == journalType && j.Reference == reference {
			return j, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memJournalRepo) ExistsByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (bool, error) {
	_, err := r.FindByTypeAndReference(ctx, enterpriseID, journalType, reference)
	if err == shared.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *memJournalRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]accounting.Journal, error) {
	var out []accounting.Journal
	for _, j := range r.journals {
		if j.EnterpriseID == enterpriseID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJournalRepo) Save(_ context.Context, journal *accounting.Journal) error {
	r.journals = append(r.journals, journal)
	return nil
}

func (r *memJournalRepo) byType(journalType accounting.JournalType) []*accounting.Journal {
	var out []*accounting.Journal
	for _, j := range r.journals {
		if j.Type == journalType {
			out = append(out, j)
		}
	}
	return out
}

type memItemRepo struct {
	items map[string]*inventory.InventoryItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*inventory.InventoryItem)}
}

func itemKey(warehouseID, productID uuid.UUID) string {
	return warehouseID.String() + "/" + productID.String()
}

func (r *memItemRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memItemRepo) FindByWarehouseAndProduct(_ context.Context, _, warehouseID, productID uuid.UUID) (*inventory.InventoryItem, error) {
	item, ok := r.items[itemKey(warehouseID, productID)]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *memItemRepo) FindByWarehouse(_ context.Context, _, warehouseID uuid.UUID, _ shared.Filter) ([]inventory.InventoryItem, error) {
	var out []inventory.InventoryItem
	for _, item := range r.items {
		if item.WarehouseID == warehouseID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memItemRepo) FindAllForEnterprise(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]inventory.InventoryItem, error) {
	var out []inventory.InventoryItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memItemRepo) Save(_ context.Context, item *inventory.InventoryItem) error {
	r.items[itemKey(item.WarehouseID, item.ProductID)] = item
	return nil
}

type memMovementRepo struct {
	movements []inventory.Movement
}

func (r *memMovementRepo) Save(_ context.Context, movement *inventory.Movement) error {
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *memMovementRepo) FindByReference(_ context.Context, _ uuid.UUID, reference string) ([]inventory.Movement, error) {
	var out []inventory.Movement
	for _, m := range r.movements {
		if m.Reference == reference {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) FindByProduct(_ context.Context, _, productID uuid.UUID, _ shared.Filter) ([]inventory.Movement, error) {
	var out []inventory.Movement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) FindAllForEnterprise(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]inventory.Movement, error) {
	return r.movements, nil
}

type memPOSConfigRepo struct {
	configs map[uuid.UUID]*partner.POSWarehouseConfig
}

func newMemPOSConfigRepo() *memPOSConfigRepo {
	return &memPOSConfigRepo{configs: make(map[uuid.UUID]*partner.POSWarehouseConfig)}
}

func (r *memPOSConfigRepo) FindByPOS(_ context.Context, _, posID uuid.UUID) (*partner.POSWarehouseConfig, error) {
	config, ok := r.configs[posID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return config, nil
}

func (r *memPOSConfigRepo) Save(_ context.Context, config *partner.POSWarehouseConfig) error {
	r.configs[config.POSID] = config
	return nil
}

type memWarehouseRepo struct {
	warehouses map[uuid.UUID]*partner.Warehouse
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{warehouses: make(map[uuid.UUID]*partner.Warehouse)}
}

func (r *memWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	warehouse, ok := r.warehouses[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return warehouse, nil
}

func (r *memWarehouseRepo) FindByIDForEnterprise(_ context.Context, enterpriseID, id uuid.UUID) (*partner.Warehouse, error) {
	warehouse, ok := r.warehouses[id]
	if !ok || warehouse.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	return warehouse, nil
}

func (r *memWarehouseRepo) FindByCode(_ context.Context, enterpriseID uuid.UUID, code string) (*partner.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Code == code {
			return w, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memWarehouseRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]partner.Warehouse, error) {
	var out []partner.Warehouse
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWarehouseRepo) FindByType(_ context.Context, enterpriseID uuid.UUID, warehouseType partner.WarehouseType) ([]partner.Warehouse, error) {
	var out []partner.Warehouse
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Type == warehouseType && w.IsActive() {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWarehouseRepo) FindDefault(_ context.Context, enterpriseID uuid.UUID) (*partner.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.IsDefault && w.IsActive() {
			return w, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memWarehouseRepo) ExistsByCode(_ context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWarehouseRepo) Save(_ context.Context, warehouse *partner.Warehouse) error {
	r.warehouses[warehouse.ID] = warehouse
	return nil
}

func (r *memWarehouseRepo) ClearDefault(_ context.Context, enterpriseID uuid.UUID) error {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID {
			w.IsDefault = false
		}
	}
	return nil
}

type memAccountingConfigRepo struct {
	byPOS      map[uuid.UUID]*accounting.AccountingConfig
	enterprise *accounting.AccountingConfig
}

func newMemAccountingConfigRepo() *memAccountingConfigRepo {
	return &memAccountingConfigRepo{byPOS: make(map[uuid.UUID]*accounting.AccountingConfig)}
}

func (r *memAccountingConfigRepo) FindByPOS(_ context.Context, _, posID uuid.UUID) (*accounting.AccountingConfig, error) {
	config, ok := r.byPOS[posID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return config, nil
}

func (r *memAccountingConfigRepo) FindEnterpriseDefault(_ context.Context, _ uuid.UUID) (*accounting.AccountingConfig, error) {
	if r.enterprise == nil {
		return nil, shared.ErrNotFound
	}
	return r.enterprise, nil
}

func (r *memAccountingConfigRepo) Save(_ context.Context, config *accounting.AccountingConfig) error {
	if config.POSID == nil {
		r.enterprise = config
	} else {
		r.byPOS[*config.POSID] = config
	}
	return nil
}

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *memProductRepo) FindByIDForEnterprise(_ context.Context, enterpriseID, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok || product.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *memProductRepo) FindByIDs(_ context.Context, enterpriseID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok && product.EnterpriseID == enterpriseID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindByCode(_ context.Context, enterpriseID uuid.UUID, code string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.EnterpriseID == enterpriseID && p.Code == code {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if p.EnterpriseID == enterpriseID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ExistsByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	_, err := r.FindByCode(ctx, enterpriseID, code)
	if err == shared.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}
