package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway is an in-memory Gateway for service tests.
type fakeGateway struct {
	orders   []models.Order
	products []models.Product
	err      error

	statusCalls []string
	deleteCalls []string
}

func (f *fakeGateway) FetchAllOrders(ctx context.Context) ([]models.Order, error) {
	return f.orders, f.err
}

func (f *fakeGateway) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeGateway) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	f.statusCalls = append(f.statusCalls, orderID+":"+string(status))
	return f.err
}

func (f *fakeGateway) DeleteProduct(ctx context.Context, productID string) error {
	f.deleteCalls = append(f.deleteCalls, productID)
	return f.err
}

func remoteTime(t time.Time) *models.RemoteTime {
	return &models.RemoteTime{Time: t, Valid: true}
}

func TestOrderDatePriority(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// created_at wins over the legacy date field.
	d, ok := OrderDate(models.Order{CreatedAt: remoteTime(createdAt), Date: "2020-01-01"})
	require.True(t, ok)
	assert.Equal(t, createdAt, d)

	// Legacy date field is used when created_at is absent.
	d, ok = OrderDate(models.Order{Date: "2026-08-29"})
	require.True(t, ok)
	assert.Equal(t, 29, d.Day())

	// Datetime string without zone.
	_, ok = OrderDate(models.Order{Date: "2026-08-29T18:30:00"})
	assert.True(t, ok)

	// Nothing usable.
	_, ok = OrderDate(models.Order{})
	assert.False(t, ok)
	_, ok = OrderDate(models.Order{Date: "yesterday-ish"})
	assert.False(t, ok)
}

func TestTodaysSales(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Total: 100, CreatedAt: remoteTime(now.Add(-2 * time.Hour))},
		{Total: 50, CreatedAt: remoteTime(now.Add(-10 * time.Minute))},
		{Total: 999, CreatedAt: remoteTime(now.AddDate(0, 0, -1))},
		{Total: 777}, // undated orders never count
	}

	assert.Equal(t, 150.0, TodaysSales(orders, now))
	assert.Equal(t, 2, TodaysOrderCount(orders, now))
}

func TestTodaysSalesMixedTimestampZones(t *testing.T) {
	// One instant near midnight carried in two different zones; both
	// orders land on the same calendar day as a clock reading that zone
	// differently.
	instant := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)
	ahead := time.FixedZone("UTC+10", 10*3600)

	orders := []models.Order{
		{Total: 60, CreatedAt: remoteTime(instant)},
		{Total: 40, CreatedAt: remoteTime(instant.In(ahead))},
	}

	now := instant.In(ahead)
	assert.Equal(t, 100.0, TodaysSales(orders, now))
	assert.Equal(t, 2, TodaysOrderCount(orders, now))
}

func TestOccupancyRatio(t *testing.T) {
	tables := []models.Table{
		{Status: models.TableStatusOccupied},
		{Status: models.TableStatusFree},
		{Status: models.TableStatusReserved},
		{Status: models.TableStatusOccupied},
	}

	occupied, total := OccupancyRatio(tables)
	assert.Equal(t, 2, occupied)
	assert.Equal(t, 4, total)
}

func TestTopProducts(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Soup", Quantity: 3}, {Name: "Bread", Quantity: 1}}},
		{Items: []models.OrderItem{{Name: "Soup", Quantity: 2}}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 2)
	assert.Equal(t, models.ProductSales{Name: "Soup", Quantity: 5}, top[0])
	assert.Equal(t, models.ProductSales{Name: "Bread", Quantity: 1}, top[1])
}

func TestTopProductsTieBreaksByFirstEncounter(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Tea", Quantity: 2}, {Name: "Coffee", Quantity: 2}}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "Tea", top[0].Name)
	assert.Equal(t, "Coffee", top[1].Name)
}

func TestTopProductsDefaultsMissingFields(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "", Quantity: 0}}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "Product", top[0].Name)
	assert.Equal(t, 1, top[0].Quantity)
}

func TestTopProductsLimit(t *testing.T) {
	orders := []models.Order{{Items: []models.OrderItem{
		{Name: "A", Quantity: 6}, {Name: "B", Quantity: 5}, {Name: "C", Quantity: 4},
		{Name: "D", Quantity: 3}, {Name: "E", Quantity: 2}, {Name: "F", Quantity: 1},
	}}}

	top := TopProducts(orders, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "E", top[4].Name)
}

func TestPaymentBreakdown(t *testing.T) {
	orders := []models.Order{
		{Total: 100, PaymentMethod: models.PaymentMethodCash},
		{Total: 40, PaymentMethod: models.PaymentMethodCard},
		{Total: 60, PaymentMethod: models.PaymentMethodTransfer},
		{Total: 25}, // no method counts as cash
		{Total: 999, PaymentMethod: "crypto"}, // outside the set, ignored
	}

	breakdown := PaymentBreakdown(orders)
	assert.Equal(t, 125.0, breakdown[models.PaymentMethodCash])
	assert.Equal(t, 40.0, breakdown[models.PaymentMethodCard])
	assert.Equal(t, 60.0, breakdown[models.PaymentMethodTransfer])
	assert.Len(t, breakdown, 3)
}

func TestSortOrdersByRecency(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "old", CreatedAt: remoteTime(now.Add(-3 * time.Hour))},
		{ID: "undated"},
		{ID: "new", CreatedAt: remoteTime(now)},
	}

	sorted := SortOrdersByRecency(orders)
	require.Len(t, sorted, 3)
	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "old", sorted[1].ID)
	assert.Equal(t, "undated", sorted[2].ID)

	// Input slice is left as-is.
	assert.Equal(t, "old", orders[0].ID)
}

func TestGroupProductsByCategory(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Cola", Category: "drinks"},
		{ID: "2", Name: "Soup", Category: "mains"},
		{ID: "3", Name: "Water", Category: "drinks"},
		{ID: "4", Name: "Mystery"},
	}

	grouped := GroupProductsByCategory(products)
	require.Len(t, grouped, 3)
	assert.Equal(t, "drinks", grouped[0].Name)
	assert.Len(t, grouped[0].Products, 2)
	assert.Equal(t, "mains", grouped[1].Name)
	assert.Equal(t, DefaultCategoryLabel, grouped[2].Name)
}

func newReportFixture(t *testing.T, gw gateway.Gateway) (ReportService, StaffService, TableService, RegisterService) {
	t.Helper()
	st := newTestStore(t)
	staff := NewStaffService(st)
	tables := NewTableService(st)
	register := NewRegisterService(st)
	return NewReportService(gw, staff, tables, register), staff, tables, register
}

func TestGetOverview(t *testing.T) {
	now := time.Now()
	gw := &fakeGateway{orders: []models.Order{
		{Total: 80, CreatedAt: remoteTime(now), Items: []models.OrderItem{{Name: "Soup", Quantity: 2}}},
		{Total: 20, CreatedAt: remoteTime(now.AddDate(0, 0, -2))},
	}}

	svc, staff, tables, _ := newReportFixture(t, gw)
	staff.SeedDefaults()
	tables.SeedDefaults()

	inactive := models.StaffStatusInactive
	members := staff.GetStaffMembers()
	_, err := staff.UpdateStaffMember(members[0].ID, UpdateStaffMemberRequest{Status: &inactive})
	require.NoError(t, err)

	_, err = tables.CycleTableStatus(tables.GetTables()[0].ID)
	require.NoError(t, err)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 80.0, overview.TodaySales)
	assert.Equal(t, 1, overview.TodayOrders)
	assert.Equal(t, 1, overview.OccupiedTables)
	assert.Equal(t, 5, overview.TotalTables)
	assert.Equal(t, 1, overview.ActiveStaff)
	require.Len(t, overview.TopProducts, 1)
	assert.Equal(t, "Soup", overview.TopProducts[0].Name)
}

func TestGetOverviewRemoteFailure(t *testing.T) {
	gw := &fakeGateway{err: gateway.ErrRemote}
	svc, _, _, _ := newReportFixture(t, gw)

	_, err := svc.GetOverview(context.Background())
	assert.ErrorIs(t, err, gateway.ErrRemote)
}

func TestGetSalesReport(t *testing.T) {
	gw := &fakeGateway{orders: []models.Order{
		{ID: "a", Total: 100, PaymentMethod: models.PaymentMethodCash},
		{ID: "b", Total: 40, PaymentMethod: models.PaymentMethodCard},
		{ID: "c", Total: 30},
	}}

	svc, _, _, register := newReportFixture(t, gw)
	_, err := register.Open(50, "Maria")
	require.NoError(t, err)

	report, err := svc.GetSalesReport(context.Background())
	require.NoError(t, err)

	assert.True(t, report.RegisterOpen)
	assert.Equal(t, 50.0, report.InitialCash)
	assert.Equal(t, 130.0, report.CashSales)
	assert.Equal(t, 40.0, report.CardSales)
	assert.Equal(t, 0.0, report.TransferSales)
	assert.Equal(t, 180.0, report.TotalCash)
	assert.Len(t, report.Orders, 3)
}

func TestGetSalesReportWithoutSession(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _, _ := newReportFixture(t, gw)

	report, err := svc.GetSalesReport(context.Background())
	require.NoError(t, err)

	assert.False(t, report.RegisterOpen)
	assert.Equal(t, 0.0, report.InitialCash)
	assert.Equal(t, 0.0, report.TotalCash)
}

func TestInflightGuard(t *testing.T) {
	var guard inflightGuard

	require.NoError(t, guard.acquire())
	assert.True(t, errors.Is(guard.acquire(), ErrRefreshInFlight))

	guard.release()
	assert.NoError(t, guard.acquire())
}
