package services

import (
	"context"
	"sort"
	"time"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/models"
)

// DefaultCategoryLabel is used for products with no category set.
const DefaultCategoryLabel = "uncategorized"

// topProductsLimit is how many rows the overview ranking shows.
const topProductsLimit = 5

// --- Aggregation functions ---
// Pure functions over a snapshot of orders/local collections; no side
// effects beyond the returned values.

// OrderDate normalizes the three date shapes an order may carry, in
// priority order: a seconds-based created_at timestamp, an ISO created_at
// string, then the plain date field. The second return is false when no
// shape yields a usable date.
func OrderDate(o models.Order) (time.Time, bool) {
	if o.CreatedAt != nil && o.CreatedAt.Valid {
		return o.CreatedAt.Time, true
	}
	if o.Date != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, o.Date); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// sameCalendarDay compares date components in the local zone. Order
// timestamps arrive in mixed zones (UTC from ISO strings, local from
// seconds-based ones) and must land on one calendar before comparing.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// TodaysSales sums order totals for orders dated the same calendar day as now.
func TodaysSales(orders []models.Order, now time.Time) float64 {
	var sum float64
	for _, o := range orders {
		if d, ok := OrderDate(o); ok && sameCalendarDay(d, now) {
			sum += o.Total
		}
	}
	return sum
}

// TodaysOrderCount counts orders dated the same calendar day as now.
func TodaysOrderCount(orders []models.Order, now time.Time) int {
	count := 0
	for _, o := range orders {
		if d, ok := OrderDate(o); ok && sameCalendarDay(d, now) {
			count++
		}
	}
	return count
}

// OccupancyRatio returns how many tables are occupied out of the total.
func OccupancyRatio(tables []models.Table) (occupied, total int) {
	for _, t := range tables {
		if t.Status == models.TableStatusOccupied {
			occupied++
		}
	}
	return occupied, len(tables)
}

// TopProducts ranks product names by aggregated quantity across all order
// items, descending, ties broken by first encounter, limited to n rows.
func TopProducts(orders []models.Order, n int) []models.ProductSales {
	totals := map[string]int{}
	var firstSeen []string

	for _, o := range orders {
		for _, item := range o.Items {
			name := item.Name
			if name == "" {
				name = "Product"
			}
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			if _, seen := totals[name]; !seen {
				firstSeen = append(firstSeen, name)
			}
			totals[name] += qty
		}
	}

	ranking := make([]models.ProductSales, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranking = append(ranking, models.ProductSales{Name: name, Quantity: totals[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if n >= 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// PaymentBreakdown sums order totals per payment method over the fixed set
// {cash, card, transfer}. Orders without a method count as cash; methods
// outside the set are ignored.
func PaymentBreakdown(orders []models.Order) map[models.PaymentMethod]float64 {
	breakdown := map[models.PaymentMethod]float64{
		models.PaymentMethodCash:     0,
		models.PaymentMethodCard:     0,
		models.PaymentMethodTransfer: 0,
	}
	for _, o := range orders {
		method := o.PaymentMethod
		if method == "" {
			method = models.PaymentMethodCash
		}
		if !method.Valid() {
			continue
		}
		breakdown[method] += o.Total
	}
	return breakdown
}

// SortOrdersByRecency returns a copy of orders sorted most recent first.
// Orders without any usable date sort last.
func SortOrdersByRecency(orders []models.Order) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := OrderDate(sorted[i])
		dj, _ := OrderDate(sorted[j])
		return di.After(dj)
	})
	return sorted
}

// GroupProductsByCategory groups products under their category label,
// preserving first-encounter order of both categories and products.
func GroupProductsByCategory(products []models.Product) []models.MenuCategory {
	index := map[string]int{}
	grouped := []models.MenuCategory{}

	for _, p := range products {
		category := p.Category
		if category == "" {
			category = DefaultCategoryLabel
		}
		i, ok := index[category]
		if !ok {
			i = len(grouped)
			index[category] = i
			grouped = append(grouped, models.MenuCategory{Name: category})
		}
		grouped[i].Products = append(grouped[i].Products, p)
	}
	return grouped
}

// --- ReportService ---

// ReportService composes the aggregation functions with the remote order
// snapshot and the local collections into the overview and sales sections.
type ReportService interface {
	GetOverview(ctx context.Context) (*models.DashboardOverview, error)
	GetSalesReport(ctx context.Context) (*models.SalesReport, error)
}

type reportService struct {
	gw       gateway.Gateway
	staff    StaffService
	tables   TableService
	register RegisterService

	overviewRefresh inflightGuard
	salesRefresh    inflightGuard
}

// NewReportService creates a new instance of ReportService.
func NewReportService(gw gateway.Gateway, staff StaffService, tables TableService, register RegisterService) ReportService {
	return &reportService{gw: gw, staff: staff, tables: tables, register: register}
}

func (s *reportService) GetOverview(ctx context.Context) (*models.DashboardOverview, error) {
	if err := s.overviewRefresh.acquire(); err != nil {
		return nil, err
	}
	defer s.overviewRefresh.release()

	orders, err := s.gw.FetchAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	occupied, total := OccupancyRatio(s.tables.GetTables())

	active := 0
	for _, m := range s.staff.GetStaffMembers() {
		if m.Status == models.StaffStatusActive {
			active++
		}
	}

	return &models.DashboardOverview{
		TodaySales:     TodaysSales(orders, now),
		TodayOrders:    TodaysOrderCount(orders, now),
		OccupiedTables: occupied,
		TotalTables:    total,
		ActiveStaff:    active,
		TopProducts:    TopProducts(orders, topProductsLimit),
	}, nil
}

func (s *reportService) GetSalesReport(ctx context.Context) (*models.SalesReport, error) {
	if err := s.salesRefresh.acquire(); err != nil {
		return nil, err
	}
	defer s.salesRefresh.release()

	orders, err := s.gw.FetchAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := PaymentBreakdown(orders)

	report := &models.SalesReport{
		CashSales:     breakdown[models.PaymentMethodCash],
		CardSales:     breakdown[models.PaymentMethodCard],
		TransferSales: breakdown[models.PaymentMethodTransfer],
		Orders:        SortOrdersByRecency(orders),
	}
	if session := s.register.Current(); session != nil {
		report.RegisterOpen = session.IsOpen
		report.InitialCash = session.InitialAmount
	}
	report.TotalCash = report.InitialCash + report.CashSales
	return report, nil
}
