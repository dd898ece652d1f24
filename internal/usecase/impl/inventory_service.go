package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Inventory report sort keys.
const (
	inventorySortStock             = "stock"
	inventorySortSold30            = "sold30"
	inventorySortDaysUntilStockout = "daysUntilStockout"
	inventorySortName              = "name"
)

type inventoryService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	config      *config.Config
	logger      *slog.Logger
	now         func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInventoryService creates a new inventory report service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		config:      params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Report loads every matching product, derives the rows in memory and then
// sorts and pages them, since the sort keys are not stored columns.
func (srv *inventoryService) Report(ctx context.Context, filter repository.InventoryFilter) (*entity.InventoryReport, error) {
	ascending := filter.Order != repository.SortDesc
	normalizeListParams(srv.config, &filter.ListParams)
	thresholds := srv.config.InventoryThresholds()

	productFilter := repository.ProductFilter{
		ListParams: repository.ListParams{Search: filter.Search, SortBy: "name", Order: repository.SortAsc},
		Category:   strings.TrimSpace(filter.Category),
	}
	if err := applyStockStatus(&productFilter, filter.StockStatus, thresholds); err != nil {
		return nil, err
	}

	products, _, err := srv.productRepo.List(ctx, productFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory products")
	}

	sold := map[uint]int64{}
	if len(products) > 0 {
		ids := make([]uint, 0, len(products))
		for _, product := range products {
			ids = append(ids, product.ID)
		}

		since := srv.now().AddDate(0, 0, -thresholds.SalesWindowDays)
		sold, err = srv.orderRepo.SoldQuantitiesSince(ctx, since, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load sold quantities")
		}
	}

	items, totals := entity.BuildInventory(products, sold, thresholds)
	sortInventory(items, filter.SortBy, ascending)

	srv.log(ctx).Debug("Inventory report built",
		slog.Int("products", totals.Products), slog.Int("needsRestock", totals.NeedsRestock))

	return &entity.InventoryReport{
		Items:      pageSlice(items, filter.ListParams),
		Totals:     totals,
		Pagination: entity.NewPagination(int64(len(items)), filter.Page, filter.Limit),
	}, nil
}

// applyStockStatus turns a status label into the stock range it covers.
func applyStockStatus(filter *repository.ProductFilter, status string, t entity.InventoryThresholds) error {
	if status == "" {
		return nil
	}

	zero, low, aboveLow := 0, t.LowStock, t.LowStock+1
	switch entity.StockStatus(status) {
	case entity.StockStatusOutOfStock:
		filter.MaxStock = &zero
	case entity.StockStatusLow:
		one := 1
		filter.MinStock = &one
		filter.MaxStock = &low
	case entity.StockStatusNormal:
		filter.MinStock = &aboveLow
	default:
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("stockStatus", "oneof", "stockStatus must be out-of-stock, low or normal"))
	}

	return nil
}

// sortInventory orders rows by key; a nil runway sorts as infinite. Ties
// fall back to product ID.
func sortInventory(items []entity.InventoryItem, key string, ascending bool) {
	compare := func(a, b entity.InventoryItem) int {
		switch key {
		case inventorySortSold30:
			return cmp.Compare(a.Sold30, b.Sold30)
		case inventorySortDaysUntilStockout:
			return compareRunway(a.DaysUntilStockout, b.DaysUntilStockout)
		case inventorySortName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		default:
			return cmp.Compare(a.Stock, b.Stock)
		}
	}

	slices.SortStableFunc(items, func(a, b entity.InventoryItem) int {
		c := compare(a, b)
		if !ascending {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ProductID, b.ProductID)
		}

		return c
	})
}

func compareRunway(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func pageSlice[T any](items []T, params repository.ListParams) []T {
	start := min(params.Offset(), len(items))
	end := len(items)
	if params.Limit > 0 {
		end = min(start+params.Limit, len(items))
	}

	return items[start:end]
}
