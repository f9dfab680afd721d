package services

import (
	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/repository"

	"github.com/shopspring/decimal"
)

// DashboardService aggregates a seller's catalog and sales figures for the
// dashboard view.
type DashboardService struct {
	ProductRepo *repository.ProductRepository
	OrderRepo   *repository.OrderRepository
}

func NewDashboardService(pr *repository.ProductRepository, or *repository.OrderRepository) *DashboardService {
	return &DashboardService{ProductRepo: pr, OrderRepo: or}
}

type DashboardStats struct {
	TotalProducts   int                            `json:"totalProducts"`
	TotalOrders     int64                          `json:"totalOrders"`
	ActiveOrders    int64                          `json:"activeOrders"`
	CompletedOrders int64                          `json:"completedOrders"`
	TotalRevenue    decimal.Decimal                `json:"totalRevenue"`
	PendingRevenue  decimal.Decimal                `json:"pendingRevenue"`
	TotalStock      int                            `json:"totalStock"`
	AvgPrice        decimal.Decimal                `json:"avgPrice"`
	StatusCounts    map[entity.OrderStatus]int64   `json:"statusCounts"`
	PopularProducts []repository.ProductOrderCount `json:"popularProducts"`
}

type DashboardOut struct {
	Products []entity.Product `json:"products"`
	Stats    DashboardStats   `json:"stats"`
}

func (s *DashboardService) ForSeller(sellerID uint) (*DashboardOut, error) {
	products, err := s.ProductRepo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.OrderRepo.CountForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	activeOrders, err := s.OrderRepo.CountActiveForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.OrderRepo.RevenueForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	pending, err := s.OrderRepo.PendingRevenueForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.OrderRepo.StatusCountsForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	popular, err := s.OrderRepo.PopularProductsForSeller(sellerID, 5)
	if err != nil {
		return nil, err
	}

	totalStock := 0
	priceSum := decimal.Zero
	for i := range products {
		totalStock += products[i].Stock
		priceSum = priceSum.Add(products[i].Price)
	}
	avgPrice := decimal.Zero
	if len(products) > 0 {
		avgPrice = priceSum.Div(decimal.NewFromInt(int64(len(products))))
	}

	return &DashboardOut{
		Products: products,
		Stats: DashboardStats{
			TotalProducts:   len(products),
			TotalOrders:     totalOrders,
			ActiveOrders:    activeOrders,
			CompletedOrders: statusCounts[entity.OrderStatusReceived],
			TotalRevenue:    revenue,
			PendingRevenue:  pending,
			TotalStock:      totalStock,
			AvgPrice:        avgPrice,
			StatusCounts:    statusCounts,
			PopularProducts: popular,
		},
	}, nil
}
