package http

import (
	"strings"

	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/services"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewProduct struct {
	Name          string  `json:"name"`
	StandardHours float64 `json:"standardHours"`
}

type Product struct {
	Name          string  `json:"name"`
	StandardHours float64 `json:"standardHours"`
}

type NewOrder struct {
	Name     string `json:"name"`
	Product  string `json:"product"`
	Urgency  int    `json:"urgency"`
	Cost     int    `json:"cost"`
	Deadline string `json:"deadline"`
}

type Order struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Product         string  `json:"product"`
	Urgency         int     `json:"urgency"`
	Cost            int     `json:"cost"`
	ProductionHours float64 `json:"productionHours"`
	Score           float64 `json:"score"`
	Deadline        string  `json:"deadline"`
	Status          string  `json:"status"`
}

type Summary struct {
	Open      int `json:"open"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

type Capacity struct {
	PlannedHours        float64 `json:"plannedHours"`
	WeeklyCapacityHours int     `json:"weeklyCapacityHours"`
	Ratio               float64 `json:"ratio"`
	OverCapacity        bool    `json:"overCapacity"`
}

type Alerts struct {
	Date       string  `json:"date"`
	WindowDays int     `json:"windowDays"`
	Orders     []Order `json:"orders"`
}

type PeriodSummary struct {
	From string `json:"from"`
	To   string `json:"to"`
	Summary
}

func toOrder(v queries.OrderView) Order {
	return Order{
		ID:              v.ID.String(),
		Name:            v.Name,
		Product:         v.Product,
		Urgency:         v.Urgency,
		Cost:            v.Cost,
		ProductionHours: v.ProductionHours,
		Score:           v.Score,
		Deadline:        v.Deadline.String(),
		Status:          strings.ToLower(v.Status.String()),
	}
}

func toOrders(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toProduct(v queries.ProductView) Product {
	return Product{Name: v.Name, StandardHours: v.StandardHours}
}

func toSummary(s services.Summary) Summary {
	return Summary{Open: s.Open, Completed: s.Completed, Overdue: s.Overdue}
}
