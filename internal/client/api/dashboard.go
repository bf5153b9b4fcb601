package api

import (
	"context"
	"net/http"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// DashboardStats fetches the aggregate dashboard payload.
func (c *HTTPClient) DashboardStats(ctx context.Context, token string) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", token, nil, nil, &stats)
	return stats, err
}
