package apiclient

import (
	"net/http"

	"github.com/equipbook/equipbook/shared/domain"
)

func (c *APIClient) GetStats(r *http.Request) domain.Stats {
	var stats domain.Stats
	if !c.read(r, "GetStats", "/stats", &stats) || stats == nil {
		return domain.Stats{}
	}
	return stats
}

func (c *APIClient) GetReports(r *http.Request) []domain.Report {
	var reports []domain.Report
	if !c.read(r, "GetReports", "/reports", &reports) || reports == nil {
		return []domain.Report{}
	}
	return reports
}

func (c *APIClient) GetNotifications(r *http.Request) []domain.UserNotification {
	var notifications []domain.UserNotification
	if !c.read(r, "GetNotifications", "/notifications", &notifications) || notifications == nil {
		return []domain.UserNotification{}
	}
	return notifications
}
