package get_containers

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-TerminalService/internal/service/containers/models"
)

// parseListRequest читает фильтры из query параметров
// Некорректные булевы значения игнорируются как неуказанные
func parseListRequest(query url.Values) *models.ListContainersRequest {
	req := &models.ListContainersRequest{}

	if enterprise := query.Get("enterprise"); enterprise != "" {
		req.Enterprise = &enterprise
	}
	if raw := query.Get("arrived"); raw != "" {
		if arrived, err := strconv.ParseBool(raw); err == nil {
			req.Arrived = &arrived
		}
	}
	if raw := query.Get("scheduled"); raw != "" {
		if scheduled, err := strconv.ParseBool(raw); err == nil {
			req.Scheduled = &scheduled
		}
	}

	return req
}
