// Package http provides the HTTP handler layer for the route ranking API.
package http

import (
	"strings"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// ToDomainCriteria converts a RankRoutesRequest to domain.SearchCriteria.
// Defaults for MaxRoutes and MaxConnections are applied by the use case.
func ToDomainCriteria(req *RankRoutesRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:         strings.ToUpper(req.Origin),
		Destination:    strings.ToUpper(req.Destination),
		Date:           req.Date,
		MaxRoutes:      req.MaxRoutes,
		MaxConnections: req.MaxConnections,
	}
}
