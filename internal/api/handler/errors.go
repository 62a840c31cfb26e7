package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// writeServiceError traduz os erros do domínio para o envelope de erro da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	case errors.As(err, &upstreamErr):
		logger.WithField("endpoint", upstreamErr.Endpoint).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, map[string]string{
			"endpoint": upstreamErr.Endpoint,
			"reason":   upstreamErr.Kind.Error(),
		})
		return
	case domain.IsUpstreamError(err):
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, nil)
		return
	case errors.Is(err, domain.ErrPersistence):
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrCommunication, message, nil)
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
