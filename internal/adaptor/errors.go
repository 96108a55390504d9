package adaptor

import (
	"net/http"

	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps a service error onto an HTTP response by
// its kind. Unclassified errors become a generic 500 so store
// internals never leak to the client.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		log.Warn(operation+" failed validation", zap.Error(err))
		utils.ResponseBadRequest(w, apperrors.MessageOf(err), nil)

	case apperrors.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, apperrors.MessageOf(err))

	case apperrors.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, apperrors.MessageOf(err))

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
