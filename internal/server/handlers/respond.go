package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// writeOutcome answers with the tagged Outcome of a calculation: 200 on
// success, 422 for domain errors and 500 for anything else.
func writeOutcome[T any](c *gin.Context, logger *zap.Logger, data T, err error) {
	if err == nil {
		c.JSON(http.StatusOK, models.NewOutcome(data, nil))
		return
	}

	if models.IsDomainError(err) {
		logger.Info("calculation rejected",
			zap.String("path", c.FullPath()),
			zap.String("kind", string(models.KindOf(err))),
			zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, models.NewOutcome(data, err))
		return
	}

	logger.Error("calculation failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.Failure[T](models.KindInternal, "internal error"))
}

func writeBadRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, models.Failure[struct{}](models.KindValidation, "invalid request body: "+err.Error()))
}
