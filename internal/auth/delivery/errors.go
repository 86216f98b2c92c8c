package delivery

import (
	"net/http"

	authdto "gauth-backend/internal/auth/dto"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"
)

// writeError renders err as the uniform error body. Errors without an
// attached status are internal and their text is not exposed.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var authErr *goerrors.Error
	if goerrors.As(err, &authErr) && authErr.Code != 0 {
		status = authErr.Code
		message = authErr.Message
	}

	c.AbortWithStatusJSON(status, authdto.ErrorResponse{
		Message:    message,
		Error:      http.StatusText(status),
		StatusCode: status,
	})
}
