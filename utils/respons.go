package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondFailure -> mengirim kegagalan terstruktur: status code dan field
// "error" diturunkan dari jenis AppError (validation/not_found/conflict/storage).
func RespondFailure(c *gin.Context, err error) {
	if KindOf(err) == KindStorage {
		ErrorLogger.Printf("storage failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(StatusFor(err), JSONResponse{
		Status:  false,
		Message: err.Error(),
		Error:   string(KindOf(err)),
		Data:    nil,
	})
}
