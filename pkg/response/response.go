package response

import "github.com/gin-gonic/gin"

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response, attaching the error detail when present
func Error(c *gin.Context, status int, message string, err error) {
	resp := Response{
		Code:    status,
		Message: message,
	}
	if err != nil {
		resp.Detail = err.Error()
	}
	c.JSON(status, resp)
}
