package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotFoundResponse is returned for every request that matches no route.
type NotFoundResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// NotFound writes the fallback 404. Path is the request path as sent, still
// percent-encoded, without the query string.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, NotFoundResponse{
		Error:   "Not Found",
		Message: "The requested endpoint does not exist",
		Path:    c.Request().URL.EscapedPath(),
	})
}

// ErrorHandler turns echo's routing failures (unknown path, or a known path
// with an unsupported method) into the NotFound response. Other errors go to
// echo's default handler.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
			// echo sets Allow for 405s; the fallback advertises no methods.
			c.Response().Header().Del(echo.HeaderAllow)
			if werr := NotFound(c); werr != nil {
				c.Logger().Error(werr)
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
