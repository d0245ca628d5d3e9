package api

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and falls back to echo's
// default binder for everything else (path and query params included).
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.NewBadRequest("UNREADABLE_BODY")
		}
		if err = sonic.Unmarshal(body, i); err != nil {
			return constants.NewBadRequest("MALFORMED_JSON")
		}
		return b.fallback.BindPathParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
