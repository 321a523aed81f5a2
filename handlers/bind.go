package handlers

import (
	"bytes"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errNullBody = errors.New("request body is null")

// bindJSONBody decodes the request body into obj. An empty body binds as {}
// and a literal null is rejected.
func bindJSONBody(c *gin.Context, obj interface{}) error {
	var raw []byte
	if c.Request.Body != nil {
		var err error
		if raw, err = io.ReadAll(c.Request.Body); err != nil {
			return err
		}
	}
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		raw = []byte("{}")
	case bytes.Equal(raw, []byte("null")):
		return errNullBody
	}
	return binding.JSON.BindBody(raw, obj)
}
