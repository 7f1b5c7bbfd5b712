/*
   Copyright 2026 The error-types Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package ginx integrates the conversion protocol with gin. Handlers either
// call Responder.Abort directly or attach an error with c.Error and let
// Responder.Middleware render it after the chain finishes.
package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/em-cultuur/error-types/adapter"
	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// Responder renders converted errors into gin responses. Construct one per
// boundary and share it; it is immutable and safe for concurrent use.
type Responder struct {
	// Conv converts the error into its external representation.
	Conv *adapter.Converter

	// Mapper resolves the final HTTP status at this boundary. When nil,
	// the status carried by the view is written as-is.
	Mapper apis.Mapper
}

// Abort converts err, writes the external representation as the JSON body
// with the resolved status, and aborts the chain. A nil error is a no-op.
func (r Responder) Abort(c *gin.Context, err error) {
	if err == nil {
		return
	}
	v := r.Conv.Convert(err)
	if r.Mapper != nil {
		v.StatusCode = r.Mapper.HTTPStatus(kind.Kind(v.Kind), v.StatusCode)
	}
	c.AbortWithStatusJSON(v.StatusCode, v)
}

// Middleware returns a gin middleware that renders the last error a handler
// attached with c.Error, if the handler did not write a response itself.
//
// Handlers keep gin's idiomatic `c.Error(err); return` shape and this
// middleware becomes the single boundary where conversion happens.
func (r Responder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		r.Abort(c, c.Errors.Last().Err)
	}
}
