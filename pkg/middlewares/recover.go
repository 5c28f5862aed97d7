/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

// Recover middleware converts handler panics into logged 500 responses so a
// single bad request cannot take the listener down
func Recover(next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) (err error) {
		defer func() {
			if r := recover(); r != nil {
				contextValues := ctx.Value(web.KeyValues).(*web.ContextValues)
				log.WithFields(log.Fields{
					"Method":     contextValues.Method,
					"RequestURI": contextValues.RequestURI,
					"TraceID":    contextValues.TraceID,
					"Panic":      r,
				}).Error("Recovered from panic")
				err = errors.Errorf("panic: %v", r)
			}
		}()

		return next(ctx, writer, request)
	})
}
