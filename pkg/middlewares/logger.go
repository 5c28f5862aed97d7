/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

// Logger middleware logs one line per request with trace id and duration
func Logger(next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		contextValues := ctx.Value(web.KeyValues).(*web.ContextValues)

		startTime := time.Now()
		err := next(ctx, writer, request)

		log.WithFields(log.Fields{
			"Method":     contextValues.Method,
			"RequestURI": contextValues.RequestURI,
			"TraceID":    contextValues.TraceID,
			"Duration":   time.Since(startTime).String(),
		}).Info("Request handled")

		return err
	})
}
