/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

func TestCORSSetsHeaders(t *testing.T) {
	next := web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		return nil
	})

	request := httptest.NewRequest(http.MethodGet, "/test", nil)
	recorder := httptest.NewRecorder()

	if err := CORS("http://localhost:4200", next)(testContext(), recorder, request); err != nil {
		t.Fatalf("Unexpected error from CORS middleware: %s", err.Error())
	}
	if origin := recorder.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:4200" {
		t.Errorf("Expected the configured origin, got %s", origin)
	}
	if recorder.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected allowed methods to be set")
	}
}
