package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/controller/server"
	"github.com/m-mizutani/shipgate/pkg/domain/mock"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger with request_id to context", func(t *testing.T) {
		var capturedCtx context.Context

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		srv := server.New(&mock.UseCaseMock{})

		mux := srv.Mux()
		mux.HandleFunc("/test", testHandler)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// The middleware should have created a new logger different from default
		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)
	})

	t.Run("statusCodeLogger captures WriteHeader calls", func(t *testing.T) {
		testCases := []struct {
			name         string
			handlerFunc  http.HandlerFunc
			expectedCode int
		}{
			{
				name: "captures 404 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				expectedCode: http.StatusNotFound,
			},
			{
				name: "captures 500 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				expectedCode: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := server.New(&mock.UseCaseMock{})

				mux := srv.Mux()
				mux.HandleFunc("/test", tc.handlerFunc)

				req := httptest.NewRequest("GET", "/test", nil)
				w := httptest.NewRecorder()

				mux.ServeHTTP(w, req)

				gt.V(t, w.Code).Equal(tc.expectedCode)
			})
		}
	})

	t.Run("statusCodeLogger defaults to 200 when WriteHeader not called", func(t *testing.T) {
		handlerNoWriteHeader := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})

		srv := server.New(&mock.UseCaseMock{})

		mux := srv.Mux()
		mux.HandleFunc("/noheader", handlerNoWriteHeader)

		req := httptest.NewRequest("GET", "/noheader", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
	})
}
