package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger emits one structured entry per request with method, path,
// response status and duration.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			req = req.WithContext(WithLogData(req.Context(), logData))

			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(recorder, req)
			endTimer()

			logData.AddData("status", recorder.status)
			if recorder.status >= http.StatusInternalServerError {
				logData.Log().Error("Http.Request.Failed")
				return
			}
			logData.Log().Info("Http.Request.Complete")
		})
	}
}
