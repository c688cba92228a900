package http

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// fragmentResponse builds an HTMX fragment response: an optional HTML body
// plus client-side events carried in the HX-Trigger header.
type fragmentResponse struct {
	triggers   map[string]any
	statusCode int
	body       []byte
	headers    map[string]string
}

func newFragment() *fragmentResponse {
	return &fragmentResponse{
		triggers:   make(map[string]any),
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

func (f *fragmentResponse) Status(code int) *fragmentResponse {
	f.statusCode = code
	return f
}

func (f *fragmentResponse) Trigger(name string, data any) *fragmentResponse {
	f.triggers[name] = data
	return f
}

// Notify queues a show-notification event for the toast area.
func (f *fragmentResponse) Notify(kind, message string) *fragmentResponse {
	return f.Trigger("show-notification", map[string]any{
		"type":    kind,
		"message": message,
	})
}

func (f *fragmentResponse) HTML(html string) *fragmentResponse {
	f.headers["Content-Type"] = "text/html; charset=utf-8"
	f.body = []byte(html)
	return f
}

func (f *fragmentResponse) Write(w http.ResponseWriter) {
	for name, value := range f.headers {
		w.Header().Set(name, value)
	}
	if len(f.triggers) > 0 {
		if payload, err := json.Marshal(f.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(payload))
		}
	}
	w.WriteHeader(f.statusCode)
	if len(f.body) > 0 {
		_, _ = w.Write(f.body)
	}
}

// errorFragment renders the standard error div. The message is escaped.
func errorFragment(statusCode int, message string) *fragmentResponse {
	return newFragment().
		Status(statusCode).
		HTML(`<div class="error">` + template.HTMLEscapeString(message) + `</div>`)
}
