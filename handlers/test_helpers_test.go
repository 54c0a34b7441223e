package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase/core"

	"trainingquote/config"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
// No app is attached; the quote handlers never touch the database.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Company = "Acme Learning"
	return cfg
}
