package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a urlencoded POST request.
func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// assembledForm is the calculator form for a 1m x 0.5m wall built from the
// test catalog: 2x1 cabinets of 4 modules each plus one processor.
func assembledForm(ids testhelpers.TestCatalog) url.Values {
	return url.Values{
		"client":            {"Acme"},
		"project":           {"Lobby"},
		"screenQty":         {"1"},
		"targetWidth":       {"1"},
		"targetHeight":      {"0.5"},
		"unit":              {string(services.UnitMeters)},
		"selectedIndoor":    {"true"},
		"assemblyMode":      {string(services.AssemblyAssembled)},
		"selectedPitch":     {"3.91"},
		"selectedModuleId":  {ids.ModuleID},
		"selectedCabinetId": {ids.CabinetID},
		"selectedProcId":    {ids.ProcessorID},
		"sizingMode":        {string(services.SizingNearest)},
		"margin":            {"20"},
	}
}
