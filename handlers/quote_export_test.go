package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"trainingquote/services"
	"trainingquote/testhelpers"
)

var dispositionPattern = regexp.MustCompile(`^attachment; filename="training-quote-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.(csv|xlsx|pdf)"$`)

func exportRequest(t *testing.T, format string, sel services.Selection) *httptest.ResponseRecorder {
	t.Helper()
	return exportRequestHTMX(t, format, sel, false)
}

func exportRequestHTMX(t *testing.T, format string, sel services.Selection, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := testhelpers.NewFormRequest("/quote/export/"+format, testhelpers.SelectionForm(sel), htmx)
	req.SetPathValue("format", format)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	require.NoError(t, HandleQuoteExport(testConfig())(e))
	return rec
}

func TestHandleQuoteExport_CSV(t *testing.T) {
	sel := services.DefaultSelection(services.TravelItemized)
	rec := exportRequest(t, "csv", sel)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv;charset=utf-8", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Regexp(t, dispositionPattern, disposition)
	assert.True(t, strings.HasSuffix(disposition, `.csv"`))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `"Training Price Calculation",""`+"\n"), "got %q", body)
	assert.Contains(t, body, `"Total","650"`)
	assert.False(t, strings.HasSuffix(body, "\n"))
}

func TestHandleQuoteExport_Excel(t *testing.T) {
	rec := exportRequest(t, "xlsx", services.DefaultSelection(services.TravelItemized))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, dispositionPattern, rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Quote", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Training Price Calculation", title)
}

func TestHandleQuoteExport_PDF(t *testing.T) {
	rec := exportRequest(t, "pdf", services.DefaultSelection(services.TravelItemized))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleQuoteExport_UnknownFormat(t *testing.T) {
	rec := exportRequest(t, "docx", services.DefaultSelection(services.TravelItemized))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `Unknown export format "docx"`)
	assert.Empty(t, rec.Header().Get("HX-Trigger"), "plain form submits get no toast headers")
	assert.Empty(t, rec.Header().Get("HX-Reswap"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestHandleQuoteExport_UnknownFormatHTMX(t *testing.T) {
	rec := exportRequestHTMX(t, "docx", services.DefaultSelection(services.TravelItemized), true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
	assert.Contains(t, rec.Header().Get("HX-Trigger"), "showToast")
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}
