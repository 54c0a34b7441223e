package handlers

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"trainingquote/logger"
)

// SetToast adds a showToast event to the HX-Trigger response header. Events
// already present in the header are kept; a header that is not a JSON object
// is replaced.
func SetToast(e *core.RequestEvent, toastType, message string) {
	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			logger.Log.Warn("toast: replacing non-JSON HX-Trigger", zap.String("header", existing), zap.Error(err))
			events = map[string]any{}
		}
	}
	events["showToast"] = map[string]string{"message": message, "type": toastType}

	data, err := json.Marshal(events)
	if err != nil {
		logger.Log.Error("toast: failed to encode HX-Trigger", zap.Error(err))
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast replies with statusCode and an error toast. HX-Reswap: none keeps
// HTMX from swapping the plain-text body into the calculator.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
