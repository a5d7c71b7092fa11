package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reader-sync/internal/app"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/metrics"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// maxSyncBodyBytes bounds the request body. Clients refuse to send payloads
// above 900 KB.
const maxSyncBodyBytes = 4 << 20

func (h *Handler) syncOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// an undecodable body is treated as empty and fails on userId
	var req models.ProxyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSyncBodyBytes)).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.sync").Msg("undecodable sync request body")
		req = models.ProxyRequest{}
	}

	// userId is checked before configuration, action after it
	invalid := h.validate.Struct(req)
	if fieldFailed(invalid, "UserID") {
		h.writeSync(w, req.Action, http.StatusBadRequest, models.ProxyResponse{Error: app.MsgUserIDRequired})
		return
	}
	if !h.services.ProxySyncService.Configured() {
		h.writeSync(w, req.Action, http.StatusServiceUnavailable, models.ProxyResponse{Error: app.MsgNotConfigured})
		return
	}
	if invalid != nil {
		h.writeSync(w, req.Action, http.StatusBadRequest, models.ProxyResponse{Error: app.MsgInvalidAction})
		return
	}

	switch req.Action {
	case models.ProxyActionSave:
		if req.Data == nil {
			h.writeSync(w, req.Action, http.StatusBadRequest, models.ProxyResponse{Error: app.MsgDataRequired})
			return
		}
		if err := h.services.ProxySyncService.Save(ctx, req.UserID, req.Data); err != nil {
			h.writeSyncError(w, r, req.Action, err)
			return
		}
		h.writeSync(w, req.Action, http.StatusOK, models.ProxyResponse{Success: true, Message: app.MsgSaved})

	case models.ProxyActionLoad:
		data, err := h.services.ProxySyncService.Load(ctx, req.UserID)
		if err != nil {
			h.writeSyncError(w, r, req.Action, err)
			return
		}
		h.writeSync(w, req.Action, http.StatusOK, models.ProxyResponse{Success: true, Data: data})

	case models.ProxyActionDelete:
		if err := h.services.ProxySyncService.Delete(ctx, req.UserID); err != nil {
			h.writeSyncError(w, r, req.Action, err)
			return
		}
		h.writeSync(w, req.Action, http.StatusOK, models.ProxyResponse{Success: true, Message: app.MsgDeleted})

	default:
		h.writeSync(w, req.Action, http.StatusBadRequest, models.ProxyResponse{Error: app.MsgInvalidAction})
	}
}

func (h *Handler) writeSyncError(w http.ResponseWriter, r *http.Request, action models.ProxyAction, err error) {
	status := statusFromError(err)

	resp := models.ProxyResponse{Error: app.MsgInternalServerError, Details: err.Error()}
	switch {
	case errors.Is(err, service.ErrNoSyncData):
		resp = models.ProxyResponse{Error: app.MsgNoData}
	case errors.Is(err, service.ErrKVNotConfigured):
		resp = models.ProxyResponse{Error: app.MsgNotConfigured}
	case status == http.StatusBadRequest:
		resp = models.ProxyResponse{Error: err.Error()}
	default:
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sync").Str("action", string(action)).Msg("sync request failed")
	}
	h.writeSync(w, action, status, resp)
}

func (h *Handler) writeSync(w http.ResponseWriter, action models.ProxyAction, status int, resp models.ProxyResponse) {
	label := string(action)
	switch action {
	case models.ProxyActionSave, models.ProxyActionLoad, models.ProxyActionDelete, "":
	default:
		label = "invalid"
	}
	metrics.RecordProxyRequest(label, status)
	_, _ = utils.WriteJSON(w, resp, status)
}

func fieldFailed(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}
