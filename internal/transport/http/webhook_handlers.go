package http

import (
	"log/slog"
	"net/http"
)

// handleVerify is the inbound-SMS webhook. It always answers 200 with a TwiML
// body: callers retry on errors and unknown numbers must not be signaled.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeTwiML(w, "")
		return
	}
	reply, err := h.subs.HandleInbound(r.Context(), r.PostFormValue("From"), r.PostFormValue("Body"))
	if err != nil {
		slog.Error("inbound sms failed", "error", err)
		reply = ""
	}
	writeTwiML(w, reply)
}

func writeTwiML(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	if message == "" {
		_, _ = w.Write([]byte("<Response></Response>"))
		return
	}
	_, _ = w.Write([]byte("<Response><Message>" + message + "</Message></Response>"))
}
