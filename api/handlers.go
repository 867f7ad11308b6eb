package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/kvantox/cratepack/events"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/packer"
)

// handlePack decodes one batch request, runs it to completion, and renders
// the full batch response. No progress events are observable to the
// caller; internally the job still runs against events.Nop.
func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()
	log := s.log.With("job_id", jobID, "endpoint", "pack")

	req, err := s.decode(r)
	if err != nil {
		log.Warn("decode failed", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := packer.Pack(req, events.Nop, packerOptionsFor(s.cfg)...)
	if err != nil {
		log.Warn("request rejected", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Info("pack completed", "containers", len(result.Containers), "unplaced", len(result.Unplaced))
	w.Header().Set("X-Job-Id", jobID)
	writeJSON(w, http.StatusOK, encodeResult(result))
}

// handlePackStream decodes one batch request and streams the same progress
// events the core emits to an events.Sink as server-sent events. The
// connection is held open until packer.Pack returns; there is no
// client-driven cancellation in this transport.
func (s *Server) handlePackStream(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()
	log := s.log.With("job_id", jobID, "endpoint", "pack_stream")

	req, err := s.decode(r)
	if err != nil {
		log.Warn("decode failed", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Job-Id", jobID)
	w.WriteHeader(http.StatusOK)

	sink := events.SinkFunc(func(e events.Event) {
		fmt.Fprintf(w, "event: %s\n", eventName(e))
		data, err := json.Marshal(eventData(e))
		if err != nil {
			log.Error("marshal event failed", "err", err)
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	})

	if _, err := packer.Pack(req, sink, packerOptionsFor(s.cfg)...); err != nil {
		log.Warn("request rejected mid-stream", "err", err)
		fmt.Fprintf(w, "event: error\ndata: %s\n\n", mustMarshal(map[string]string{"error": err.Error()}))
		flusher.Flush()
		return
	}
	log.Info("stream completed")
}

func (s *Server) decode(r *http.Request) (model.PackRequest, error) {
	var wire packRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		return model.PackRequest{}, errors.New("malformed request body")
	}
	return decodeRequest(wire, s.cfg.Epsilon, s.cfg.AllowItemRotation)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(`{}`)
	}
	return data
}
