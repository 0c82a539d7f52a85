// Package api exposes the controller over HTTP, plus a WebSocket stream of
// poll readings.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smertens/tpgd/internal/device"
	"github.com/smertens/tpgd/tpg"
)

// Server holds the shared controller handle and the live-readings hub.
type Server struct {
	dev     *device.Locked
	hub     *Hub
	version string
}

// NewServer builds a Server around the shared device handle.
func NewServer(dev *device.Locked, version string) *Server {
	return &Server{dev: dev, hub: NewHub(), version: version}
}

// Hub returns the WebSocket hub; wire it into the poller as a consumer.
func (s *Server) Hub() *Hub { return s.hub }

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/pressure", s.getBoth).Methods("GET")
	router.HandleFunc("/pressure/{channel:[12]}", s.getPressure).Methods("GET")
	router.HandleFunc("/identities", s.getIdentities).Methods("GET")
	router.HandleFunc("/error", s.getErrorStatus).Methods("GET")
	router.HandleFunc("/reset", s.postReset).Methods("POST")
	router.HandleFunc("/version", s.versionInfo).Methods("GET")
	router.HandleFunc("/live", s.handleLive)
	return router
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	e.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	// Protocol-level failures mean the controller answered, just not with
	// what we asked for; transport failures are our side's problem.
	status := http.StatusInternalServerError
	var pe *tpg.ParseError
	var ne *tpg.NotHonoredError
	var re *tpg.RejectedError
	if errors.As(err, &pe) || errors.As(err, &ne) || errors.As(err, &re) {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, err.Error())
}

func (s *Server) getPressure(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(mux.Vars(r)["channel"])
	channel := tpg.Gauge1
	if n == 2 {
		channel = tpg.Gauge2
	}
	status, pressure, err := s.dev.ReadGauge(channel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct {
		Channel  int     `json:"channel"`
		Status   string  `json:"status"`
		StatusOK bool    `json:"status_ok"`
		Pressure float64 `json:"pressure_mbar"`
	}{n, status.String(), status == tpg.StatusOK, pressure})
}

func (s *Server) getBoth(w http.ResponseWriter, r *http.Request) {
	status, p1, p2, err := s.dev.ReadBoth()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct {
		Status    string  `json:"status"`
		StatusOK  bool    `json:"status_ok"`
		Pressure1 float64 `json:"pressure1_mbar"`
		Pressure2 float64 `json:"pressure2_mbar"`
	}{status.String(), status == tpg.StatusOK, p1, p2})
}

func (s *Server) getIdentities(w http.ResponseWriter, r *http.Request) {
	id1, id2, err := s.dev.GaugeIdentities()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct {
		Gauge1 string `json:"gauge1"`
		Gauge2 string `json:"gauge2"`
	}{string(id1), string(id2)})
}

func (s *Server) getErrorStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.dev.ErrorStatus()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}{string(status), status.String()})
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	causes, err := s.dev.Reset()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]string, len(causes))
	for i, c := range causes {
		out[i] = c.String()
	}
	writeJSON(w, struct {
		Causes []string `json:"causes"`
	}{out})
}

func (s *Server) versionInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Version string `json:"version"`
	}{s.version})
}
