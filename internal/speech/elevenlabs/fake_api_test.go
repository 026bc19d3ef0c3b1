package elevenlabs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
)

// fakeAPI is an httptest-backed stand-in for the ElevenLabs API.
type fakeAPI struct {
	server *httptest.Server

	voices        []Voice
	voicesStatus  int
	convertStatus int
	chunks        [][]byte

	voicesCalls  atomic.Int32
	convertCalls atomic.Int32

	lastAPIKey  string
	lastPath    string
	lastQuery   url.Values
	lastConvert convertRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{chunks: [][]byte{[]byte("mock audio data")}}

	mux := http.NewServeMux()
	mux.HandleFunc("/voices", func(w http.ResponseWriter, r *http.Request) {
		f.voicesCalls.Add(1)
		f.lastAPIKey = r.Header.Get("xi-api-key")

		if f.voicesStatus != 0 {
			writeErrorEnvelope(w, f.voicesStatus)
			return
		}

		_ = json.NewEncoder(w).Encode(voicesResponse{Voices: f.voices})
	})
	mux.HandleFunc("/text-to-speech/", func(w http.ResponseWriter, r *http.Request) {
		f.convertCalls.Add(1)
		f.lastAPIKey = r.Header.Get("xi-api-key")
		f.lastPath = r.URL.Path
		f.lastQuery = r.URL.Query()
		_ = json.NewDecoder(r.Body).Decode(&f.lastConvert)

		if f.convertStatus != 0 {
			writeErrorEnvelope(w, f.convertStatus)
			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		flusher := w.(http.Flusher)
		for _, chunk := range f.chunks {
			_, _ = w.Write(chunk)
			flusher.Flush()
		}
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func writeErrorEnvelope(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"detail": map[string]any{
			"status":  "test_error",
			"message": "simulated failure",
		},
	})
}

func (f *fakeAPI) newClient() *Client {
	return NewClient("test-key", WithBaseURL(f.server.URL))
}
