package resthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourname/upload_pipeline/internal/config"
)

func newGateway(t *testing.T, storageURL string) *httptest.Server {
	t.Helper()
	h, srv, err := NewServer(context.Background(), &config.Config{
		StorageServiceURL: storageURL,
		JournalDSN:        "memory://",
	})
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	gw := httptest.NewServer(h)
	t.Cleanup(func() {
		gw.Close()
		srv.Close()
	})
	return gw
}

func uploadForm(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func readAll(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestHealth_StorageUnreachable(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	gw := newGateway(t, downURL)

	resp, err := http.Get(gw.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	body := readAll(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if got["status"] != "ok" || got["storage_service"] != "unreachable" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestHealth_StorageReachableAndUnhealthy(t *testing.T) {
	status := http.StatusOK
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(storage.Close)
	gw := newGateway(t, storage.URL)

	check := func(want string) {
		t.Helper()
		resp, err := http.Get(gw.URL + "/health")
		if err != nil {
			t.Fatal(err)
		}
		var got map[string]string
		_ = json.Unmarshal(readAll(t, resp), &got)
		if resp.StatusCode != http.StatusOK || got["status"] != "ok" || got["storage_service"] != want {
			t.Fatalf("got %d %v, want storage_service=%s", resp.StatusCode, got, want)
		}
	}

	check("reachable")
	status = http.StatusServiceUnavailable
	check("unreachable")
}

func TestUpload_RelaysStorageResponseVerbatim(t *testing.T) {
	const reply = "disk quota exceeded\n"
	var gotName, gotType string
	var gotData []byte
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/store" {
			http.NotFound(w, r)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotName, gotType = hdr.Filename, hdr.Header.Get("Content-Type")
		gotData, _ = io.ReadAll(f)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInsufficientStorage)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(storage.Close)
	gw := newGateway(t, storage.URL)

	body, ct := uploadForm(t, "big.iso", []byte("payload"))
	resp, err := http.Post(gw.URL+"/upload", ct, body)
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, resp)

	if resp.StatusCode != http.StatusInsufficientStorage {
		t.Fatalf("status = %d, want passthrough 507", resp.StatusCode)
	}
	if string(got) != reply || resp.Header.Get("Content-Type") != "text/plain" {
		t.Fatalf("body not relayed verbatim: %q (%s)", got, resp.Header.Get("Content-Type"))
	}
	if gotName != "big.iso" || string(gotData) != "payload" || gotType != "application/octet-stream" {
		t.Fatalf("storage received %q %q %q", gotName, gotType, gotData)
	}

	// неуспешная загрузка в журнал не попадает
	resp, err = http.Get(gw.URL + "/uploads")
	if err != nil {
		t.Fatal(err)
	}
	var list struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(readAll(t, resp), &list)
	if list.Count != 0 {
		t.Fatalf("failed upload journaled: %d", list.Count)
	}
}

func TestUpload_StorageDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()
	gw := newGateway(t, downURL)

	body, ct := uploadForm(t, "a.txt", []byte("a"))
	resp, err := http.Post(gw.URL+"/upload", ct, body)
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, resp)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 (%s)", resp.StatusCode, got)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	gw := newGateway(t, "http://127.0.0.1:1")

	resp, err := http.Post(gw.URL+"/upload", "text/plain", bytes.NewBufferString("no form"))
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", resp.StatusCode, got)
	}
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":     defaultUploadsLimit,
		"abc":  defaultUploadsLimit,
		"-3":   defaultUploadsLimit,
		"7":    7,
		"9999": maxUploadsLimit,
	}
	for in, want := range cases {
		if got := parseLimit(in); got != want {
			t.Errorf("parseLimit(%q) = %d, want %d", in, got, want)
		}
	}
}
