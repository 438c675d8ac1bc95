package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-backend/internal/media"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 0)
}

func TestSignedUploadSendsSignedForm(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		if r.URL.Path != "/v1_1/demo/raw/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}

		if got := r.FormValue("api_key"); got != "key123" {
			t.Errorf("api_key = %q", got)
		}
		if got := r.FormValue("folder"); got != "portfolio/resume" {
			t.Errorf("folder = %q", got)
		}
		if got := r.FormValue("timestamp"); got != "1700000000" {
			t.Errorf("timestamp = %q", got)
		}
		if got := r.FormValue("public_id"); got != "resume_1" {
			t.Errorf("public_id = %q", got)
		}

		wantSig := media.Signature(map[string]string{
			"folder":    "portfolio/resume",
			"timestamp": "1700000000",
			"public_id": "resume_1",
		}, "sec")
		if got := r.FormValue("signature"); got != wantSig {
			t.Errorf("signature = %q, want %q", got, wantSig)
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/portfolio/resume/resume_1","public_id":"portfolio/resume/resume_1"}`))
	}))
	defer server.Close()

	client := New(Config{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "sec",
		BaseURL:   server.URL,
		Now:       fixedNow,
	})

	result, err := client.SignedUpload(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF-1.4"), UploadOptions{
		Folder:   "portfolio/resume",
		PublicID: "resume_1",
	})
	if err != nil {
		t.Fatalf("SignedUpload: %v", err)
	}
	if result.URL == "" || result.PublicID == "" {
		t.Fatalf("expected url and public id, got %+v", result)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}

func TestSignedUploadConfigIncompleteMakesNoRequest(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := New(Config{CloudName: "demo", APIKey: "key123", BaseURL: server.URL})

	_, err := client.SignedUpload(context.Background(), "cv.pdf", "application/pdf", nil, UploadOptions{Folder: "f"})
	if !media.IsKind(err, media.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no network call, got %d", calls)
	}
}

func TestSignedUploadPropagatesRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	}))
	defer server.Close()

	client := New(Config{CloudName: "demo", APIKey: "k", APISecret: "s", BaseURL: server.URL})

	_, err := client.SignedUpload(context.Background(), "cv.pdf", "application/pdf", nil, UploadOptions{Folder: "f"})
	if !media.IsKind(err, media.KindAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid Signature") {
		t.Fatalf("expected remote message, got %q", err.Error())
	}
}

func TestUnsignedUploadSendsPresetWithoutSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "preset1" {
			t.Errorf("upload_preset = %q", got)
		}
		if got := r.FormValue("signature"); got != "" {
			t.Errorf("unsigned upload must not carry a signature, got %q", got)
		}
		if got := r.FormValue("api_key"); got != "" {
			t.Errorf("unsigned upload must not carry the api key, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/f/x","public_id":"f/x"}`))
	}))
	defer server.Close()

	client := New(Config{CloudName: "demo", UploadPreset: "preset1", BaseURL: server.URL})

	result, err := client.UnsignedUpload(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF-1.4"), UploadOptions{Folder: "f"})
	if err != nil {
		t.Fatalf("UnsignedUpload: %v", err)
	}
	if result.Status != http.StatusOK || len(result.Raw) == 0 {
		t.Fatalf("expected raw diagnostics preserved, got %+v", result)
	}
}

func TestUploadResumeFallsBackToUnsigned(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if r.FormValue("signature") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
			return
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/portfolio/resume/r","public_id":"portfolio/resume/r"}`))
	}))
	defer server.Close()

	client := New(Config{
		CloudName:    "demo",
		APIKey:       "k",
		APISecret:    "s",
		UploadPreset: "preset1",
		BaseURL:      server.URL,
		Now:          fixedNow,
	})

	result, err := client.UploadResume(context.Background(), "cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadResume: %v", err)
	}
	if result.URL == "" {
		t.Fatalf("expected unsigned result url")
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected signed then unsigned request, got %d calls", calls)
	}
}

func TestUploadResumeWithoutAnyConfiguration(t *testing.T) {
	client := New(Config{})

	_, err := client.UploadResume(context.Background(), "cv.pdf", []byte("%PDF-1.4"))
	if !media.IsKind(err, media.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "cloud_name=missing") {
		t.Fatalf("expected per-field diagnostic, got %q", err.Error())
	}
}

func TestUploadTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := New(Config{CloudName: "demo", APIKey: "k", APISecret: "s", BaseURL: server.URL})

	_, err := client.SignedUpload(context.Background(), "cv.pdf", "application/pdf", nil, UploadOptions{Folder: "f"})
	if !media.IsKind(err, media.KindTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestProbe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(Config{CloudName: "demo"})

	result := client.Probe(context.Background(), server.URL)
	if !result.Accessible || result.Status != http.StatusOK {
		t.Fatalf("expected accessible probe, got %+v", result)
	}
}
