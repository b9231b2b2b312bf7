package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/dxf"
	"github.com/zooyer/cad2pdf/internal/sample"
	"github.com/zooyer/cad2pdf/records"
)

func upload(t *testing.T, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newHandler() *Handler {
	return NewHandler(cad2pdf.DefaultOptions(), 1<<20)
}

func TestHealth(t *testing.T) {
	rec := serve(newHandler(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestConvert_Text(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, dxf.Encode(&src, sample.Entities()))

	rec := serve(newHandler(), upload(t, "plan.dxf", src.Bytes(), nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `"plan.pdf"`)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	_, err := uuid.Parse(rec.Header().Get(jobHeader))
	assert.NoError(t, err)
}

func TestConvert_BinaryExplicitFormat(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, records.Encode(&src, sample.Binary()))

	rec := serve(newHandler(), upload(t, "upload", src.Bytes(), map[string]string{"format": "binary"}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestConvert_BadRequest(t *testing.T) {
	for name, req := range map[string]*http.Request{
		"missing file":   upload(t, "", nil, map[string]string{"format": "text"}),
		"unknown format": upload(t, "a.dxf", []byte("0\nEOF\n"), map[string]string{"format": "dwg"}),
		"undetectable":   upload(t, "upload", []byte("%PDF-1.7"), nil),
		"not multipart":  httptest.NewRequest(http.MethodPost, "/v1/convert", strings.NewReader("x")),
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(newHandler(), req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, rec.Header().Get(jobHeader), body["job"])
		})
	}
}

func TestConvert_TooLarge(t *testing.T) {
	h := NewHandler(cad2pdf.DefaultOptions(), 1024)
	rec := serve(h, upload(t, "big.dxf", bytes.Repeat([]byte("999\ncomment\n"), 1024), nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvert_Unprocessable(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, records.Encode(&src, sample.Binary()[:1]))
	truncated := src.Bytes()[:src.Len()-4]

	rec := serve(newHandler(), upload(t, "line.bin", truncated, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec)["error"], "decode")
}

func TestConvert_MethodNotAllowed(t *testing.T) {
	rec := serve(newHandler(), httptest.NewRequest(http.MethodGet, "/v1/convert", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeError(t, rec)["error"])
}

func TestLogger(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "tea", rec.Body.String())
}
