// Package server 提供 HTTP 转换服务
package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/logging"
)

const (
	jobHeader = "X-Job-ID"
	sniffLen  = 64
)

var errInternal = errors.New("internal error")

type Handler struct {
	opt       cad2pdf.Options
	maxUpload int64
}

// NewHandler maxUpload 为上传大小上限（字节）
func NewHandler(opt cad2pdf.Options, maxUpload int64) *Handler {
	return &Handler{opt: opt, maxUpload: maxUpload}
}

// Router 注册全部路由和中间件
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/v1/convert", h.Convert).Methods(http.MethodPost)

	return r
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Convert 接收 multipart 字段 file（可选 format=text|binary），返回 PDF。
// 输入错误返回 400，转换失败返回 422
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	job := uuid.New().String()
	w.Header().Set(jobHeader, job)
	log := logging.Logger().With("job", job)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, job, fmt.Errorf("invalid upload: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, job, fmt.Errorf("missing file: %w", err))
		return
	}
	defer file.Close()

	in := bufio.NewReader(file)
	format, err := h.format(r.FormValue("format"), header.Filename, in)
	if err != nil {
		writeError(w, http.StatusBadRequest, job, err)
		return
	}

	start := time.Now()
	var out bytes.Buffer
	res, err := cad2pdf.ConvertToPDF(r.Context(), in, format, &out, h.opt)
	if err != nil {
		log.Error("conversion failed", "file", header.Filename, "format", format, "error", err)
		writeError(w, http.StatusUnprocessableEntity, job, err)
		return
	}

	log.Info("conversion finished",
		"file", header.Filename,
		"format", format,
		"entities", len(res.Entities),
		"blocks", res.Blocks.Len(),
		"scale", res.Scale,
		"skipped", res.Skipped,
		"duration", time.Since(start),
	)

	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename)) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = out.WriteTo(w)
}

// format 显式指定优先，否则按文件名和开头字节判断
func (h *Handler) format(explicit, filename string, in *bufio.Reader) (cad2pdf.Format, error) {
	if explicit != "" {
		return cad2pdf.ParseFormat(explicit)
	}
	// 文件短于 sniffLen 时 Peek 返回 EOF，已读到的部分仍可判断
	head, _ := in.Peek(sniffLen)
	return cad2pdf.DetectFormat(filename, head)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, job string, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error(), "job": job})
}
