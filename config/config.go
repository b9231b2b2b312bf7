// Package config 从环境变量读取配置，变量名前缀为 CAD2PDF_
package config

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/zooyer/cad2pdf/logging"
)

const Prefix = "CAD2PDF"

type Config struct {
	PageWidth      float64 `envconfig:"PAGE_WIDTH" default:"595.276"` // A4，单位：点
	PageHeight     float64 `envconfig:"PAGE_HEIGHT" default:"841.89"`
	MaxBlockDepth  int     `envconfig:"MAX_BLOCK_DEPTH" default:"32"`
	MaxExpansions  int     `envconfig:"MAX_EXPANSIONS" default:"1000000"`
	InsertRotation bool    `envconfig:"INSERT_ROTATION" default:"false"`
	ByteOrder      string  `envconfig:"BYTE_ORDER" default:"little"` // 二进制记录字节序：little 或 big
	Port           int     `envconfig:"PORT" default:"8080"`
	MaxUploadMB    int64   `envconfig:"MAX_UPLOAD_MB" default:"64"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !(c.PageWidth > 0) || !(c.PageHeight > 0) {
		return fmt.Errorf("config: invalid page size %gx%g", c.PageWidth, c.PageHeight)
	}
	if c.MaxBlockDepth <= 0 {
		return fmt.Errorf("config: max block depth must be positive, got %d", c.MaxBlockDepth)
	}
	if c.MaxExpansions <= 0 {
		return fmt.Errorf("config: max expansions must be positive, got %d", c.MaxExpansions)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("config: max upload size must be positive, got %d", c.MaxUploadMB)
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	return nil
}

// Order 解析 ByteOrder
func (c *Config) Order() (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(c.ByteOrder)) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("config: unknown byte order %q", c.ByteOrder)
}

func (c *Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// MaxUploadBytes 上传大小上限（字节）
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
