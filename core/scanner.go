package core

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/zooyer/cad2pdf/logging"
)

// MaxLineLength 单行最大字节数，超过视为结构性错误
const MaxLineLength = 1 << 20

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	Skipped int // 因组码非法而跳过的标签对数量
	err     error
	started bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	for {
		// 1. 读取 Code 行
		codeLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		if !s.started {
			codeLine = strings.TrimPrefix(codeLine, "\uFEFF")
			s.started = true
		}

		codeStr := strings.TrimSpace(codeLine)
		if codeStr == "" { // 跳过空行
			continue
		}

		// 2. 读取 Value 行，只有 Code 没有 Value 视为流结束
		valueLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}

		// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
		value := strings.TrimRight(valueLine, "\r\n")

		code, err := Tag{Value: codeStr}.AsInt()
		if err != nil {
			// 组码非法只丢弃这一对，继续读取
			s.Skipped++
			logging.Logger().Debug("skip malformed group code", "code", codeStr, "error", err)
			continue
		}

		s.LastTag = Tag{Code: code, Value: value}
		return true
	}
}

func (s *Scanner) Err() error {
	return s.err
}

// readLine 读取一行（含换行符），最后一行允许没有换行符
func (s *Scanner) readLine() (string, error) {
	var buf []byte
	for {
		chunk, err := s.reader.ReadSlice('\n')
		if len(buf)+len(chunk) > MaxLineLength {
			return "", ErrLineTooLong
		}
		buf = append(buf, chunk...)
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF && len(buf) > 0:
			return string(buf), nil
		case err != nil:
			return "", err
		}
		return string(buf), nil
	}
}
