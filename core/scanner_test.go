package core

import (
	"errors"
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
	if scanner.Next() {
		t.Fatalf("期望结束, 得到 %+v", scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Fatalf("不应有错误: %v", scanner.Err())
	}
}

func TestScanner_Tolerance(t *testing.T) {
	// BOM、CRLF、空行、非法组码、末行无换行
	dxfData := "\uFEFF  0\r\nLINE\r\n\n8\r\n 0\r\nabc\r\n10\r\n99999999999\r\n7\r\n10\r\n1.5"
	scanner := NewScanner(strings.NewReader(dxfData))

	expected := []Tag{
		{0, "LINE"},
		{8, " 0"},
		{10, "1.5"},
	}
	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag != exp {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
	if scanner.Next() {
		t.Fatalf("期望结束, 得到 %+v", scanner.LastTag)
	}
	if scanner.Skipped != 2 {
		t.Errorf("期望跳过 2 对, 得到 %d", scanner.Skipped)
	}
}

func TestScanner_CodeWithoutValue(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\nEOF\n10\n"))
	if !scanner.Next() || scanner.LastTag.Value != "EOF" {
		t.Fatalf("读取 EOF 失败: %+v", scanner.LastTag)
	}
	if scanner.Next() {
		t.Fatalf("缺少 Value 行应结束, 得到 %+v", scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Fatalf("不应有错误: %v", scanner.Err())
	}
}

func TestScanner_LineTooLong(t *testing.T) {
	data := "1\n" + strings.Repeat("x", MaxLineLength+1) + "\n"
	scanner := NewScanner(strings.NewReader(data))
	if scanner.Next() {
		t.Fatal("超长行不应读取成功")
	}
	if !errors.Is(scanner.Err(), ErrLineTooLong) {
		t.Fatalf("期望 ErrLineTooLong, 得到 %v", scanner.Err())
	}
}
