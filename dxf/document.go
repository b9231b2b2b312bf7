// Package dxf 读写文本格式的图形交换文件（组码/值成对出现的行序列）
package dxf

import (
	"os"

	"github.com/zooyer/cad2pdf/entities"
)

// StandardStyle 未指定样式时使用的标注样式名
const StandardStyle = "STANDARD"

type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征
}

// Document 一次解析的结果，块注册表只属于这个文档
type Document struct {
	Header    map[string]string // HEADER 段变量，如 $ACADVER
	Entities  []entities.Entity
	Blocks    *entities.Registry
	DimStyles map[string]*DimStyle
	Skipped   int            // 因数值或组码非法被跳过的字段数
	Ignored   map[string]int // 不支持的实体类型及出现次数
}

func newDocument() *Document {
	return &Document{
		Header:    make(map[string]string),
		Entities:  make([]entities.Entity, 0, 1024),
		Blocks:    entities.NewRegistry(),
		DimStyles: make(map[string]*DimStyle),
		Ignored:   make(map[string]int),
	}
}

// DimStyle 查找标注样式，找不到时退回 STANDARD，都没有返回 nil
func (d *Document) DimStyle(name string) *DimStyle {
	if s, ok := d.DimStyles[name]; ok {
		return s
	}
	return d.DimStyles[StandardStyle]
}

// Precisions 样式名到小数位数的映射
func (d *Document) Precisions() map[string]int {
	m := make(map[string]int, len(d.DimStyles))
	for name, s := range d.DimStyles {
		m[name] = s.Precision
	}
	return m
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}
