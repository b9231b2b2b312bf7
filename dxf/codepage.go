package dxf

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// $DWGCODEPAGE 到文字编码的映射，未列出的按 UTF-8 处理
var codepages = map[string]encoding.Encoding{
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
}

// codepage 返回代码页对应的解码器，UTF-8 或未知代码页返回 nil
func codepage(name string) *encoding.Decoder {
	enc, ok := codepages[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return enc.NewDecoder()
}
